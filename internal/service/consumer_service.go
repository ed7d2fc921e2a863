package service

import (
	"context"
	"encoding/json"
	"time"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/pkg/logger"
	"research-gap-be/internal/repository/contract"
	"research-gap-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventForwarder sends events to an external bus. It may be nil.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	history    contract.HistoryRepository
	forwarder  EventForwarder
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	history contract.HistoryRepository,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		history:    history,
		forwarder:  forwarder,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ResearchCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal research event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // poison message, retrying cannot help
		return
	}

	if err := cs.history.Record(ctx, payload.Topic); err != nil {
		cs.logger.Warn("ConsumerService", "Failed to record topic history", map[string]interface{}{
			"topic": payload.Topic,
			"error": err.Error(),
		})
	}

	if cs.forwarder != nil {
		event := events.ResearchCompletedEvent{
			Topic:         payload.Topic,
			Endpoint:      payload.Endpoint,
			Degraded:      payload.Degraded,
			InsightCount:  payload.InsightCount,
			QuestionCount: payload.QuestionCount,
			At:            payload.At,
		}
		fwdCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := cs.forwarder.Publish(fwdCtx, event); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to forward research event", map[string]interface{}{
				"topic": payload.Topic,
				"error": err.Error(),
			})
		}
		cancel()
	}

	msg.Ack()
}
