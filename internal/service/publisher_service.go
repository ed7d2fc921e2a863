package service

import (
	"context"
	"encoding/json"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IResearchEventPublisher interface {
	PublishCompleted(ctx context.Context, msg dto.ResearchCompletedMessage)
}

type researchEventPublisher struct {
	publisher message.Publisher
	topicName string
	logger    logger.ILogger
}

func NewResearchEventPublisher(publisher message.Publisher, topicName string, log logger.ILogger) IResearchEventPublisher {
	return &researchEventPublisher{
		publisher: publisher,
		topicName: topicName,
		logger:    log,
	}
}

// PublishCompleted is fire-and-forget: a failure is logged, never returned.
func (p *researchEventPublisher) PublishCompleted(ctx context.Context, payload dto.ResearchCompletedMessage) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("EventPublisher", "Failed to encode research event", map[string]interface{}{
			"topic": payload.Topic,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(context.WithoutCancel(ctx))

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Warn("EventPublisher", "Failed to publish research event", map[string]interface{}{
			"topic": payload.Topic,
			"error": err.Error(),
		})
	}
}
