package contract

import "context"

type HistoryRepository interface {
	Record(ctx context.Context, topic string) error
	Recent(ctx context.Context) ([]string, error)
}
