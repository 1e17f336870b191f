package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook defers fn until the transaction carried by ctx has committed.
type CommitHook func(ctx context.Context, fn func())

// PublishOpt configures event publishing.
type PublishOpt func(*eventPublisher)

// WithCommitHook holds events back until hook runs them,
// so a rolled-back change never produces an event.
func WithCommitHook(hook CommitHook) PublishOpt {
	return func(p *eventPublisher) {
		p.afterCommit = hook
	}
}

// eventPublisher sends bookmark events to Kafka on a best-effort basis.
// A nil writer disables publishing.
type eventPublisher struct {
	writer      KafkaWriter
	afterCommit CommitHook
}

func newEventPublisher(writer KafkaWriter, opts ...PublishOpt) eventPublisher {
	p := eventPublisher{
		writer:      writer,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func newBookmarkEvent(eventType string, bm *models.BookmarkDB) models.BookmarkEvent {
	return models.BookmarkEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Timestamp:  time.Now().Unix(),
		BookmarkID: bm.BookmarkID,
		UserID:     bm.UserID,
		ShortURL:   bm.ShortURL,
		URL:        bm.URL,
	}
}

func (p eventPublisher) publish(ctx context.Context, evt models.BookmarkEvent) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bookmark event", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ShortURL),
		Value: data,
	}

	p.afterCommit(ctx, func() {
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish bookmark event", "event_id", evt.EventID, "type", evt.Type, "error", err)
		} else {
			logger.Log.Infow("Bookmark event published", "event_id", evt.EventID, "type", evt.Type, "short_url", evt.ShortURL)
		}
	})
}
