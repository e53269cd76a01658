package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/resumeverse/internal/pkg/mqx"
)

const (
	SyncTopic = "sync_resume_to_search"
)

type SavedEventProducer interface {
	Produce(ctx context.Context, evt ResumeSavedEvent) error
}

func NewSavedEventProducer(q mq.MQ) (SavedEventProducer, error) {
	return mqx.NewGeneralProducer[ResumeSavedEvent](q, SyncTopic)
}
