package service

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
)

// ActivityService records and reads the activity journal.
type ActivityService interface {
	// Record stores journal entries. Entries without an ID or timestamp get one.
	Record(ctx context.Context, entries ...*model.LogEntry) error

	// Activity returns one page of entries, newest first.
	Activity(ctx context.Context, f model.ActivityFilter) (*ActivityPage, error)
}

// ActivityPage is one page of the journal together with the filter that
// produced it.
type ActivityPage struct {
	Entries []*model.LogEntry
	Total   int64
	Filter  model.ActivityFilter
}

type activityService struct {
	repo repository.ActivityRepositoryInterface
}

// NewActivityService creates an activity service backed by repo.
func NewActivityService(repo repository.ActivityRepositoryInterface) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Record(ctx context.Context, entries ...*model.LogEntry) error {
	kept := entries[:0:0]
	for _, entry := range entries {
		if entry != nil {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return s.repo.Append(ctx, kept...)
}

func (s *activityService) Activity(ctx context.Context, f model.ActivityFilter) (*ActivityPage, error) {
	f = f.Normalize()

	entries, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.LogEntry{}
	}
	return &ActivityPage{Entries: entries, Total: total, Filter: f}, nil
}
