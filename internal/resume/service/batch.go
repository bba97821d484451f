package service

import (
	"context"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"golang.org/x/sync/errgroup"
)

// ParseBatch parses docs in parallel, at most BatchWorkers at a time.
// Results are in input order and a failed document never affects the others.
func (s *Service) ParseBatch(ctx context.Context, docs []domain.Document) []domain.BatchItem {
	items := make([]domain.BatchItem, len(docs))

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i := range docs {
		i := i
		g.Go(func() error {
			items[i] = s.parseItem(ctx, docs[i])
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	for _, it := range items {
		if it.Status == domain.BatchSuccess {
			succeeded++
		}
	}
	s.log.Info().Int("files", len(docs)).Int("succeeded", succeeded).Msg("batch processed")

	return items
}

func (s *Service) parseItem(ctx context.Context, doc domain.Document) domain.BatchItem {
	record, err := s.Parse(ctx, doc)
	if err != nil {
		return ErrorItem(ctx, doc.Filename, ClassifyError(err, doc))
	}
	return domain.BatchItem{
		Filename: doc.Filename,
		Status:   domain.BatchSuccess,
		Data:     record,
	}
}
