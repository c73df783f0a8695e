package quiz

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

const DefaultBatchSize = 4

// Selector picks the saved words to practice next.
type Selector struct {
	repository vocabulary.Repository
	batchSize  int
}

func NewSelector(repository vocabulary.Repository, batchSize int) *Selector {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Selector{
		repository: repository,
		batchSize:  batchSize,
	}
}

// SelectBatch returns up to count records in practice order. A non-positive count uses the batch size.
func (s *Selector) SelectBatch(ctx context.Context, count int) ([]vocabulary.Record, error) {
	if count <= 0 {
		count = s.batchSize
	}
	records, err := s.repository.SampleByPriority(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("repository.SampleByPriority > %w", err)
	}
	return records, nil
}
