package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/nbshop/dumpmigrate/pkg/logger"
	"github.com/nbshop/dumpmigrate/pkg/models"
)

// DefaultBatchSize leaves headroom under typical per-batch store
// limits (Firestore caps a batch at 500).
const DefaultBatchSize = 400

// BatchWriter partitions documents into bounded batches and commits
// each batch as one merge-upsert unit, reporting progress after every
// commit. Batches are independent: a failure leaves earlier batches
// applied, and the whole run is safe to repeat because writes are
// keyed upserts.
type BatchWriter struct {
	Store     DocumentStore
	BatchSize int
}

func NewBatchWriter(store DocumentStore, batchSize int) *BatchWriter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &BatchWriter{Store: store, BatchSize: batchSize}
}

func (w *BatchWriter) Write(ctx context.Context, collection string, docs []models.Document) error {
	now := time.Now().UTC()
	total := len(docs)

	for start := 0; start < total; start += w.BatchSize {
		end := start + w.BatchSize
		if end > total {
			end = total
		}
		if err := w.Store.CommitBatch(ctx, collection, docs[start:end], now); err != nil {
			return fmt.Errorf("commit batch to %s: %w", collection, err)
		}
		logger.Infof("[%s] committed %d/%d", collection, end, total)
	}
	return nil
}
