package etl

import (
	"context"
	"time"

	"github.com/nbshop/dumpmigrate/pkg/models"
)

// DocumentStore is the collaborator contract the migration needs from
// the target store: merge-upsert batches, bounded listing and deletes.
type DocumentStore interface {
	// CommitBatch merge-upserts every document as one atomic unit,
	// keyed by Document.ID. created_at is stamped with now only on
	// first insert; updated_at is always stamped with now.
	CommitBatch(ctx context.Context, collection string, docs []models.Document, now time.Time) error

	// List returns up to limit document ids from the collection.
	List(ctx context.Context, collection string, limit int) ([]string, error)

	// Delete removes one document by id.
	Delete(ctx context.Context, collection, id string) error
}
