package etl

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/nbshop/dumpmigrate/pkg/models"
)

// fakeStore is an in-memory DocumentStore with the same merge-upsert
// timestamp semantics as the Mongo implementation.
type fakeStore struct {
	docs    map[string]map[string]map[string]interface{}
	commits map[string][]int
	failOn  string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:    make(map[string]map[string]map[string]interface{}),
		commits: make(map[string][]int),
	}
}

func (f *fakeStore) CommitBatch(_ context.Context, collection string, docs []models.Document, now time.Time) error {
	if f.failOn == collection {
		return errors.New("commit failed")
	}

	coll := f.docs[collection]
	if coll == nil {
		coll = make(map[string]map[string]interface{})
		f.docs[collection] = coll
	}

	for _, d := range docs {
		stored, ok := coll[d.ID]
		if !ok {
			stored = map[string]interface{}{"created_at": now}
			coll[d.ID] = stored
		}
		for k, v := range d.Fields {
			stored[k] = v
		}
		stored["updated_at"] = now
	}

	f.commits[collection] = append(f.commits[collection], len(docs))
	return nil
}

func (f *fakeStore) List(_ context.Context, collection string, limit int) ([]string, error) {
	var ids []string
	for id := range f.docs[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeStore) Delete(_ context.Context, collection, id string) error {
	delete(f.docs[collection], id)
	return nil
}
