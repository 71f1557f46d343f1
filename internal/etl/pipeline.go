package etl

import (
	"context"
	"fmt"

	"github.com/nbshop/dumpmigrate/internal/sqldump"
	"github.com/nbshop/dumpmigrate/pkg/logger"
	"github.com/nbshop/dumpmigrate/pkg/models"
)

// Source table → target collection, fixed by the source schema.
const (
	ClientTable   = "client"
	ClientsColl   = "clients"
	ProductTable  = "product"
	ProductsColl  = "products"
	PurchaseTable = "user_purchase_record"
	PurchaseColl  = "purchase_records"
)

// Collections lists the three target collections in migration order.
var Collections = []string{ClientsColl, ProductsColl, PurchaseColl}

// Dumps holds the raw text of the three source dump files.
type Dumps struct {
	Client         string
	Product        string
	PurchaseRecord string
}

// Migration runs extraction, mapping and batched writing for the three
// source tables in a fixed order: clients, then products, then
// purchase records. The first fatal error stops the run; there is no
// skip-and-continue mode and no rollback of earlier stages.
type Migration struct {
	Writer *BatchWriter
}

func NewMigration(writer *BatchWriter) *Migration {
	return &Migration{Writer: writer}
}

func (m *Migration) Run(ctx context.Context, dumps Dumps) error {
	stages := []struct {
		table      string
		collection string
		text       string
		mapRow     func([]interface{}) (models.Document, error)
	}{
		{ClientTable, ClientsColl, dumps.Client, mapClientDoc},
		{ProductTable, ProductsColl, dumps.Product, mapProductDoc},
		{PurchaseTable, PurchaseColl, dumps.PurchaseRecord, mapPurchaseDoc},
	}

	for _, stage := range stages {
		logger.Infof("Parsing %s dump ...", stage.table)
		tuples, err := sqldump.ExtractValues(stage.text, stage.table)
		if err != nil {
			return err
		}

		docs := make([]models.Document, 0, len(tuples))
		for i, tuple := range tuples {
			doc, err := stage.mapRow(tuple)
			if err != nil {
				return fmt.Errorf("%s row %d: %w", stage.table, i+1, err)
			}
			docs = append(docs, doc)
		}
		logger.Infof("found %d %s rows", len(docs), stage.table)

		if err := m.Writer.Write(ctx, stage.collection, docs); err != nil {
			return err
		}
	}
	return nil
}

func mapClientDoc(tuple []interface{}) (models.Document, error) {
	row, err := MapClient(tuple)
	if err != nil {
		return models.Document{}, err
	}
	return row.Doc(), nil
}

func mapProductDoc(tuple []interface{}) (models.Document, error) {
	row, err := MapProduct(tuple)
	if err != nil {
		return models.Document{}, err
	}
	return row.Doc(), nil
}

func mapPurchaseDoc(tuple []interface{}) (models.Document, error) {
	row, err := MapPurchaseRecord(tuple)
	if err != nil {
		return models.Document{}, err
	}
	return row.Doc(), nil
}

// ClearCollection deletes every document from a collection, one
// bounded page at a time, and returns how many were deleted. Pages are
// fetched until one comes back empty; the loop is iterative so call
// depth never grows with collection size.
func ClearCollection(ctx context.Context, store DocumentStore, collection string, pageSize int) (int, error) {
	logger.Infof("Clearing collection: %s", collection)
	deleted := 0
	for {
		ids, err := store.List(ctx, collection, pageSize)
		if err != nil {
			return deleted, fmt.Errorf("list %s: %w", collection, err)
		}
		if len(ids) == 0 {
			return deleted, nil
		}
		for _, id := range ids {
			if err := store.Delete(ctx, collection, id); err != nil {
				return deleted, fmt.Errorf("delete %s/%s: %w", collection, id, err)
			}
			deleted++
		}
	}
}
