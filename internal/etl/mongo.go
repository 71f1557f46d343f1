package etl

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nbshop/dumpmigrate/pkg/models"
)

// MongoStore implements DocumentStore on a MongoDB database. One batch
// commit is one ordered BulkWrite of upserts.
type MongoStore struct {
	Client   *mongo.Client
	Database string
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{Client: client, Database: database}
}

func (s *MongoStore) coll(name string) *mongo.Collection {
	return s.Client.Database(s.Database).Collection(name)
}

func (s *MongoStore) CommitBatch(ctx context.Context, collection string, docs []models.Document, now time.Time) error {
	if len(docs) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(docs))
	for _, doc := range docs {
		set := bson.M{"updated_at": now}
		for k, v := range doc.Fields {
			set[k] = v
		}
		model := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": doc.ID}).
			SetUpdate(bson.M{
				"$set":         set,
				"$setOnInsert": bson.M{"created_at": now},
			}).
			SetUpsert(true)
		writes = append(writes, model)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	_, err := s.coll(collection).BulkWrite(ctx, writes)
	return err
}

func (s *MongoStore) List(ctx context.Context, collection string, limit int) ([]string, error) {
	findOpts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 1})

	cursor, err := s.coll(collection).Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.coll(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
