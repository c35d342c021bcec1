package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"tourguide/database"
	"tourguide/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

// collection holds the id-keyed CRUD shared by the three catalog collections.
type collection[T any] struct {
	coll *mongo.Collection
	name string
}

func newCollection[T any](db *mongo.Database, name string, extra ...mongo.IndexModel) collection[T] {
	c := collection[T]{coll: db.Collection(name), name: name}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	indexes := append([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}, extra...)
	if _, err := c.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Warn("Failed to create indexes", zap.String("collection", name), zap.Error(err))
	}
	return c
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return database.WrapWriteError("failed to insert into "+c.name, err)
	}
	return nil
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	if err := database.CheckID(id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc T
	if err := c.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s with id %s: %w", c.name, id, err)
	}
	return &doc, nil
}

func (c collection[T]) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return docs, nil
}

func (c collection[T]) replace(ctx context.Context, id string, doc *T) error {
	if err := database.CheckID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := c.coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return database.WrapWriteError("failed to update "+c.name, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, database.ErrNotFound)
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	if err := database.CheckID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := c.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %s: %w", c.name, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, database.ErrNotFound)
	}
	return nil
}
