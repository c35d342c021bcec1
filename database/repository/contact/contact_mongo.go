package contactRepo

import (
	"context"
	"fmt"
	"time"

	"tourguide/database"
	"tourguide/models"
	"tourguide/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by the "contacts" collection.
func NewMongoContactRepo(db *mongo.Database) ContactRepository {
	repo := &mongoContactRepo{coll: db.Collection("contacts")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, contactIndexes())
	if err != nil {
		utils.GetLogger().Warn("Failed to create contact indexes", zap.Error(err))
	}
	return repo
}

func contactIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
}

// inboxOrder lists the newest messages first.
func inboxOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func statusUpdate(status models.ContactStatus) bson.M {
	return bson.M{"$set": bson.M{"status": status}}
}

func (r *mongoContactRepo) Create(ctx context.Context, c *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = database.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return database.WrapWriteError("failed to create contact", err)
	}
	return nil
}

func (r *mongoContactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if err := database.CheckID(id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var c models.Contact
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact with id %s: %w", id, err)
	}
	return &c, nil
}

func (r *mongoContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, inboxOrder())
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *mongoContactRepo) SetStatus(ctx context.Context, id string, status models.ContactStatus) error {
	if err := database.CheckID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, statusUpdate(status))
	if err != nil {
		return fmt.Errorf("failed to update contact with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *mongoContactRepo) Delete(ctx context.Context, id string) error {
	if err := database.CheckID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact %s: %w", id, database.ErrNotFound)
	}
	return nil
}
