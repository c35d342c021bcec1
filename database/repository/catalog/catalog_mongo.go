package catalogRepo

import (
	"context"
	"regexp"

	"tourguide/database"
	"tourguide/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func byRating() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
}

// MongoDestinationRepo implements DestinationRepository using MongoDB.
type MongoDestinationRepo struct {
	c collection[models.Destination]
}

func NewMongoDestinationRepo(db *mongo.Database) DestinationRepository {
	return &MongoDestinationRepo{c: newCollection[models.Destination](db, "destinations",
		mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	)}
}

func (r *MongoDestinationRepo) Create(ctx context.Context, d *models.Destination) error {
	if d.ID == "" {
		d.ID = database.NewID()
	}
	return r.c.insert(ctx, d)
}

func (r *MongoDestinationRepo) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	return r.c.get(ctx, id)
}

func (r *MongoDestinationRepo) List(ctx context.Context) ([]models.Destination, error) {
	return r.c.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *MongoDestinationRepo) SearchByName(ctx context.Context, name string) ([]models.Destination, error) {
	return r.c.find(ctx, bson.M{"name": containsFold(name)})
}

func (r *MongoDestinationRepo) Popular(ctx context.Context, minRating float64, limit int64) ([]models.Destination, error) {
	return r.c.find(ctx, bson.M{"rating": bson.M{"$gte": minRating}}, byRating().SetLimit(limit))
}

func (r *MongoDestinationRepo) Update(ctx context.Context, d *models.Destination) error {
	return r.c.replace(ctx, d.ID, d)
}

func (r *MongoDestinationRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	c collection[models.Hotel]
}

func NewMongoHotelRepo(db *mongo.Database) HotelRepository {
	return &MongoHotelRepo{c: newCollection[models.Hotel](db, "hotels",
		mongo.IndexModel{Keys: bson.D{{Key: "location", Value: 1}}},
	)}
}

func (r *MongoHotelRepo) Create(ctx context.Context, h *models.Hotel) error {
	if h.ID == "" {
		h.ID = database.NewID()
	}
	return r.c.insert(ctx, h)
}

func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	return r.c.get(ctx, id)
}

func (r *MongoHotelRepo) List(ctx context.Context) ([]models.Hotel, error) {
	return r.c.find(ctx, bson.M{}, byRating())
}

func (r *MongoHotelRepo) SearchByLocation(ctx context.Context, location string) ([]models.Hotel, error) {
	return r.c.find(ctx, bson.M{"location": containsFold(location)}, byRating())
}

func (r *MongoHotelRepo) Available(ctx context.Context) ([]models.Hotel, error) {
	return r.c.find(ctx, bson.M{"rooms.available": bson.M{"$gt": 0}}, byRating())
}

func (r *MongoHotelRepo) Update(ctx context.Context, h *models.Hotel) error {
	return r.c.replace(ctx, h.ID, h)
}

func (r *MongoHotelRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

// MongoCabRepo implements CabRepository using MongoDB.
type MongoCabRepo struct {
	c collection[models.Cab]
}

func NewMongoCabRepo(db *mongo.Database) CabRepository {
	return &MongoCabRepo{c: newCollection[models.Cab](db, "cabs",
		mongo.IndexModel{Keys: bson.D{{Key: "vehicleType", Value: 1}, {Key: "pricePerKm", Value: 1}}},
	)}
}

func (r *MongoCabRepo) Create(ctx context.Context, c *models.Cab) error {
	if c.ID == "" {
		c.ID = database.NewID()
	}
	return r.c.insert(ctx, c)
}

func (r *MongoCabRepo) GetByID(ctx context.Context, id string) (*models.Cab, error) {
	return r.c.get(ctx, id)
}

func (r *MongoCabRepo) List(ctx context.Context) ([]models.Cab, error) {
	return r.c.find(ctx, bson.M{}, byRating())
}

// CabFilterQuery builds the Mongo filter for f.
func CabFilterQuery(f models.CabFilter) bson.M {
	filter := bson.M{}
	if f.VehicleType != "" {
		filter["vehicleType"] = f.VehicleType
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["pricePerKm"] = price
	}
	return filter
}

func (r *MongoCabRepo) Filter(ctx context.Context, f models.CabFilter) ([]models.Cab, error) {
	return r.c.find(ctx, CabFilterQuery(f), byRating())
}

func (r *MongoCabRepo) Update(ctx context.Context, c *models.Cab) error {
	return r.c.replace(ctx, c.ID, c)
}

func (r *MongoCabRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
