package settings

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The city list lives in a single well-known document.
const (
	CollectionName = "Cities"
	citiesDocID    = "all_cities"
)

// Repository stores the platform settings.
type Repository interface {
	Cities(ctx context.Context) ([]string, error)
	SaveCities(ctx context.Context, cities []string) error
}

type citiesDoc struct {
	ID          string    `bson:"_id"`
	CityList    []string  `bson:"cityList"`
	LastUpdated time.Time `bson:"lastUpdated"`
}

// MongoRepository implements Repository over the settings collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed settings repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func (r *MongoRepository) Cities(ctx context.Context) ([]string, error) {
	var doc citiesDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": citiesDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []string{}, nil
		}
		return nil, err
	}
	if doc.CityList == nil {
		return []string{}, nil
	}
	return doc.CityList, nil
}

func (r *MongoRepository) SaveCities(ctx context.Context, cities []string) error {
	update := bson.M{"$set": bson.M{"cityList": cities, "lastUpdated": time.Now().UTC()}}
	_, err := r.coll.UpdateByID(ctx, citiesDocID, update, options.Update().SetUpsert(true))
	return err
}
