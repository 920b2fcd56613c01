package ads

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the ads collection in the record store.
const CollectionName = "Ads"

// ErrNotFound indicates the ad record does not exist.
var ErrNotFound = errors.New("ad not found")

// Repository persists ad records.
type Repository interface {
	List(ctx context.Context) ([]Ad, error)
	Insert(ctx context.Context, ad Ad) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	// IncrementCounter atomically bumps clicks or impressions.
	IncrementCounter(ctx context.Context, id, counter string) error
}

type adDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title,omitempty"`
	Description string             `bson:"description,omitempty"`
	Details     string             `bson:"details,omitempty"`
	Link        string             `bson:"link,omitempty"`
	BgColor     string             `bson:"bgColor,omitempty"`
	TextColor   string             `bson:"textColor,omitempty"`
	IsActive    *bool              `bson:"isActive,omitempty"`
	Position    string             `bson:"position,omitempty"`
	Width       int                `bson:"width,omitempty"`
	Height      int                `bson:"height,omitempty"`
	Clicks      int64              `bson:"clicks,omitempty"`
	Impressions int64              `bson:"impressions,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

func (d adDoc) toAd() Ad {
	ad := Ad{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Details:     d.Details,
		Link:        d.Link,
		BgColor:     d.BgColor,
		TextColor:   d.TextColor,
		IsActive:    d.IsActive == nil || *d.IsActive,
		Position:    d.Position,
		Width:       d.Width,
		Height:      d.Height,
		Clicks:      d.Clicks,
		Impressions: d.Impressions,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if ad.BgColor == "" {
		ad.BgColor = defaultBgColor
	}
	if ad.TextColor == "" {
		ad.TextColor = defaultTextColor
	}
	if ad.Position == "" {
		ad.Position = defaultPosition
	}
	if ad.Width == 0 {
		ad.Width = bannerWidth
	}
	if ad.Height == 0 {
		ad.Height = bannerHeight
	}
	return ad
}

// MongoRepository implements Repository on the Ads collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed ads repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// List returns all ads, newest first.
func (r *MongoRepository) List(ctx context.Context) ([]Ad, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []adDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	adsList := make([]Ad, 0, len(docs))
	for _, d := range docs {
		adsList = append(adsList, d.toAd())
	}
	return adsList, nil
}

// Insert stores a new ad and returns its id.
func (r *MongoRepository) Insert(ctx context.Context, ad Ad) (string, error) {
	active := ad.IsActive
	doc := adDoc{
		Title:       ad.Title,
		Description: ad.Description,
		Details:     ad.Details,
		Link:        ad.Link,
		BgColor:     ad.BgColor,
		TextColor:   ad.TextColor,
		IsActive:    &active,
		Position:    ad.Position,
		Width:       ad.Width,
		Height:      ad.Height,
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Update issues a partial update on the ad.
func (r *MongoRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the ad.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementCounter bumps the named counter and stamps updatedAt in one write.
func (r *MongoRepository) IncrementCounter(ctx context.Context, id, counter string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$inc": bson.M{counter: 1},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
