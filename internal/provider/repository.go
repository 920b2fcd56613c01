package provider

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the service-provider collection in the record store.
const CollectionName = "ServiceProviders"

// ErrNotFound indicates the provider record does not exist.
var ErrNotFound = errors.New("provider not found")

// Repository persists provider records. Updates are partial writes with no
// read-before-write check; two operators reviewing the same record race
// with last-write-wins semantics at the store.
type Repository interface {
	List(ctx context.Context) ([]Provider, error)
	FindByID(ctx context.Context, id string) (Provider, error)
	FindByUID(ctx context.Context, uid string) (Provider, error)
	Insert(ctx context.Context, p Provider) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type providerDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UID             string             `bson:"uid,omitempty"`
	Name            string             `bson:"name,omitempty"`
	Email           string             `bson:"email,omitempty"`
	Phone           string             `bson:"phone,omitempty"`
	City            string             `bson:"city,omitempty"`
	ServiceCategory string             `bson:"serviceCategory,omitempty"`
	Subcategories   []string           `bson:"subcategories,omitempty"`
	AccountStatus   string             `bson:"accountStatus,omitempty"`
	Reason          string             `bson:"reason,omitempty"`
	ReviewedAt      time.Time          `bson:"reviewedAt,omitempty"`
	CNICFront       string             `bson:"cnicFront,omitempty"`
	CNICBack        string             `bson:"cnicBack,omitempty"`
	ProfileImage    string             `bson:"profileImage,omitempty"`
	FCMToken        string             `bson:"fcmToken,omitempty"`
	Role            string             `bson:"role,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty"`
}

const placeholder = "N/A"

func (d providerDoc) toProvider(now time.Time) Provider {
	p := Provider{
		ID:              d.ID.Hex(),
		UID:             d.UID,
		Name:            orPlaceholder(d.Name),
		Email:           orPlaceholder(d.Email),
		Phone:           orPlaceholder(d.Phone),
		City:            orPlaceholder(d.City),
		ServiceCategory: orPlaceholder(d.ServiceCategory),
		Subcategories:   d.Subcategories,
		AccountStatus:   d.AccountStatus,
		Reason:          d.Reason,
		ReviewedAt:      d.ReviewedAt,
		CNICFront:       d.CNICFront,
		CNICBack:        d.CNICBack,
		ProfileImage:    d.ProfileImage,
		FCMToken:        d.FCMToken,
		Role:            d.Role,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if p.Subcategories == nil {
		p.Subcategories = []string{}
	}
	if p.AccountStatus == "" {
		p.AccountStatus = StatusPending
	}
	if p.Role == "" {
		p.Role = "service_provider"
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	return p
}

func orPlaceholder(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// MongoRepository implements Repository on the ServiceProviders collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed provider repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// List materializes the full collection.
func (r *MongoRepository) List(ctx context.Context) ([]Provider, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []providerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	providers := make([]Provider, 0, len(docs))
	for _, d := range docs {
		providers = append(providers, d.toProvider(now))
	}
	return providers, nil
}

// FindByID fetches a provider by record id.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (Provider, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Provider{}, ErrNotFound
	}

	var doc providerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, err
	}
	return doc.toProvider(time.Now().UTC()), nil
}

// FindByUID fetches a provider by the external user id.
func (r *MongoRepository) FindByUID(ctx context.Context, uid string) (Provider, error) {
	var doc providerDoc
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, err
	}
	return doc.toProvider(time.Now().UTC()), nil
}

// Insert stores a new provider record and returns its id.
func (r *MongoRepository) Insert(ctx context.Context, p Provider) (string, error) {
	doc := providerDoc{
		UID:             p.UID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		City:            p.City,
		ServiceCategory: p.ServiceCategory,
		Subcategories:   p.Subcategories,
		AccountStatus:   p.AccountStatus,
		Role:            p.Role,
		CreatedAt:       p.CreatedAt,
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

// Update issues a single partial update on the record.
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

// Delete removes the record unconditionally.
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

// Count returns a server-side document count.
func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns a server-side count of providers in the given state.
// Pending counts include records that never had the field written.
func (r *MongoRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	filter := bson.M{"accountStatus": status}
	if status == StatusPending {
		filter = bson.M{"$or": bson.A{
			bson.M{"accountStatus": StatusPending},
			bson.M{"accountStatus": bson.M{"$exists": false}},
		}}
	}
	return r.coll.CountDocuments(ctx, filter)
}
