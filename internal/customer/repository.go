package customer

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the customer collection in the record store.
const CollectionName = "Customers"

// ErrNotFound indicates the customer record does not exist.
var ErrNotFound = errors.New("customer not found")

// Repository persists customer records. List returns the entire collection;
// filtering, sorting and pagination happen in memory, which bounds the
// design to small-to-medium record counts.
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id string) (Customer, error)
	FindByUID(ctx context.Context, uid string) (Customer, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// customerDoc is the wire shape of a customer record. Fields are optional in
// the store; normalization happens once when the doc crosses this boundary.
type customerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UID       string             `bson:"uid,omitempty"`
	Name      string             `bson:"name,omitempty"`
	Email     string             `bson:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	City      string             `bson:"city,omitempty"`
	Role      string             `bson:"role,omitempty"`
	FCMToken  string             `bson:"fcmToken,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

const placeholder = "N/A"

func (d customerDoc) toCustomer(now time.Time) Customer {
	c := Customer{
		ID:        d.ID.Hex(),
		UID:       d.UID,
		Name:      orPlaceholder(d.Name),
		Email:     orPlaceholder(d.Email),
		Phone:     orPlaceholder(d.Phone),
		City:      orPlaceholder(d.City),
		Role:      d.Role,
		FCMToken:  d.FCMToken,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if c.Role == "" {
		c.Role = "customer"
	}
	// A record without a creation time is indistinguishable from one
	// created at query time.
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	return c
}

func orPlaceholder(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// MongoRepository implements Repository on the Customers collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed customer repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// List materializes the full collection.
func (r *MongoRepository) List(ctx context.Context) ([]Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []customerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customers := make([]Customer, 0, len(docs))
	for _, d := range docs {
		customers = append(customers, d.toCustomer(now))
	}
	return customers, nil
}

// FindByID fetches a customer by record id.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Customer{}, ErrNotFound
	}

	var doc customerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return doc.toCustomer(time.Now().UTC()), nil
}

// FindByUID fetches a customer by the external user id.
func (r *MongoRepository) FindByUID(ctx context.Context, uid string) (Customer, error) {
	var doc customerDoc
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return doc.toCustomer(time.Now().UTC()), nil
}

// Update issues a partial update on the record.
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

// Delete removes the record unconditionally. No soft delete exists.
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
