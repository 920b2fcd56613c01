package order

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the record store.
const (
	OrdersCollection    = "orders"
	CompletedCollection = "completedRequests"
)

// ErrNotFound indicates the record does not exist.
var ErrNotFound = errors.New("order record not found")

// Repository reads order and completed-request records.
type Repository interface {
	ListOrders(ctx context.Context) ([]Order, error)
	ListOrdersByField(ctx context.Context, field, value string) ([]Order, error)
	ListCompleted(ctx context.Context) ([]CompletedRequest, error)
	ListCompletedByField(ctx context.Context, field, value string) ([]CompletedRequest, error)
	FindCompletedByID(ctx context.Context, id string) (CompletedRequest, error)
}

// MongoRepository implements Repository over the two order collections.
type MongoRepository struct {
	orders    *mongo.Collection
	completed *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed order repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		orders:    db.Collection(OrdersCollection),
		completed: db.Collection(CompletedCollection),
	}
}

func (r *MongoRepository) ListOrders(ctx context.Context) ([]Order, error) {
	return r.findOrders(ctx, bson.M{})
}

func (r *MongoRepository) ListOrdersByField(ctx context.Context, field, value string) ([]Order, error) {
	return r.findOrders(ctx, bson.M{field: value})
}

func (r *MongoRepository) findOrders(ctx context.Context, filter bson.M) ([]Order, error) {
	cursor, err := r.orders.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toOrder())
	}
	return orders, nil
}

func (r *MongoRepository) ListCompleted(ctx context.Context) ([]CompletedRequest, error) {
	return r.findCompleted(ctx, bson.M{})
}

func (r *MongoRepository) ListCompletedByField(ctx context.Context, field, value string) ([]CompletedRequest, error) {
	return r.findCompleted(ctx, bson.M{field: value})
}

func (r *MongoRepository) findCompleted(ctx context.Context, filter bson.M) ([]CompletedRequest, error) {
	cursor, err := r.completed.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []completedDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	completed := make([]CompletedRequest, 0, len(docs))
	for _, d := range docs {
		completed = append(completed, d.toCompleted())
	}
	return completed, nil
}

func (r *MongoRepository) FindCompletedByID(ctx context.Context, id string) (CompletedRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return CompletedRequest{}, ErrNotFound
	}

	var doc completedDoc
	if err := r.completed.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CompletedRequest{}, ErrNotFound
		}
		return CompletedRequest{}, err
	}
	return doc.toCompleted(), nil
}
