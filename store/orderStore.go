package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scoop-shop-backend/models"
)

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(collection *mongo.Collection) *MongoOrderStore {
	return &MongoOrderStore{collection: collection}
}

func (s *MongoOrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NewObjectID()
	order.Date = time.Now().UTC()

	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *MongoOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrderStore) DeleteByID(ctx context.Context, id string) (models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, ErrInvalidID
	}

	var order models.Order
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// DeleteByPhone removes at most one order. When several orders share a phone
// number the store picks the match in natural order; callers must not rely on
// which duplicate is removed.
func (s *MongoOrderStore) DeleteByPhone(ctx context.Context, phone string) (models.Order, error) {
	var order models.Order
	err := s.collection.FindOneAndDelete(ctx, bson.M{"phone": phone}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
