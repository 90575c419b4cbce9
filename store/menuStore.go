package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scoop-shop-backend/models"
)

type MongoMenuStore struct {
	collection *mongo.Collection
}

func NewMongoMenuStore(collection *mongo.Collection) *MongoMenuStore {
	return &MongoMenuStore{collection: collection}
}

func (s *MongoMenuStore) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {
	opts := options.Find().SetProjection(bson.M{"category": 1, "items.name": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	categories := []models.CategorySummary{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// AddItem appends the item to the category's menu, creating the menu document
// if the category does not exist yet. Items with a name that already exists in
// the category are appended anyway, matching the storefront's historical
// behaviour.
func (s *MongoMenuStore) AddItem(ctx context.Context, category string, item models.Item) (models.Menu, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var menu models.Menu
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"category": category},
		bson.M{"$push": bson.M{"items": item}},
		opts,
	).Decode(&menu)
	if err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

// UpdateItemQuantity sets the quantity of the first item named itemName in the
// category's menu. The positional operator updates exactly one array element.
func (s *MongoMenuStore) UpdateItemQuantity(ctx context.Context, category, itemName string, quantity int) (models.Menu, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var menu models.Menu
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"category": category, "items.name": itemName},
		bson.M{"$set": bson.M{"items.$.quantity": quantity}},
		opts,
	).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Menu{}, ErrNotFound
	}
	if err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}
