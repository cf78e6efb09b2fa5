package db

import (
	"context"
	"fmt"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *Database) CreateCategory(ctx context.Context, category *model.Category) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	if _, err := d.categories.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("insert category failed: %w", err)
	}

	return nil
}

func (d *Database) ListCategories(ctx context.Context) ([]model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	cur, err := d.categories.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	results := []model.Category{}
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *Database) GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}}
	return decodeCategory(d.categories.FindOne(ctx, filter))
}

func (d *Database) UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Category, error) {
	if len(fields) == 0 {
		return d.GetCategory(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeCategory(d.categories.FindOneAndUpdate(ctx, filter, update, opts))
}

// DeleteCategory removes the category only. Movie/Serie documents keep
// their references; cascade behavior is an open product decision.
func (d *Database) DeleteCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}}
	return decodeCategory(d.categories.FindOneAndDelete(ctx, filter))
}
