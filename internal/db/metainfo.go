package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Version of the database schema.
const Version uint = 1

const metaInfoKey = "metaInfo"

func (d *Database) GetMetaInfo(ctx context.Context) (*model.MetaInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	result := d.meta.FindOne(ctx, bson.D{{Key: "_id", Value: metaInfoKey}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return &model.MetaInfo{}, nil
	}

	if result.Err() != nil {
		return nil, result.Err()
	}

	mi := model.MetaInfo{}
	if err := result.Decode(&mi); err != nil {
		return nil, err
	}

	return &mi, nil
}

func (d *Database) SetMetaInfo(ctx context.Context, mi model.MetaInfo) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	filter := bson.D{{Key: "_id", Value: metaInfoKey}}

	_, err := d.meta.ReplaceOne(ctx, filter, mi, opts)
	return err
}

// EnsureIndexes creates the indexes the catalog queries rely on: unique
// account emails and the media type discriminator.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	_, err := d.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users index failed: %w", err)
	}

	_, err = d.media.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create media index failed: %w", err)
	}

	return nil
}
