package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Database struct {
	cli        *mongo.Client
	db         *mongo.Database
	media      *mongo.Collection
	categories *mongo.Collection
	users      *mongo.Collection
	meta       *mongo.Collection
}

const databaseTimeout = 40 * time.Second

// Connect creates database connection
func Connect(uri string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), databaseTimeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	if err = cli.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	db := &Database{
		cli:        cli,
		db:         cli.Database("chocoflix"),
		media:      cli.Database("chocoflix").Collection("media"),
		categories: cli.Database("chocoflix").Collection("categories"),
		users:      cli.Database("chocoflix").Collection("users"),
		meta:       cli.Database("chocoflix").Collection("meta"),
	}

	return db, nil
}

// Disconnect tears the connection down at process exit.
func (d *Database) Disconnect(ctx context.Context) error {
	return d.cli.Disconnect(ctx)
}
