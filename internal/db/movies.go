package db

import (
	"context"
	"fmt"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *Database) CreateMovie(ctx context.Context, mov *model.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	mov.Type = typeMovie
	if mov.ID.IsZero() {
		mov.ID = primitive.NewObjectID()
	}
	if mov.Saga == nil {
		mov.Saga = []model.Media{}
	}
	for i := range mov.Saga {
		mov.Saga[i].GenerateIDs()
	}

	if _, err := d.media.InsertOne(ctx, mov); err != nil {
		return fmt.Errorf("insert movie failed: %w", err)
	}

	return nil
}

func (d *Database) ListMovies(ctx context.Context) ([]model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "type", Value: typeMovie}}
	cur, err := d.media.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := []model.Movie{}
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *Database) GetMovie(ctx context.Context, id primitive.ObjectID) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeMovie}}
	return decodeMovie(d.media.FindOne(ctx, filter))
}

// FindMovieBySagaEntry fetches via the compound filter. A non-nil result
// proves the root matched, not that the entry exists at depth; callers
// re-locate in the returned document.
func (d *Database) FindMovieBySagaEntry(ctx context.Context, id, entryID primitive.ObjectID) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeMovie},
		{Key: "saga._id", Value: entryID},
	}
	return decodeMovie(d.media.FindOne(ctx, filter))
}

func (d *Database) AppendSagaEntry(ctx context.Context, id primitive.ObjectID, entry *model.Media) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeMovie}}
	update := bson.M{"$push": bson.M{"saga": entry}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeMovie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) UpdateMovie(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Movie, error) {
	// an empty $set is rejected by the server
	if len(fields) == 0 {
		return d.GetMovie(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeMovie}}
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeMovie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) UpdateSagaEntry(ctx context.Context, id, entryID primitive.ObjectID, fields bson.M) (*model.Movie, error) {
	if len(fields) == 0 {
		return d.FindMovieBySagaEntry(ctx, id, entryID)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeMovie},
		{Key: "saga._id", Value: entryID},
	}
	update := PartialSubdocumentUpdate("saga", fields)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeMovie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

// PullSagaEntry removes the matching entry and returns the post-update
// document, so the caller can verify the removal took effect.
func (d *Database) PullSagaEntry(ctx context.Context, id, entryID primitive.ObjectID) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeMovie},
		{Key: "saga._id", Value: entryID},
	}
	update := bson.M{"$pull": bson.M{"saga": bson.M{"_id": entryID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeMovie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) DeleteMovie(ctx context.Context, id primitive.ObjectID) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeMovie}}
	return decodeMovie(d.media.FindOneAndDelete(ctx, filter))
}
