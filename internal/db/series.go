package db

import (
	"context"
	"fmt"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *Database) CreateSerie(ctx context.Context, serie *model.Serie) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	serie.Type = typeSerie
	if serie.ID.IsZero() {
		serie.ID = primitive.NewObjectID()
	}
	if serie.Seasons == nil {
		serie.Seasons = []model.Season{}
	}
	for i := range serie.Seasons {
		season := &serie.Seasons[i]
		if season.ID.IsZero() {
			season.ID = primitive.NewObjectID()
		}
		if season.Episodes == nil {
			season.Episodes = []model.Media{}
		}
		for j := range season.Episodes {
			season.Episodes[j].GenerateIDs()
		}
	}

	if _, err := d.media.InsertOne(ctx, serie); err != nil {
		return fmt.Errorf("insert serie failed: %w", err)
	}

	return nil
}

func (d *Database) ListSeries(ctx context.Context) ([]model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "type", Value: typeSerie}}
	cur, err := d.media.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := []model.Serie{}
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *Database) GetSerie(ctx context.Context, id primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeSerie}}
	return decodeSerie(d.media.FindOne(ctx, filter))
}

func (d *Database) FindSerieBySeason(ctx context.Context, id, seasonID primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
	}
	return decodeSerie(d.media.FindOne(ctx, filter))
}

// FindSerieByEpisode matches the episode id at any depth under seasons;
// the caller must locate season then episode in the result to prove the
// episode lives under the requested season.
func (d *Database) FindSerieByEpisode(ctx context.Context, id, seasonID, episodeID primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
		{Key: "seasons.episodes._id", Value: episodeID},
	}
	return decodeSerie(d.media.FindOne(ctx, filter))
}

func (d *Database) AppendSeason(ctx context.Context, id primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	season := model.Season{ID: primitive.NewObjectID(), Episodes: []model.Media{}}

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeSerie}}
	update := bson.M{"$push": bson.M{"seasons": season}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) AppendEpisode(ctx context.Context, id, seasonID primitive.ObjectID, episode *model.Media) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
	}
	update := bson.M{"$push": bson.M{"seasons.$.episodes": episode}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) UpdateSerie(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Serie, error) {
	if len(fields) == 0 {
		return d.GetSerie(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeSerie}}
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) UpdateSeason(ctx context.Context, id, seasonID primitive.ObjectID, fields bson.M) (*model.Serie, error) {
	if len(fields) == 0 {
		return d.FindSerieBySeason(ctx, id, seasonID)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
	}
	update := PartialSubdocumentUpdate("seasons", fields)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

// UpdateEpisode addresses three levels in one write: the serie by id, the
// season through an array filter, the episode through a second one.
func (d *Database) UpdateEpisode(ctx context.Context, id, seasonID, episodeID primitive.ObjectID, fields bson.M) (*model.Serie, error) {
	if len(fields) == 0 {
		return d.FindSerieByEpisode(ctx, id, seasonID, episodeID)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
		{Key: "seasons.episodes._id", Value: episodeID},
	}
	update := PartialSubdocumentUpdateFiltered("seasons.$[season].episodes", "episode", fields)
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
			bson.M{"season._id": seasonID},
			bson.M{"episode._id": episodeID},
		}})

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) PullSeason(ctx context.Context, id, seasonID primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
	}
	update := bson.M{"$pull": bson.M{"seasons": bson.M{"_id": seasonID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) PullEpisode(ctx context.Context, id, seasonID, episodeID primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "type", Value: typeSerie},
		{Key: "seasons._id", Value: seasonID},
		{Key: "seasons.episodes._id", Value: episodeID},
	}
	update := bson.M{"$pull": bson.M{"seasons.$[season].episodes": bson.M{"_id": episodeID}}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
			bson.M{"season._id": seasonID},
		}})

	return decodeSerie(d.media.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) DeleteSerie(ctx context.Context, id primitive.ObjectID) (*model.Serie, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "type", Value: typeSerie}}
	return decodeSerie(d.media.FindOneAndDelete(ctx, filter))
}
