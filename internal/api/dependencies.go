package api

import (
	"context"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieStore is the slice of the document store the movie endpoints use.
// Every mutating call operates on a single document through a compound
// filter and returns the post-operation state, or nil when nothing
// matched.
type MovieStore interface {
	CreateMovie(ctx context.Context, mov *model.Movie) error
	ListMovies(ctx context.Context) ([]model.Movie, error)
	GetMovie(ctx context.Context, id primitive.ObjectID) (*model.Movie, error)
	FindMovieBySagaEntry(ctx context.Context, id, entryID primitive.ObjectID) (*model.Movie, error)
	AppendSagaEntry(ctx context.Context, id primitive.ObjectID, entry *model.Media) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Movie, error)
	UpdateSagaEntry(ctx context.Context, id, entryID primitive.ObjectID, fields bson.M) (*model.Movie, error)
	PullSagaEntry(ctx context.Context, id, entryID primitive.ObjectID) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id primitive.ObjectID) (*model.Movie, error)
}

type SerieStore interface {
	CreateSerie(ctx context.Context, serie *model.Serie) error
	ListSeries(ctx context.Context) ([]model.Serie, error)
	GetSerie(ctx context.Context, id primitive.ObjectID) (*model.Serie, error)
	FindSerieBySeason(ctx context.Context, id, seasonID primitive.ObjectID) (*model.Serie, error)
	FindSerieByEpisode(ctx context.Context, id, seasonID, episodeID primitive.ObjectID) (*model.Serie, error)
	AppendSeason(ctx context.Context, id primitive.ObjectID) (*model.Serie, error)
	AppendEpisode(ctx context.Context, id, seasonID primitive.ObjectID, episode *model.Media) (*model.Serie, error)
	UpdateSerie(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Serie, error)
	UpdateSeason(ctx context.Context, id, seasonID primitive.ObjectID, fields bson.M) (*model.Serie, error)
	UpdateEpisode(ctx context.Context, id, seasonID, episodeID primitive.ObjectID, fields bson.M) (*model.Serie, error)
	PullSeason(ctx context.Context, id, seasonID primitive.ObjectID) (*model.Serie, error)
	PullEpisode(ctx context.Context, id, seasonID, episodeID primitive.ObjectID) (*model.Serie, error)
	DeleteSerie(ctx context.Context, id primitive.ObjectID) (*model.Serie, error)
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User, password string) error
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, email string, fields bson.M) (*model.User, error)
	DeleteUser(ctx context.Context, email string) (*model.User, error)
}

// parseID converts a path parameter. Malformed identifiers can never
// resolve, so callers report NotFound for the addressed resource.
func parseID(value string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	return id, err == nil
}
