package db

import (
	"errors"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
)

// Movies and series share the media collection; the type field keeps
// their filters apart.
const (
	typeMovie = "movie"
	typeSerie = "serie"
)

func decodeMovie(result *mongo.SingleResult) (*model.Movie, error) {
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	mov := model.Movie{}
	if err := result.Decode(&mov); err != nil {
		return nil, err
	}

	return &mov, nil
}

func decodeSerie(result *mongo.SingleResult) (*model.Serie, error) {
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	serie := model.Serie{}
	if err := result.Decode(&serie); err != nil {
		return nil, err
	}

	return &serie, nil
}

func decodeCategory(result *mongo.SingleResult) (*model.Category, error) {
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	category := model.Category{}
	if err := result.Decode(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

func decodeUser(result *mongo.SingleResult) (*model.User, error) {
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	user := model.User{}
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
