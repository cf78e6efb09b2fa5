package api

import (
	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partial updates are typed per resource: only fields present in the
// request body contribute to the scoped write.

type MovieUpdate struct {
	Title      *string               `json:"title"`
	Categories *[]primitive.ObjectID `json:"categories"`
}

func (u MovieUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Categories != nil {
		fields["categories"] = *u.Categories
	}
	return fields
}

type SerieUpdate struct {
	Title      *string               `json:"title"`
	Categories *[]primitive.ObjectID `json:"categories"`
}

func (u SerieUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Categories != nil {
		fields["categories"] = *u.Categories
	}
	return fields
}

// MediaUpdate mutates one saga entry or episode. Array-valued fields
// replace the stored sequence wholesale.
type MediaUpdate struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	FilePath    *string           `json:"filePath"`
	Duration    *float64          `json:"duration"`
	Posters     *[]string         `json:"posters"`
	Languages   *[]string         `json:"languages"`
	Subtitles   *[]model.Subtitle `json:"subtitles"`
}

func (u MediaUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.FilePath != nil {
		fields["filePath"] = *u.FilePath
	}
	if u.Duration != nil {
		fields["duration"] = *u.Duration
	}
	if u.Posters != nil {
		fields["posters"] = *u.Posters
	}
	if u.Languages != nil {
		fields["languages"] = *u.Languages
	}
	if u.Subtitles != nil {
		subtitles := *u.Subtitles
		for i := range subtitles {
			if subtitles[i].ID.IsZero() {
				subtitles[i].ID = primitive.NewObjectID()
			}
		}
		fields["subtitles"] = subtitles
	}
	return fields
}

// SeasonUpdate can only replace the episode sequence; seasons carry no
// other fields.
type SeasonUpdate struct {
	Episodes *[]model.Media `json:"episodes"`
}

func (u SeasonUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Episodes != nil {
		episodes := *u.Episodes
		for i := range episodes {
			episodes[i].GenerateIDs()
		}
		fields["episodes"] = episodes
	}
	return fields
}

type CategoryUpdate struct {
	Name *string `json:"name"`
}

func (u CategoryUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	return fields
}
