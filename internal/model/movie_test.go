package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMovieSagaEntry(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	movie := Movie{
		Title: "Harry Potter",
		Saga: []Media{
			{ID: first, Title: "Harry Potter and the Philosopher's Stone"},
			{ID: second, Title: "Harry Potter and the Chamber of Secrets"},
		},
	}

	assert.Equal(t, &movie.Saga[0], movie.SagaEntry(first))
	assert.Equal(t, &movie.Saga[1], movie.SagaEntry(second))
	assert.Nil(t, movie.SagaEntry(primitive.NewObjectID()))
}

func TestMovieSagaEntryEmpty(t *testing.T) {
	movie := Movie{Title: "Harry Potter"}
	assert.Nil(t, movie.SagaEntry(primitive.NewObjectID()))
}

func TestMediaGenerateIDs(t *testing.T) {
	entry := Media{
		Title:     "Pilot",
		Subtitles: []Subtitle{{Language: "pt-BR", FilePath: "pilot.pt-br.srt"}},
	}

	entry.GenerateIDs()

	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Subtitles[0].ID.IsZero())

	// already assigned identifiers are kept
	id := entry.ID
	entry.GenerateIDs()
	assert.Equal(t, id, entry.ID)
}
