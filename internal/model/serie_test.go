package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerieSeason(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	serie := Serie{
		Title: "Brooklyn 99",
		Seasons: []Season{
			{ID: first, Episodes: []Media{}},
			{ID: second, Episodes: []Media{{Title: "Pilot"}}},
		},
	}

	type testCase struct {
		id       primitive.ObjectID
		expected *Season
	}

	testCases := []testCase{
		{id: first, expected: &serie.Seasons[0]},
		{id: second, expected: &serie.Seasons[1]},
		{id: missing, expected: nil},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, serie.Season(tc.id))
	}
}

func TestSerieSeasonEmpty(t *testing.T) {
	serie := Serie{Title: "Brooklyn 99"}
	assert.Nil(t, serie.Season(primitive.NewObjectID()))
}

func TestSerieEpisode(t *testing.T) {
	seasonOne := primitive.NewObjectID()
	seasonTwo := primitive.NewObjectID()
	pilot := primitive.NewObjectID()
	finale := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	serie := Serie{
		Title: "Brooklyn 99",
		Seasons: []Season{
			{
				ID: seasonOne,
				Episodes: []Media{
					{ID: pilot, Title: "Pilot"},
				},
			},
			{
				ID: seasonTwo,
				Episodes: []Media{
					{ID: finale, Title: "Johnny and Dora"},
				},
			},
		},
	}

	type testCase struct {
		season   primitive.ObjectID
		episode  primitive.ObjectID
		expected *Media
	}

	testCases := []testCase{
		// resolves independent of position among siblings
		{season: seasonOne, episode: pilot, expected: &serie.Seasons[0].Episodes[0]},
		{season: seasonTwo, episode: finale, expected: &serie.Seasons[1].Episodes[0]},
		// episode exists, but under a different season: must not resolve
		{season: seasonOne, episode: finale, expected: nil},
		{season: seasonTwo, episode: pilot, expected: nil},
		{season: seasonOne, episode: missing, expected: nil},
		{season: missing, episode: pilot, expected: nil},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, serie.Episode(tc.season, tc.episode))
	}
}

func TestSeasonEpisodeEmpty(t *testing.T) {
	season := Season{ID: primitive.NewObjectID(), Episodes: []Media{}}
	assert.Nil(t, season.Episode(primitive.NewObjectID()))
}
