package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPartialSubdocumentUpdate(t *testing.T) {
	type testCase struct {
		scope  string
		fields bson.M
		output bson.M
	}

	testCases := []testCase{
		{
			scope:  "saga",
			fields: bson.M{"title": "Harry Potter ea Pedra Filosofal"},
			output: bson.M{"$set": bson.M{"saga.$.title": "Harry Potter ea Pedra Filosofal"}},
		},
		{
			scope: "saga",
			fields: bson.M{
				"title":    "Pilot",
				"duration": 1000,
			},
			output: bson.M{"$set": bson.M{
				"saga.$.title":    "Pilot",
				"saga.$.duration": 1000,
			}},
		},
		{
			// array-valued fields replace the stored array, no append
			scope:  "seasons",
			fields: bson.M{"episodes": []bson.M{{"title": "Pilot"}}},
			output: bson.M{"$set": bson.M{"seasons.$.episodes": []bson.M{{"title": "Pilot"}}}},
		},
		{
			// nothing to write: no $set bucket at all
			scope:  "saga",
			fields: bson.M{},
			output: bson.M{},
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.output, PartialSubdocumentUpdate(tc.scope, tc.fields))
	}
}

func TestPartialSubdocumentUpdateFiltered(t *testing.T) {
	fields := bson.M{"title": "Johnny and Dora", "duration": 1260}

	output := PartialSubdocumentUpdateFiltered("seasons.$[season].episodes", "episode", fields)

	expected := bson.M{"$set": bson.M{
		"seasons.$[season].episodes.$[episode].title":    "Johnny and Dora",
		"seasons.$[season].episodes.$[episode].duration": 1260,
	}}
	assert.Equal(t, expected, output)
}

func TestPartialSubdocumentUpdateFilteredEmpty(t *testing.T) {
	output := PartialSubdocumentUpdateFiltered("seasons.$[season].episodes", "episode", bson.M{})
	assert.Equal(t, bson.M{}, output)
}
