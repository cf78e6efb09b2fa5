package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Season groups the episodes of a TV season. Seasons carry no fields of
// their own besides the generated identifier.
type Season struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Episodes []Media            `bson:"episodes" json:"episodes"`
}

// Episode resolves an episode of this season by its stored identifier,
// or nil. The scan is restricted to this season: an identifier that
// exists under a sibling season does not resolve here.
func (s *Season) Episode(id primitive.ObjectID) *Media {
	for i := range s.Episodes {
		if s.Episodes[i].ID == id {
			return &s.Episodes[i]
		}
	}
	return nil
}

// Serie represents a TV series: Serie -> Season -> Episode, three levels
// of nesting inside a single document.
type Serie struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Type       string               `bson:"type" json:"-"`
	Title      string               `bson:"title" json:"title" binding:"required"`
	Categories []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	Seasons    []Season             `bson:"seasons" json:"seasons"`
}

// Season resolves a season by its stored identifier, or nil.
func (s *Serie) Season(id primitive.ObjectID) *Season {
	for i := range s.Seasons {
		if s.Seasons[i].ID == id {
			return &s.Seasons[i]
		}
	}
	return nil
}

// Episode resolves an episode by walking season then episode. Both
// segments must resolve; a miss at either depth returns nil.
func (s *Serie) Episode(seasonID, episodeID primitive.ObjectID) *Media {
	season := s.Season(seasonID)
	if season == nil {
		return nil
	}
	return season.Episode(episodeID)
}
