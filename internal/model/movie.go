package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie represents a movie franchise: a root document whose saga holds
// the individual installments as embedded Media entries.
type Movie struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Type       string               `bson:"type" json:"-"`
	Title      string               `bson:"title" json:"title" binding:"required"`
	Categories []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	Saga       []Media              `bson:"saga" json:"saga"`
}

// SagaEntry resolves a saga entry by its stored identifier. A compound
// filter match on the parent document is not proof the entry exists, so
// callers must re-locate in the fetched document before using the result.
// Returns nil when the identifier does not resolve.
func (m *Movie) SagaEntry(id primitive.ObjectID) *Media {
	for i := range m.Saga {
		if m.Saga[i].ID == id {
			return &m.Saga[i]
		}
	}
	return nil
}
