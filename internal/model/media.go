package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subtitle is one subtitle track attached to a media entry.
type Subtitle struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Language string             `bson:"language" json:"language" binding:"required"`
	FilePath string             `bson:"filePath" json:"filePath" binding:"required"`
}

// Media is the shape shared by movie saga entries and serie episodes
type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title" binding:"required"`
	Description string             `bson:"description" json:"description" binding:"required"`
	FilePath    string             `bson:"filePath" json:"filePath" binding:"required"`
	Duration    float64            `bson:"duration" json:"duration" binding:"required"`
	Posters     []string           `bson:"posters,omitempty" json:"posters,omitempty"`
	Languages   []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Subtitles   []Subtitle         `bson:"subtitles,omitempty" json:"subtitles,omitempty" binding:"omitempty,dive"`
}

// GenerateIDs assigns fresh identifiers to the entry and its subtitles.
// Identifiers are generated once, before insertion, and never reused.
func (m *Media) GenerateIDs() {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	for i := range m.Subtitles {
		if m.Subtitles[i].ID.IsZero() {
			m.Subtitles[i].ID = primitive.NewObjectID()
		}
	}
}
