package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is referenced by id from Movie/Serie documents, never embedded.
// Deleting a category does not touch the documents referencing it.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name" binding:"required"`
}
