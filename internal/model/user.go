package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account. Password holds the bcrypt hash, never the clear
// text, and is excluded from JSON responses.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	PreferedLanguage string             `bson:"preferedLanguage" json:"preferedLanguage"`
	UseSubtitle      bool               `bson:"useSubtitle" json:"useSubtitle"`
	Role             string             `bson:"role" json:"role"`
}
