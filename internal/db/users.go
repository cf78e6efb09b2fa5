package db

import (
	"context"
	"fmt"

	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser hashes the password and inserts the account. Passwords are
// stored hashed, never in clear text.
func (d *Database) CreateUser(ctx context.Context, user *model.User, password string) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Password = string(hash)
	if user.PreferedLanguage == "" {
		user.PreferedLanguage = "pt"
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	if _, err := d.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user failed: %w", err)
	}

	return nil
}

func (d *Database) ListUsers(ctx context.Context) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	cur, err := d.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	results := []model.User{}
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *Database) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "email", Value: email}}
	return decodeUser(d.users.FindOne(ctx, filter))
}

func (d *Database) UpdateUser(ctx context.Context, email string, fields bson.M) (*model.User, error) {
	if len(fields) == 0 {
		return d.GetUserByEmail(ctx, email)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "email", Value: email}}
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeUser(d.users.FindOneAndUpdate(ctx, filter, update, opts))
}

func (d *Database) DeleteUser(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "email", Value: email}}
	return decodeUser(d.users.FindOneAndDelete(ctx, filter))
}

// HashPassword is used when an update carries a new password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a clear-text password against the stored hash.
func CheckPassword(user *model.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
