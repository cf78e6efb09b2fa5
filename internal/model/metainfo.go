package model

// MetaInfo tracks the service and schema versions the database was last
// touched by.
type MetaInfo struct {
	Version         string `bson:"version"`
	DatabaseVersion uint   `bson:"databaseVersion"`
}
