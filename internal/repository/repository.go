package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by update operations when no document matches the id.
var ErrNotFound = errors.New("document not found")

// maxListSize caps every per-user listing.
const maxListSize = 1000

func newestFirst() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(maxListSize)
}
