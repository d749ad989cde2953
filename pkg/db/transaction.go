package db

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
)

// SupportsTransactions is false for standalone servers, which reject sessions
// with transactions.
var SupportsTransactions = func() bool { return os.Getenv("MONGO_SUPPORTS_TRANSACTIONS") == "true" }

func WithTransaction[T any](ctx context.Context, db *mongo.Database, callback func(ctx context.Context) (T, error)) (T, error) {
	if !SupportsTransactions() {
		return callback(ctx)
	}

	session, err := db.Client().StartSession()
	if err != nil {
		var zero T
		return zero, err
	}
	defer session.EndSession(ctx)

	v, err := session.WithTransaction(ctx, func(ctx mongo.SessionContext) (any, error) {
		return callback(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
