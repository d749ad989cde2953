package db

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndex creates model on the collection unless an index with the same
// name already exists.
func EnsureIndex(ctx context.Context, c *mongo.Collection, model mongo.IndexModel) error {
	if model.Options == nil || model.Options.Name == nil {
		return fmt.Errorf("must provide a name for index on %s", c.Name())
	}
	expectedName := *model.Options.Name

	cur, err := c.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("unable to list indexes: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return fmt.Errorf("unable to decode bson index document: %v", err)
		}
		if name, ok := d["name"].(string); ok && name == expectedName {
			return nil
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}

	_, err = c.Indexes().CreateOne(ctx, model)
	return err
}

func ConnectMongo(ctx context.Context, mongoUrl string) (*mongo.Database, error) {
	registry := bson.NewRegistry()
	registry.RegisterTypeMapEntry(0x03, reflect.TypeOf(bson.M{}))

	if mongoUrl == "" {
		mongoUrl = "mongodb://localhost:27017/labelnoise"
	}

	uri, err := url.Parse(mongoUrl)
	if err != nil {
		return nil, err
	}

	if client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoUrl).SetRegistry(registry)); err != nil {
		return nil, err
	} else if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("unable to reach %s: %v", uri.Host, err)
	} else {
		return client.Database(DatabaseName(uri)), nil
	}
}

func DatabaseName(uri *url.URL) string {
	if name := strings.Trim(uri.Path, "/"); name != "" {
		return name
	}
	return "labelnoise"
}
