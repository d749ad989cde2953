package db

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const RunsCollection = "runs"

// Run records one corruption of a label vector.
type Run struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Type         string             `bson:"type"`
	Classes      int                `bson:"classes"`
	Rate         float64            `bson:"rate"`
	Seed         uint64             `bson:"seed"`
	Examples     int                `bson:"examples"`
	RealizedRate float64            `bson:"realized_rate"`
	Source       string             `bson:"source,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func NewRun(opts noise.Options, source string, labels []int, result *noise.Result, now time.Time) Run {
	return Run{
		Type:         opts.Type.String(),
		Classes:      opts.Classes,
		Rate:         opts.Rate,
		Seed:         opts.Seed,
		Examples:     len(labels),
		RealizedRate: result.RealizedRate,
		Source:       source,
		CreatedAt:    now.UTC(),
	}
}

func RecordRun(ctx context.Context, db *mongo.Database, run Run) (primitive.ObjectID, error) {
	c := db.Collection(RunsCollection)
	if err := EnsureIndex(ctx, c, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	}); err != nil {
		return primitive.NilObjectID, err
	}

	return WithTransaction(ctx, db, func(ctx context.Context) (primitive.ObjectID, error) {
		res, err := c.InsertOne(ctx, run)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("unable to record run: %v", err)
		}
		id, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return primitive.NilObjectID, fmt.Errorf("unexpected inserted id %v", res.InsertedID)
		}
		return id, nil
	})
}

// ListRuns returns the most recent runs first.
func ListRuns(ctx context.Context, db *mongo.Database, limit int64) ([]Run, error) {
	cur, err := db.Collection(RunsCollection).Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	runs := []Run{}
	if err := cur.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

func WriteRuns(w io.Writer, runs []Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Runs")
	t.AppendHeader(table.Row{"CREATED", "TYPE", "CLASSES", "RATE", "SEED", "EXAMPLES", "REALIZED", "SOURCE"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.CreatedAt.Format(time.RFC3339),
			r.Type,
			r.Classes,
			fmt.Sprintf("%0.04f", r.Rate),
			r.Seed,
			r.Examples,
			fmt.Sprintf("%0.02f%%", 100*r.RealizedRate),
			r.Source,
		})
	}
	t.Render()
}
