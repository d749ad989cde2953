package db_test

import (
	"bytes"
	"net/url"
	"testing"
	"time"

	"github.com/grexie/labelnoise/pkg/db"
	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewRun(t *testing.T) {
	opts := noise.Options{Type: noise.NoiseTypeSymmetric, Classes: 10, Rate: 0.2, Seed: 3}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	run := db.NewRun(opts, "train.csv", make([]int, 50), &noise.Result{RealizedRate: 0.18}, now)

	assert.Equal(t, "symmetric", run.Type)
	assert.Equal(t, 50, run.Examples)
	assert.Equal(t, 0.18, run.RealizedRate)
	assert.Equal(t, time.UTC, run.CreatedAt.Location())

	b, err := bson.Marshal(run)
	require.NoError(t, err)
	var d bson.M
	require.NoError(t, bson.Unmarshal(b, &d))
	assert.NotContains(t, d, "_id")
	assert.Equal(t, "train.csv", d["source"])
	assert.Equal(t, 0.2, d["rate"])

	var buf bytes.Buffer
	db.WriteRuns(&buf, []db.Run{run})
	assert.Contains(t, buf.String(), "18.00%")
}

func TestDatabaseName(t *testing.T) {
	u, err := url.Parse("mongodb://localhost:27017/experiments")
	require.NoError(t, err)
	assert.Equal(t, "experiments", db.DatabaseName(u))

	u, err = url.Parse("mongodb://localhost:27017")
	require.NoError(t, err)
	assert.Equal(t, "labelnoise", db.DatabaseName(u))
}
