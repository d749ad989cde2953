package labels_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grexie/labelnoise/pkg/labels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	got, err := labels.Read(strings.NewReader("label\n3\n\n 1\n0,extra\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 0}, got)

	got, err = labels.Read(strings.NewReader("2\n2\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got)

	_, err = labels.Read(strings.NewReader("label\ncat\n"))
	assert.ErrorContains(t, err, "record 2")
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	require.NoError(t, labels.WriteFile(path, []int{4, 0, 9}))

	got, err := labels.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 9}, got)

	var buf bytes.Buffer
	require.NoError(t, labels.Write(&buf, []int{1}))
	assert.Equal(t, "label\n1\n", buf.String())
}

func TestNumClasses(t *testing.T) {
	assert.Equal(t, 0, labels.NumClasses(nil))
	assert.Equal(t, 10, labels.NumClasses([]int{3, 9, 0}))
}
