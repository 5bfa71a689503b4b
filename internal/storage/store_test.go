package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	require.NoError(t, s.Init())
	return s
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := testStore(t)

	series := [][]float64{
		{0, 1},
		{0.25, 0.75},
		{1, 0},
	}
	meta := RunMetadata{
		R:        []float64{4, 4},
		Sigma:    0.2,
		Coupling: "diffusive",
		Seed:     42,
		Attempts: 1,
		Adjacency: [][]int{
			{0, 1},
			{0, 0},
		},
	}

	runID, err := s.Save(meta, series)
	require.NoError(t, err)
	assert.Contains(t, runID, "diffusive_")

	got, err := s.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, got.ID)
	assert.Equal(t, 3, got.Length)
	assert.Equal(t, 2, got.Nodes)
	assert.Equal(t, []float64{4, 4}, got.R)
	assert.Equal(t, meta.Adjacency, got.Adjacency)
	assert.False(t, got.Degenerate)

	rows, err := s.LoadSeries(runID)
	require.NoError(t, err)
	assert.Equal(t, series, rows)
}

func TestList(t *testing.T) {
	s := testStore(t)

	_, err := s.Save(RunMetadata{Coupling: "kaneko"}, [][]float64{{0.5}})
	require.NoError(t, err)

	runs, err := s.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "kaneko", runs[0].Coupling)
}

func TestList_NoDataDir(t *testing.T) {
	s := New(t.TempDir() + "/missing")
	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoad_Unknown(t *testing.T) {
	s := testStore(t)
	_, err := s.Load("nope")
	assert.Error(t, err)

	_, err = s.LoadSeries("nope")
	assert.Error(t, err)
}
