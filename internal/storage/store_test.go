package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	summaries := []MemberSummary{{
		Name: "B1", Length: 10,
		MaxShear: 4, MinShear: -4,
		MaxMoment: 20, MinMoment: 0,
	}}
	rows := []SampleRow{
		{Member: "B1", X: 0, Shear: 4, Moment: 0, Deflection: 0},
		{Member: "B1", X: 5, Shear: 0, Moment: 20, Deflection: -0.1666},
		{Member: "B1", X: 10, Shear: -4, Moment: 0, Deflection: 0},
	}

	runID, err := st.Save("point load demo", 3, summaries, rows)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "point load demo", meta.Model)
	assert.Equal(t, 3, meta.Samples)
	require.Len(t, meta.Members, 1)
	assert.InDelta(t, 20.0, meta.Members[0].MaxMoment, 1e-12)

	loaded, err := st.LoadSamples(runID)
	require.NoError(t, err)
	require.Len(t, loaded["B1"], 3)
	assert.InDelta(t, 20.0, loaded["B1"][1].Moment, 1e-9)
	assert.InDelta(t, -0.1666, loaded["B1"][1].Deflection, 1e-9)
}

func TestListEmptyAndPopulated(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, st.Init())
	_, err = st.Save("m1", 2, nil, nil)
	require.NoError(t, err)
	_, err = st.Save("m2", 2, nil, nil)
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("nope")
	assert.Error(t, err)
}
