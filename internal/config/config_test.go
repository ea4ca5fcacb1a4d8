package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")

	m := GetPreset("simple_udl")
	require.NotNil(t, m)
	require.NoError(t, Save(path, m))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.Name, loaded.Name)
	require.Len(t, loaded.Members, 1)
	require.Len(t, loaded.Members[0].Segments, 1)
	assert.InDelta(t, 10.0, loaded.Members[0].Segments[0].V1, 1e-12)
	assert.Equal(t, 20, loaded.Samples)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuildRejectsBadSegment(t *testing.T) {
	m := &Model{
		Name: "bad",
		Members: []MemberConfig{{
			Name:     "B1",
			Segments: []SegmentConfig{{X1: 5, X2: 5}},
		}},
	}
	_, err := m.Build()
	assert.Error(t, err)

	_, err = (&Model{Name: "empty"}).Build()
	assert.Error(t, err)
}

func TestPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			m := GetPreset(name)
			require.NotNil(t, m)

			members, err := m.Build()
			require.NoError(t, err)
			require.NotEmpty(t, members)
		})
	}

	assert.Nil(t, GetPreset("nonexistent"))
}

// Preset boundary values must be self-consistent: supports do not move.
func TestPresetBoundaryConditions(t *testing.T) {
	tests := []struct {
		preset   string
		supports []float64
	}{
		{"simple_udl", []float64{0, 10}},
		{"simple_point", []float64{0, 10}},
		{"simple_triangular", []float64{0, 12}},
		{"cantilever_udl", []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			members, err := GetPreset(tt.preset).Build()
			require.NoError(t, err)
			mem := members[0]

			for _, x := range tt.supports {
				d, err := mem.Deflection(x)
				require.NoError(t, err)
				assert.InDeltaf(t, 0, d, 1e-9, "deflection at support x=%g", x)
			}

			// simply supported ends also carry no moment
			if len(tt.supports) == 2 {
				for _, x := range tt.supports {
					v, err := mem.Moment(x)
					require.NoError(t, err)
					assert.InDeltaf(t, 0, v, 1e-9, "moment at pin x=%g", x)
				}
			}
		})
	}
}

func TestCantileverFreeEndUnloaded(t *testing.T) {
	members, err := GetPreset("cantilever_udl").Build()
	if err != nil {
		t.Fatal(err)
	}
	mem := members[0]
	_, x2 := mem.Span()

	v, err := mem.Shear(x2)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-9)

	mo, err := mem.Moment(x2)
	require.NoError(t, err)
	assert.InDelta(t, 0, mo, 1e-9)

	n, err := mem.Axial(x2)
	require.NoError(t, err)
	assert.InDelta(t, 0, n, 1e-9)

	// tip deflection of a uniformly loaded cantilever: -wL^4/8EI
	d, err := mem.Deflection(x2)
	require.NoError(t, err)
	want := -1.5 * math.Pow(6, 4) / (8 * 10000)
	assert.InDelta(t, want, d, 1e-9)
}
