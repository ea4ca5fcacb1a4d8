package config

import "sort"

// Presets are textbook load cases with hand-solved boundary values, useful
// for trying the tool without running a solver. Sign convention follows the
// segment formulas: positive w acts opposite the positive shear gradient
// (gravity loads are positive), deflections under gravity come out negative.
var Presets = map[string]*Model{
	// simply supported span, uniform load: V1 = wL/2, theta1 = -wL^3/24EI
	"simple_udl": {
		Name:    "simply supported, uniform load",
		Samples: 20,
		Members: []MemberConfig{{
			Name: "B1",
			Segments: []SegmentConfig{{
				X1: 0, X2: 10,
				W1: 2, W2: 2,
				V1:     2.0 * 10 / 2,
				Theta1: -2.0 * 10 * 10 * 10 / (24 * 20000),
				EI:     20000,
			}},
		}},
	},

	// simply supported span, midspan point load: the solver splits the
	// member at the load; slope is zero and moment peaks at the joint
	"simple_point": {
		Name:    "simply supported, midspan point load",
		Samples: 20,
		Members: []MemberConfig{{
			Name: "B1",
			Segments: []SegmentConfig{
				{
					X1: 0, X2: 5,
					V1:     10.0 / 2,
					Theta1: -10.0 * 10 * 10 / (16 * 20000),
					EI:     20000,
				},
				{
					X1: 5, X2: 10,
					V1:     -10.0 / 2,
					M1:     10.0 * 10 / 4,
					Delta1: -10.0 * 10 * 10 * 10 / (48 * 20000),
					EI:     20000,
				},
			},
		}},
	},

	// simply supported span, triangular load rising toward the right
	// support: V1 = wL/6, theta1 = -7wL^3/360EI
	"simple_triangular": {
		Name:    "simply supported, triangular load",
		Samples: 20,
		Members: []MemberConfig{{
			Name: "B1",
			Segments: []SegmentConfig{{
				X1: 0, X2: 12,
				W1: 0, W2: 3,
				V1:     3.0 * 12 / 6,
				Theta1: -7.0 * 3 * 12 * 12 * 12 / (360 * 30000),
				EI:     30000,
			}},
		}},
	},

	// cantilever fixed at x=0 under uniform transverse load and a uniform
	// axial drag that unloads to zero at the free end
	"cantilever_udl": {
		Name:    "cantilever, uniform load",
		Samples: 20,
		Members: []MemberConfig{{
			Name: "B1",
			Segments: []SegmentConfig{{
				X1: 0, X2: 6,
				W1: 1.5, W2: 1.5,
				Q1: 0.8, Q2: 0.8,
				V1: 1.5 * 6,
				M1: -1.5 * 6 * 6 / 2,
				N1: -0.8 * 6,
				EI: 10000,
			}},
		}},
	},
}

func GetPreset(name string) *Model {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
