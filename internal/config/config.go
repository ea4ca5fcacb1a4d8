// Package config loads and saves beam model files. A model carries the
// fully solved boundary values for each member's segments; producing those
// values (the global stiffness solve) happens upstream of this tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"beamlab/internal/beam"
	"beamlab/internal/member"
)

const (
	DefaultSamples = 20
	DefaultEI      = 1.0
)

type Model struct {
	Name    string         `yaml:"name"`
	Samples int            `yaml:"samples"`
	Members []MemberConfig `yaml:"members"`
}

type MemberConfig struct {
	Name     string          `yaml:"name"`
	Segments []SegmentConfig `yaml:"segments"`
}

type SegmentConfig struct {
	X1     float64 `yaml:"x1"`
	X2     float64 `yaml:"x2"`
	W1     float64 `yaml:"w1"`
	W2     float64 `yaml:"w2"`
	Q1     float64 `yaml:"q1"`
	Q2     float64 `yaml:"q2"`
	V1     float64 `yaml:"v1"`
	M1     float64 `yaml:"m1"`
	N1     float64 `yaml:"n1"`
	Theta1 float64 `yaml:"theta1"`
	Delta1 float64 `yaml:"delta1"`
	EI     float64 `yaml:"ei"`
}

func DefaultModel() *Model {
	return &Model{
		Name:    "model",
		Samples: DefaultSamples,
	}
}

func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := DefaultModel()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	if m.Samples < 2 {
		m.Samples = DefaultSamples
	}
	return m, nil
}

func Save(path string, m *Model) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build converts the model into read-only members; segment and member
// validation applies at construction time.
func (m *Model) Build() ([]*member.Member, error) {
	if len(m.Members) == 0 {
		return nil, fmt.Errorf("config: model %q has no members", m.Name)
	}

	members := make([]*member.Member, 0, len(m.Members))
	for _, mc := range m.Members {
		segs := make([]*beam.Segment, 0, len(mc.Segments))
		for i, sc := range mc.Segments {
			s, err := beam.NewSegment(beam.SegmentData{
				X1: sc.X1, X2: sc.X2,
				W1: sc.W1, W2: sc.W2,
				Q1: sc.Q1, Q2: sc.Q2,
				V1: sc.V1, M1: sc.M1, N1: sc.N1,
				Theta1: sc.Theta1, Delta1: sc.Delta1,
				EI: sc.EI,
			})
			if err != nil {
				return nil, fmt.Errorf("config: member %q segment %d: %w", mc.Name, i, err)
			}
			segs = append(segs, s)
		}
		mem, err := member.New(mc.Name, segs)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		members = append(members, mem)
	}
	return members, nil
}
