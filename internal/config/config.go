package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLength   = 1000
	DefaultR        = 4.0
	DefaultSigma    = 0.2
	DefaultCoupling = "diffusive"
)

// Parameter is a logistic parameter that unmarshals from either a
// yaml scalar (broadcast to every node) or a sequence (one value per
// node).
type Parameter []float64

func (p *Parameter) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		*p = Parameter{v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := value.Decode(&vs); err != nil {
			return err
		}
		*p = Parameter(vs)
		return nil
	default:
		return fmt.Errorf("config: r must be a number or a list of numbers")
	}
}

func (p Parameter) MarshalYAML() (interface{}, error) {
	if len(p) == 1 {
		return p[0], nil
	}
	return []float64(p), nil
}

type Config struct {
	Length    int       `yaml:"length"`
	R         Parameter `yaml:"r"`
	Sigma     float64   `yaml:"sigma"`
	Coupling  string    `yaml:"coupling"`
	Seed      int64     `yaml:"seed"`
	Verbose   bool      `yaml:"verbose"`
	Adjacency [][]int   `yaml:"adjacency"`
}

func DefaultConfig() *Config {
	return &Config{
		Length:   DefaultLength,
		R:        Parameter{DefaultR},
		Sigma:    DefaultSigma,
		Coupling: DefaultCoupling,
		Adjacency: [][]int{
			{0, 1},
			{0, 0},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
