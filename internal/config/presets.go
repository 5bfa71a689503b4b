package config

import "sort"

// Presets are the canonical example networks shipped with the
// generator. Node l feeds node k when adjacency[l][k] is 1.
var Presets = map[string]*Config{
	// [1]->[2]: a driver and a single driven node.
	"xy": {
		Length: DefaultLength, R: Parameter{4}, Sigma: 0.2, Coupling: "diffusive",
		Adjacency: [][]int{
			{0, 1},
			{0, 0},
		},
	},
	// [1]->[2]->[3]->[4]
	"serial": {
		Length: DefaultLength, R: Parameter{4}, Sigma: 0.2, Coupling: "diffusive",
		Adjacency: [][]int{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
			{0, 0, 0, 0},
		},
	},
	// [1]->[2], [1]->[3], [2]->[4], [3]->[4]: two parallel paths.
	"parallel": {
		Length: DefaultLength, R: Parameter{4}, Sigma: 0.1, Coupling: "diffusive",
		Adjacency: [][]int{
			{0, 1, 1, 0},
			{0, 0, 0, 1},
			{0, 0, 0, 1},
			{0, 0, 0, 0},
		},
	},
	// parallel paths plus the [2]->[3] bridge link.
	"wheatstone": {
		Length: DefaultLength, R: Parameter{4}, Sigma: 0.15, Coupling: "diffusive",
		Adjacency: [][]int{
			{0, 1, 1, 0},
			{0, 0, 1, 1},
			{0, 0, 0, 1},
			{0, 0, 0, 0},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.R = append(Parameter(nil), p.R...)
	cfg.Adjacency = make([][]int, len(p.Adjacency))
	for i, row := range p.Adjacency {
		cfg.Adjacency[i] = append([]int(nil), row...)
	}
	return &cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
