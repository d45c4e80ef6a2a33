package config

import "sort"

var Presets = map[string]*Config{
	"fifth": {
		String1Hz: 261.63, String2Hz: 392.00,
		Damping: 0.00001, BridgeStiffness: 1.0,
		Duration: 2.0, SampleStride: 100,
		Plucks: []Pluck{{String: 0, Position: 0.5, Amplitude: 1.0}},
	},
	"octave": {
		String1Hz: 220.00, String2Hz: 440.00,
		Damping: 0.00001, BridgeStiffness: 1.0,
		Duration: 2.0, SampleStride: 100,
		Plucks: []Pluck{{String: 0, Position: 0.5, Amplitude: 1.0}},
	},
	"unison": {
		String1Hz: 261.63, String2Hz: 261.63,
		Damping: 0.00001, BridgeStiffness: 1.0,
		Duration: 3.0, SampleStride: 100,
		Plucks: []Pluck{{String: 0, Position: 0.3, Amplitude: 0.8}},
	},
	"detuned": {
		String1Hz: 261.63, String2Hz: 264.00,
		Damping: 0.00001, BridgeStiffness: 1.0,
		Duration: 4.0, SampleStride: 100,
		Plucks: []Pluck{{String: 0, Position: 0.5, Amplitude: 1.0}},
	},
	"loose-bridge": {
		String1Hz: 261.63, String2Hz: 392.00,
		Damping: 0.00001, BridgeStiffness: 0.2,
		Duration: 2.0, SampleStride: 100,
		Plucks: []Pluck{{String: 0, Position: 0.5, Amplitude: 1.0}},
	},
	"muted": {
		String1Hz: 261.63, String2Hz: 392.00,
		Damping: 0.005, BridgeStiffness: 1.0,
		Duration: 1.0, SampleStride: 100,
		Plucks: []Pluck{{String: 0, Position: 0.5, Amplitude: 1.0}, {String: 1, Position: 0.7, Amplitude: 0.5}},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not
// exist. Callers may override fields without touching the preset table.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Plucks = append([]Pluck(nil), p.Plucks...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
