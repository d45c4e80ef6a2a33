// Package export writes stored runs out as JSON or SVG for external tools.
package export

import (
	"encoding/json"
	"io"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/storage"
)

type RunData struct {
	ID              string    `json:"id"`
	String1Hz       float64   `json:"string1_hz"`
	String2Hz       float64   `json:"string2_hz"`
	Damping         float64   `json:"damping"`
	BridgeStiffness float64   `json:"bridge_stiffness"`
	Dt              float64   `json:"dt"`
	Steps           int       `json:"steps"`
	Times           []float64 `json:"times"`
	Energy1         []float64 `json:"energy1"`
	Energy2         []float64 `json:"energy2"`
	BridgeY         []float64 `json:"bridge_y"`
}

// WriteJSON serializes a run's metadata and history as indented JSON.
func WriteJSON(w io.Writer, meta *storage.RunMetadata, h *storage.History) error {
	data := RunData{
		ID:              meta.ID,
		String1Hz:       meta.String1Hz,
		String2Hz:       meta.String2Hz,
		Damping:         meta.Damping,
		BridgeStiffness: meta.BridgeStiffness,
		Dt:              meta.Dt,
		Steps:           meta.Steps,
		Times:           h.Times,
		Energy1:         h.Energy1,
		Energy2:         h.Energy2,
		BridgeY:         h.BridgeY,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
