package sink

import (
	"encoding/json"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed      uint64
	generator string
}

// WithJSONSeed records the colour seed so the output can be reproduced.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONGenerator records the producing tool and version.
func WithJSONGenerator(g string) JSONOption { return func(r *jsonRenderer) { r.generator = g } }

type jsonOutput struct {
	Generator string `json:"generator,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
	Frame
}

// RenderJSON exports the frame as a pretty-printed JSON document.
func RenderJSON(f Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if f.Blocks == nil {
		f.Blocks = []Block{}
	}
	return json.MarshalIndent(jsonOutput{
		Generator: r.generator,
		Seed:      r.seed,
		Frame:     f,
	}, "", "  ")
}

// ParseJSON reads a document written by RenderJSON back into a frame.
func ParseJSON(data []byte) (Frame, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Frame{}, err
	}
	return out.Frame, nil
}
