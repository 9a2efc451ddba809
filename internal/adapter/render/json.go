package render

import (
	"encoding/json"
	"fmt"
	"io"

	"factcloud/internal/domain"
)

// JSONRenderer writes the request for an external word-cloud renderer.
type JSONRenderer struct {
	w io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

func (r *JSONRenderer) Render(req domain.CloudRequest) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("failed to encode cloud request: %w", err)
	}
	return nil
}
