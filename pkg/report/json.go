package report

import (
	"encoding/json"
	"io"
)

// MarshalJSON emits the full report shape for processed documents and the
// {success, message} shape for documents that failed to parse.
func (r *Report) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{r.Success, r.Message})
	}
	type plain Report
	return json.Marshal((*plain)(r))
}

// WriteJSON writes the report in indented JSON format to w.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
