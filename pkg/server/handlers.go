package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/taimoormohiuddin/jatsverify/pkg/jats"
	"github.com/taimoormohiuddin/jatsverify/pkg/report"
	"github.com/taimoormohiuddin/jatsverify/pkg/validate"
)

// apiError is the JSON error body for rejected requests.
type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// validateResponse is the body returned when a display filter was
// requested. The full report is always included; the filter only narrows
// what the caller chose to look at. Named fields rather than an embedded
// report: embedding would promote the report's MarshalJSON and drop the
// filtered view.
type validateResponse struct {
	Report         *report.Report `json:"report"`
	FilteredIssues report.Issues  `json:"filtered_issues"`
}

// handleValidate accepts a document as multipart field "file" or as a raw
// XML body (filename then taken from the X-Filename header) and responds
// with the JSON validation report.
//
// The optional "checks" query parameter names the categories the caller
// wants displayed, comma-separated. All checks always run; the filter only
// adds a narrowed view alongside the full report.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	content, filename, err := readDocument(w, r, s.cfg.MaxUploadBytes)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, apiError{
			Code:      "BAD_UPLOAD",
			Message:   err.Error(),
			RequestID: reqID(r.Context()),
		})
		return
	}

	var filter []report.Category
	if raw := r.URL.Query().Get("checks"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			c, ok := report.ParseCategory(strings.TrimSpace(name))
			if !ok {
				s.writeJSON(w, r, http.StatusBadRequest, apiError{
					Code:      "BAD_CHECKS",
					Message:   "unknown check category: " + name,
					RequestID: reqID(r.Context()),
				})
				return
			}
			filter = append(filter, c)
		}
	}

	rpt := validate.ValidateWithOptions(content, filename, validate.Options{
		Limits: jats.Limits{
			MaxInputBytes: int(s.cfg.MaxUploadBytes),
			MaxDepth:      s.cfg.MaxParseDepth,
		},
	})

	if filter != nil && !rpt.Failed() {
		s.writeJSON(w, r, http.StatusOK, validateResponse{
			Report:         rpt,
			FilteredIssues: rpt.FilteredIssues(filter),
		})
		return
	}
	s.writeJSON(w, r, http.StatusOK, rpt)
}

// readDocument extracts the XML content and filename from the request.
func readDocument(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, "", err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", errors.New(`multipart form must carry a "file" field`)
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		return content, filepath.Base(header.Filename), nil
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", err
	}
	if len(content) == 0 {
		return nil, "", errors.New("empty request body")
	}
	filename := r.Header.Get("X-Filename")
	if filename == "" {
		filename = "document.xml"
	}
	return content, filepath.Base(filename), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		s.logger.Error("encode response", "error", err, "request_id", reqID(r.Context()))
	}
}
