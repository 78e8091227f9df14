package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/YasserHifzy202/poultry-backend/internal/audit"
	"github.com/YasserHifzy202/poultry-backend/internal/engine"
	"github.com/YasserHifzy202/poultry-backend/internal/logging"
	"github.com/YasserHifzy202/poultry-backend/internal/xlsxio"
)

// handleAnalyze accepts one Excel workbook and returns the annotated
// operational and care tables. Validation findings ride on the rows; the
// request itself fails only for transport problems (no file, wrong
// extension, unreadable workbook).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.FromContext(r.Context())

	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, codeTooLarge, "file too large")
			return
		}
		respondError(w, r, http.StatusBadRequest, codeNoFile, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, codeNoFile, "no file provided")
		return
	}
	defer file.Close()

	if !xlsxio.AllowedExtension(header.Filename) {
		respondError(w, r, http.StatusBadRequest, codeBadExtension, "only Excel files (.xls, .xlsx) are allowed")
		return
	}

	table, err := xlsxio.Read(file)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, codeUnreadable, "failed to read Excel file: "+err.Error())
		return
	}

	result := engine.Analyze(table)
	counts := result.Counts()

	logger.Info("analysis complete",
		"file", header.Filename,
		"rows", len(table.Rows),
		"operational", counts.Operational,
		"care", counts.Care,
		"with_errors", counts.WithErrors,
		"duration", time.Since(start),
	)

	s.recorder.Record(r.Context(), audit.Entry{
		FileName:        header.Filename,
		TotalRows:       len(table.Rows),
		OperationalRows: counts.Operational,
		CareRows:        counts.Care,
		ErrorRows:       counts.WithErrors,
		Duration:        time.Since(start),
	})

	respondJSON(w, http.StatusOK, result)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
