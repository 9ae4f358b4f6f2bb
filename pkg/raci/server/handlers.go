package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"raciboard/pkg/raci"
	"raciboard/pkg/raci/models"
	"raciboard/pkg/raci/output"
)

var raciLetters = map[string]bool{"R": true, "A": true, "C": true, "I": true}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	// Hold the lock while encoding so concurrent edits don't race the
	// serialization.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		writeError(w, http.StatusNotFound, "No data loaded. Upload a file.")
		return
	}
	writeJSON(w, http.StatusOK, s.model)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()
	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	sheet := r.FormValue("sheet")
	model, err := raci.ParseBytes(data, header.Filename, sheet, s.opts)
	if err != nil {
		status := http.StatusUnprocessableEntity
		var noRaci *raci.NoRaciColumnsError
		var noSheet *raci.SheetNotFoundError
		switch {
		case errors.As(err, &noRaci), errors.As(err, &noSheet),
			errors.Is(err, raci.ErrNoData), errors.Is(err, raci.ErrUnsupportedFormat):
			// parse-level failures stay 422
		default:
			status = http.StatusInternalServerError
		}
		s.log.Warn("upload parse failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		writeError(w, status, err.Error())
		return
	}

	s.log.Info("parsed upload",
		zap.String("filename", header.Filename),
		zap.String("sheet", model.Meta.Sheet),
		zap.String("layout", string(model.Meta.Layout)),
		zap.Int("roles", model.Meta.RoleCount),
		zap.Int("capabilities", model.Meta.CapabilityCount))

	s.setModel(model)
	writeJSON(w, http.StatusOK, model)
}

func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	model := s.modelFromBodyOrCurrent(r)
	if model == nil {
		writeError(w, http.StatusBadRequest, "No data")
		return
	}
	page, err := output.ExportHTML(model)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="raci-dashboard.html"`)
	w.Write(page)
}

func (s *Server) handleExportKit(w http.ResponseWriter, r *http.Request) {
	model := s.modelFromBodyOrCurrent(r)
	if model == nil {
		writeError(w, http.StatusBadRequest, "No data")
		return
	}
	archive, err := output.KitZip(model)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="raci-bi-kit.zip"`)
	w.Write(archive)
}

type cellUpdate struct {
	Category   string `json:"category"`
	Capability string `json:"capability"`
	RoleID     string `json:"role_id"`
	Value      string `json:"value"`
}

func (s *Server) handleUpdateCell(w http.ResponseWriter, r *http.Request) {
	var req cellUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		writeError(w, http.StatusBadRequest, "No data")
		return
	}
	item := s.model.FindItem(req.Category, req.Capability)
	if item == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	switch {
	case req.Value == "":
		delete(item.Assignments, req.RoleID)
	case raciLetters[req.Value]:
		if item.Assignments == nil {
			item.Assignments = make(map[string]string)
		}
		item.Assignments[req.RoleID] = req.Value
	default:
		writeError(w, http.StatusBadRequest, "value must be R, A, C, I or empty")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type maturityUpdate struct {
	Category   string `json:"category"`
	Capability string `json:"capability"`
	Field      string `json:"field"`
	Value      *int   `json:"value"`
}

func (s *Server) handleUpdateMaturity(w http.ResponseWriter, r *http.Request) {
	var req maturityUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if (req.Field != "now" && req.Field != "tgt") ||
		req.Value == nil || *req.Value < 0 || *req.Value > 5 {
		writeError(w, http.StatusBadRequest, "Invalid field or value")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		writeError(w, http.StatusBadRequest, "No data")
		return
	}
	item := s.model.FindItem(req.Category, req.Capability)
	if item == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if req.Field == "now" {
		item.Now = req.Value
	} else {
		item.Tgt = req.Value
	}
	s.model.Meta.HasMaturity = true
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// modelFromBodyOrCurrent prefers a model posted in the request body and
// falls back to the server's current model.
func (s *Server) modelFromBodyOrCurrent(r *http.Request) *models.Model {
	if r.Body != nil {
		var posted models.Model
		if err := json.NewDecoder(r.Body).Decode(&posted); err == nil && len(posted.Roles) > 0 {
			return &posted
		}
	}
	return s.currentModel()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
