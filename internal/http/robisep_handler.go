package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/service"
)

// RobisepHandler robot fleet endpoints.
type RobisepHandler struct {
	robisepService service.RobisepService
	logger         *zap.Logger
}

func NewRobisepHandler(robisepService service.RobisepService, logger *zap.Logger) *RobisepHandler {
	return &RobisepHandler{robisepService: robisepService, logger: logger}
}

func (h *RobisepHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/robiseps" && r.Method == http.MethodPost:
		h.CreateRobisep(w, r)
	case r.URL.Path == "/api/v1/robiseps" && r.Method == http.MethodGet:
		h.ListRobiseps(w, r)
	case strings.HasSuffix(r.URL.Path, "/disable") && r.Method == http.MethodPatch:
		h.DisableRobisep(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/robiseps/") && r.Method == http.MethodGet:
		h.GetRobisep(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *RobisepHandler) CreateRobisep(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRobisepRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	robisep, err := h.robisepService.CreateRobisep(r.Context(), req)
	if err != nil {
		h.logger.Warn("CreateRobisep failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(robisepToJSON(robisep)))
}

func (h *RobisepHandler) ListRobiseps(w http.ResponseWriter, r *http.Request) {
	robiseps, err := h.robisepService.ListRobiseps(r.Context())
	if err != nil {
		h.logger.Error("ListRobiseps failed", zap.Error(err))
		failErr(w, err)
		return
	}
	out := make([]any, 0, len(robiseps))
	for _, rb := range robiseps {
		out = append(out, robisepToJSON(rb))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *RobisepHandler) GetRobisep(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/robiseps/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	robisep, err := h.robisepService.GetRobisep(r.Context(), id)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(robisepToJSON(robisep)))
}

func (h *RobisepHandler) DisableRobisep(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/robiseps/")
	id = strings.TrimSuffix(id, "/disable")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	robisep, err := h.robisepService.DisableRobisep(r.Context(), id)
	if err != nil {
		h.logger.Warn("DisableRobisep failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(robisepToJSON(robisep)))
}
