package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/service"
)

// PlacementHandler elevator and passage endpoints.
type PlacementHandler struct {
	placementService service.PlacementService
	logger           *zap.Logger
}

func NewPlacementHandler(placementService service.PlacementService, logger *zap.Logger) *PlacementHandler {
	return &PlacementHandler{placementService: placementService, logger: logger}
}

func (h *PlacementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/elevators" && r.Method == http.MethodPost:
		h.CreateElevator(w, r)
	case r.URL.Path == "/api/v1/elevators" && r.Method == http.MethodGet:
		h.ListElevators(w, r)
	case r.URL.Path == "/api/v1/passages" && r.Method == http.MethodPost:
		h.CreatePassage(w, r)
	case r.URL.Path == "/api/v1/passages" && r.Method == http.MethodGet:
		h.ListPassages(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *PlacementHandler) CreateElevator(w http.ResponseWriter, r *http.Request) {
	var req service.CreateElevatorRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	elevator, err := h.placementService.CreateElevator(r.Context(), req)
	if err != nil {
		h.logger.Warn("CreateElevator failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(elevatorToJSON(elevator)))
}

func (h *PlacementHandler) ListElevators(w http.ResponseWriter, r *http.Request) {
	buildingID := r.URL.Query().Get("buildingId")
	if buildingID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("buildingId query parameter is required"))
		return
	}
	elevators, err := h.placementService.ListElevators(r.Context(), buildingID)
	if err != nil {
		h.logger.Error("ListElevators failed", zap.Error(err))
		failErr(w, err)
		return
	}
	out := make([]any, 0, len(elevators))
	for _, e := range elevators {
		out = append(out, elevatorToJSON(e))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *PlacementHandler) CreatePassage(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePassageRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	passage, err := h.placementService.CreatePassage(r.Context(), req)
	if err != nil {
		h.logger.Warn("CreatePassage failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(passageToJSON(passage)))
}

func (h *PlacementHandler) ListPassages(w http.ResponseWriter, r *http.Request) {
	floorID := r.URL.Query().Get("floorId")
	if floorID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("floorId query parameter is required"))
		return
	}
	passages, err := h.placementService.ListPassages(r.Context(), floorID)
	if err != nil {
		h.logger.Error("ListPassages failed", zap.Error(err))
		failErr(w, err)
		return
	}
	out := make([]any, 0, len(passages))
	for _, p := range passages {
		out = append(out, passageToJSON(p))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}
