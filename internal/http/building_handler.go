package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/service"
)

// BuildingHandler building and floor endpoints.
type BuildingHandler struct {
	buildingService service.BuildingService
	logger          *zap.Logger
}

func NewBuildingHandler(buildingService service.BuildingService, logger *zap.Logger) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService, logger: logger}
}

func (h *BuildingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	// Buildings
	case r.URL.Path == "/api/v1/buildings" && r.Method == http.MethodPost:
		h.CreateBuilding(w, r)
	case r.URL.Path == "/api/v1/buildings" && r.Method == http.MethodGet:
		h.ListBuildings(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/buildings/") && r.Method == http.MethodGet:
		h.GetBuilding(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/buildings/") && r.Method == http.MethodPut:
		h.UpdateBuilding(w, r)

	// Floors
	case r.URL.Path == "/api/v1/floors" && r.Method == http.MethodPost:
		h.CreateFloor(w, r)
	case r.URL.Path == "/api/v1/floors" && r.Method == http.MethodGet:
		h.ListFloors(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/floors/") && r.Method == http.MethodGet:
		h.GetFloor(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *BuildingHandler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.CreateBuildingRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	building, err := h.buildingService.CreateBuilding(ctx, req)
	if err != nil {
		h.logger.Warn("CreateBuilding failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(buildingToJSON(building)))
}

func (h *BuildingHandler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.buildingService.ListBuildings(r.Context())
	if err != nil {
		h.logger.Error("ListBuildings failed", zap.Error(err))
		failErr(w, err)
		return
	}
	out := make([]any, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, buildingToJSON(b))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *BuildingHandler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/buildings/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	building, err := h.buildingService.GetBuilding(r.Context(), id)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(buildingToJSON(building)))
}

func (h *BuildingHandler) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/buildings/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var req service.UpdateBuildingRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	building, err := h.buildingService.UpdateBuilding(r.Context(), id, req)
	if err != nil {
		h.logger.Warn("UpdateBuilding failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(buildingToJSON(building)))
}

func (h *BuildingHandler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFloorRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	floor, err := h.buildingService.CreateFloor(r.Context(), req)
	if err != nil {
		h.logger.Warn("CreateFloor failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(floorToJSON(floor)))
}

func (h *BuildingHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	buildingID := r.URL.Query().Get("buildingId")
	if buildingID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("buildingId query parameter is required"))
		return
	}
	floors, err := h.buildingService.ListFloors(r.Context(), buildingID)
	if err != nil {
		h.logger.Error("ListFloors failed", zap.Error(err))
		failErr(w, err)
		return
	}
	out := make([]any, 0, len(floors))
	for _, f := range floors {
		out = append(out, floorToJSON(f))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *BuildingHandler) GetFloor(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/floors/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	floor, err := h.buildingService.GetFloor(r.Context(), id)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(floorToJSON(floor)))
}
