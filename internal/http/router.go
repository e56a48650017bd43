package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (no third-party router
// dependency).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler supports the http.Handler interface (pprof etc.).
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterFacilityRoutes buildings, floors, rooms, elevators, passages.
func (r *Router) RegisterFacilityRoutes(
	buildings *BuildingHandler,
	rooms *RoomHandler,
	placement *PlacementHandler,
	export *FloorExportHandler,
) {
	r.mux.Handle("/api/v1/buildings", buildings)
	r.mux.Handle("/api/v1/buildings/", buildings)

	r.mux.Handle("/api/v1/floors", buildings)
	// /api/v1/floors/{id}/export streams XLSX; everything else under the
	// prefix is the floor resource.
	r.Handle("/api/v1/floors/", func(w http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, "/export") {
			export.ServeHTTP(w, req)
			return
		}
		buildings.ServeHTTP(w, req)
	})

	r.mux.Handle("/api/v1/rooms", rooms)
	r.mux.Handle("/api/v1/rooms/", rooms)

	r.mux.Handle("/api/v1/elevators", placement)
	r.mux.Handle("/api/v1/passages", placement)
}

// RegisterFleetRoutes robiseps and tasks.
func (r *Router) RegisterFleetRoutes(robiseps *RobisepHandler, tasks *TaskHandler) {
	r.mux.Handle("/api/v1/robiseps", robiseps)
	r.mux.Handle("/api/v1/robiseps/", robiseps)

	r.mux.Handle("/api/v1/tasks", tasks)
	r.mux.Handle("/api/v1/tasks/", tasks)
}

// RegisterHealthRoutes liveness probe.
func (r *Router) RegisterHealthRoutes() {
	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, Ok("alive"))
	})
}
