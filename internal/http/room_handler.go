package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/service"
)

// RoomHandler room management endpoints.
type RoomHandler struct {
	roomService service.RoomService
	logger      *zap.Logger
}

func NewRoomHandler(roomService service.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{roomService: roomService, logger: logger}
}

func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/rooms" && r.Method == http.MethodPost:
		h.CreateRoom(w, r)
	case r.URL.Path == "/api/v1/rooms" && r.Method == http.MethodGet:
		h.ListRooms(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/rooms/") && r.Method == http.MethodGet:
		h.GetRoom(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type positionBody struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type createRoomBody struct {
	DomainID    string `json:"domainId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Dimensions  struct {
		InitialPosition positionBody `json:"initialPosition"`
		FinalPosition   positionBody `json:"finalPosition"`
	} `json:"dimensions"`
	DoorPosition    positionBody `json:"doorPosition"`
	DoorOrientation string       `json:"doorOrientation"`
	FloorID         string       `json:"floorId"`
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body createRoomBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	room, err := h.roomService.CreateRoom(ctx, service.RawRoom{
		DomainID:        body.DomainID,
		Name:            body.Name,
		Description:     body.Description,
		Category:        body.Category,
		InitialX:        body.Dimensions.InitialPosition.X,
		InitialY:        body.Dimensions.InitialPosition.Y,
		FinalX:          body.Dimensions.FinalPosition.X,
		FinalY:          body.Dimensions.FinalPosition.Y,
		DoorX:           body.DoorPosition.X,
		DoorY:           body.DoorPosition.Y,
		DoorOrientation: body.DoorOrientation,
		FloorID:         body.FloorID,
	})
	if err != nil {
		h.logger.Warn("CreateRoom failed", zap.Error(err))
		failErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Ok(roomToJSON(room)))
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	floorID := r.URL.Query().Get("floorId")
	if floorID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("floorId query parameter is required"))
		return
	}

	rooms, err := h.roomService.ListRoomsByFloor(ctx, floorID)
	if err != nil {
		h.logger.Error("ListRooms failed", zap.Error(err))
		failErr(w, err)
		return
	}

	out := make([]any, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomToJSON(room))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/rooms/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	room, err := h.roomService.GetRoom(ctx, id)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(roomToJSON(room)))
}
