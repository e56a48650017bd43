package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/service"
)

// FloorExportHandler exports a floor's inventory (rooms, elevators,
// passages) as an XLSX workbook for facility managers.
type FloorExportHandler struct {
	buildingService  service.BuildingService
	roomService      service.RoomService
	placementService service.PlacementService
	logger           *zap.Logger
}

func NewFloorExportHandler(
	buildingService service.BuildingService,
	roomService service.RoomService,
	placementService service.PlacementService,
	logger *zap.Logger,
) *FloorExportHandler {
	return &FloorExportHandler{
		buildingService:  buildingService,
		roomService:      roomService,
		placementService: placementService,
		logger:           logger,
	}
}

// ServeHTTP handles GET /api/v1/floors/{id}/export.
func (h *FloorExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/floors/")
	id = strings.TrimSuffix(id, "/export")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ctx := r.Context()
	floor, err := h.buildingService.GetFloor(ctx, id)
	if err != nil {
		failErr(w, err)
		return
	}
	rooms, err := h.roomService.ListRoomsByFloor(ctx, floor.FloorID)
	if err != nil {
		failErr(w, err)
		return
	}
	elevators, err := h.placementService.ListElevators(ctx, floor.BuildingID)
	if err != nil {
		failErr(w, err)
		return
	}
	passages, err := h.placementService.ListPassages(ctx, floor.FloorID)
	if err != nil {
		failErr(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rooms"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Name", "Category", "From", "To", "Door", "Orientation"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for row, room := range rooms {
		values := []any{
			room.Name.String(),
			string(room.Category),
			cellRef(room.Dimensions.Initial),
			cellRef(room.Dimensions.Final),
			cellRef(room.DoorPosition),
			string(room.DoorOrientation),
		}
		writeRow(f, sheet, row+2, values)
	}

	elevatorSheet := "Elevators"
	f.NewSheet(elevatorSheet)
	writeRow(f, elevatorSheet, 1, []any{"Brand", "Model", "From", "To", "Floors"})
	row := 2
	for _, e := range elevators {
		if !servesFloor(e, floor.FloorID) {
			continue
		}
		writeRow(f, elevatorSheet, row, []any{
			e.Brand.String, e.Model.String,
			cellRef(e.Footprint.Initial), cellRef(e.Footprint.Final),
			len(e.FloorIDs),
		})
		row++
	}

	passageSheet := "Passages"
	f.NewSheet(passageSheet)
	writeRow(f, passageSheet, 1, []any{"From", "To", "Connects"})
	for i, p := range passages {
		fp, _ := p.FootprintOn(floor.FloorID)
		other := p.FloorBID
		if other == floor.FloorID {
			other = p.FloorAID
		}
		writeRow(f, passageSheet, i+2, []any{
			cellRef(fp.Initial), cellRef(fp.Final), other,
		})
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="floor-%d-inventory.xlsx"`, floor.Number))
	if err := f.Write(w); err != nil {
		h.logger.Error("floor export failed", zap.Error(err))
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func cellRef(p domain.Position) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func servesFloor(e *domain.Elevator, floorID string) bool {
	for _, id := range e.FloorIDs {
		if id == floorID {
			return true
		}
	}
	return false
}
