package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

// PlacementService elevator and passage placement. Both use the full
// rectangle-intersection test against everything already on the floor,
// including rooms and their door out-cells.
type PlacementService interface {
	CreateElevator(ctx context.Context, req CreateElevatorRequest) (*domain.Elevator, error)
	ListElevators(ctx context.Context, buildingID string) ([]*domain.Elevator, error)
	CreatePassage(ctx context.Context, req CreatePassageRequest) (*domain.Passage, error)
	ListPassages(ctx context.Context, floorID string) ([]*domain.Passage, error)
}

type CreateElevatorRequest struct {
	DomainID     string   `json:"domainId"`
	BuildingID   string   `json:"buildingId"`
	FloorIDs     []string `json:"floorIds"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	SerialNumber string   `json:"serialNumber"`
	InitialX     float64  `json:"initialX"`
	InitialY     float64  `json:"initialY"`
	FinalX       float64  `json:"finalX"`
	FinalY       float64  `json:"finalY"`
}

type CreatePassageRequest struct {
	DomainID  string  `json:"domainId"`
	FloorAID  string  `json:"floorAId"`
	FloorBID  string  `json:"floorBId"`
	AInitialX float64 `json:"aInitialX"`
	AInitialY float64 `json:"aInitialY"`
	AFinalX   float64 `json:"aFinalX"`
	AFinalY   float64 `json:"aFinalY"`
	BInitialX float64 `json:"bInitialX"`
	BInitialY float64 `json:"bInitialY"`
	BFinalX   float64 `json:"bFinalX"`
	BFinalY   float64 `json:"bFinalY"`
}

type placementService struct {
	elevators repository.ElevatorsRepository
	passages  repository.PassagesRepository
	rooms     repository.RoomsRepository
	floors    repository.FloorsRepository
	buildings repository.BuildingsRepository
	logger    *zap.Logger
}

func NewPlacementService(
	elevators repository.ElevatorsRepository,
	passages repository.PassagesRepository,
	rooms repository.RoomsRepository,
	floors repository.FloorsRepository,
	buildings repository.BuildingsRepository,
	logger *zap.Logger,
) PlacementService {
	return &placementService{
		elevators: elevators,
		passages:  passages,
		rooms:     rooms,
		floors:    floors,
		buildings: buildings,
		logger:    logger,
	}
}

func (s *placementService) CreateElevator(ctx context.Context, req CreateElevatorRequest) (*domain.Elevator, error) {
	building, err := s.buildings.FindByDomainID(ctx, req.BuildingID)
	if err != nil {
		return nil, domain.Storage("failed to resolve building: %v", err)
	}
	if building == nil {
		return nil, domain.NotFound("building %s does not exist", req.BuildingID)
	}
	if len(req.FloorIDs) == 0 {
		return nil, domain.Invalid("an elevator must serve at least one floor")
	}

	footprint, err := footprintFromCorners(req.InitialX, req.InitialY, req.FinalX, req.FinalY)
	if err != nil {
		return nil, err
	}

	for _, floorID := range req.FloorIDs {
		floor, err := s.floors.FindByDomainID(ctx, floorID)
		if err != nil {
			return nil, domain.Storage("failed to resolve floor: %v", err)
		}
		if floor == nil {
			return nil, domain.NotFound("floor %s does not exist", floorID)
		}
		if floor.BuildingID != building.BuildingID {
			return nil, domain.Invalid("floor %s does not belong to building %s", floorID, building.Code)
		}
		if !floor.ContainsRect(footprint) {
			return nil, domain.Invalid("elevator does not fit on floor %d (grid %dx%d)",
				floor.Number, floor.Width, floor.Length)
		}
		if err := s.checkFloorAreaFree(ctx, floor.FloorID, footprint); err != nil {
			return nil, err
		}
	}

	elevator := &domain.Elevator{
		ElevatorID:   req.DomainID,
		BuildingID:   building.BuildingID,
		Brand:        nullable(req.Brand),
		Model:        nullable(req.Model),
		SerialNumber: nullable(req.SerialNumber),
		Footprint:    footprint,
		FloorIDs:     req.FloorIDs,
	}
	if err := s.elevators.Save(ctx, elevator); err != nil {
		return nil, domain.Storage("failed to save elevator: %v", err)
	}

	s.logger.Info("elevator created",
		zap.String("elevator_id", elevator.ElevatorID),
		zap.String("building_id", elevator.BuildingID),
		zap.Int("floors", len(elevator.FloorIDs)),
	)
	return elevator, nil
}

func (s *placementService) ListElevators(ctx context.Context, buildingID string) ([]*domain.Elevator, error) {
	elevators, err := s.elevators.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, domain.Storage("failed to list elevators: %v", err)
	}
	return elevators, nil
}

func (s *placementService) CreatePassage(ctx context.Context, req CreatePassageRequest) (*domain.Passage, error) {
	floorA, err := s.floors.FindByDomainID(ctx, req.FloorAID)
	if err != nil {
		return nil, domain.Storage("failed to resolve floor: %v", err)
	}
	if floorA == nil {
		return nil, domain.NotFound("floor %s does not exist", req.FloorAID)
	}
	floorB, err := s.floors.FindByDomainID(ctx, req.FloorBID)
	if err != nil {
		return nil, domain.Storage("failed to resolve floor: %v", err)
	}
	if floorB == nil {
		return nil, domain.NotFound("floor %s does not exist", req.FloorBID)
	}
	if floorA.BuildingID == floorB.BuildingID {
		return nil, domain.Invalid("a passage must connect floors of different buildings")
	}

	footprintA, err := footprintFromCorners(req.AInitialX, req.AInitialY, req.AFinalX, req.AFinalY)
	if err != nil {
		return nil, err
	}
	footprintB, err := footprintFromCorners(req.BInitialX, req.BInitialY, req.BFinalX, req.BFinalY)
	if err != nil {
		return nil, err
	}

	if !floorA.ContainsRect(footprintA) {
		return nil, domain.Invalid("passage does not fit on floor %d (grid %dx%d)",
			floorA.Number, floorA.Width, floorA.Length)
	}
	if !floorB.ContainsRect(footprintB) {
		return nil, domain.Invalid("passage does not fit on floor %d (grid %dx%d)",
			floorB.Number, floorB.Width, floorB.Length)
	}
	if err := s.checkFloorAreaFree(ctx, floorA.FloorID, footprintA); err != nil {
		return nil, err
	}
	if err := s.checkFloorAreaFree(ctx, floorB.FloorID, footprintB); err != nil {
		return nil, err
	}

	passage := &domain.Passage{
		PassageID:  req.DomainID,
		FloorAID:   floorA.FloorID,
		FloorBID:   floorB.FloorID,
		FootprintA: footprintA,
		FootprintB: footprintB,
	}
	if err := s.passages.Save(ctx, passage); err != nil {
		return nil, domain.Storage("failed to save passage: %v", err)
	}

	s.logger.Info("passage created",
		zap.String("passage_id", passage.PassageID),
		zap.String("floor_a", passage.FloorAID),
		zap.String("floor_b", passage.FloorBID),
	)
	return passage, nil
}

func (s *placementService) ListPassages(ctx context.Context, floorID string) ([]*domain.Passage, error) {
	passages, err := s.passages.ListByFloor(ctx, floorID)
	if err != nil {
		return nil, domain.Storage("failed to list passages: %v", err)
	}
	return passages, nil
}

// checkFloorAreaFree rejects placement over any occupant of the floor or
// over a room's door out-cell.
func (s *placementService) checkFloorAreaFree(ctx context.Context, floorID string, area domain.RoomDimensions) error {
	occupied, err := s.elevators.CheckElevatorInArea(ctx, floorID, area)
	if err != nil {
		return domain.Storage("failed to check elevators in area: %v", err)
	}
	if occupied {
		return domain.Invalid("An elevator already exists in the given area.")
	}

	occupied, err = s.passages.CheckPassageInArea(ctx, floorID, area)
	if err != nil {
		return domain.Storage("failed to check passages in area: %v", err)
	}
	if occupied {
		return domain.Invalid("A passage already exists in the given area.")
	}

	rooms, err := s.rooms.FindByFloorID(ctx, floorID)
	if err != nil {
		return domain.Storage("failed to load rooms on floor: %v", err)
	}
	for _, room := range rooms {
		if domain.RectanglesIntersect(area, room.Dimensions) {
			return domain.Invalid("A room already exists in the given area.")
		}
		if out, ok := room.OutCell(); ok && area.ContainsCell(out) {
			return domain.Invalid("The room is blocking another's door.")
		}
	}

	return nil
}

func footprintFromCorners(ix, iy, fx, fy float64) (domain.RoomDimensions, error) {
	initial, err := domain.CreatePositionF(ix, iy)
	if err != nil {
		return domain.RoomDimensions{}, err
	}
	final, err := domain.CreatePositionF(fx, fy)
	if err != nil {
		return domain.RoomDimensions{}, err
	}
	return domain.CreateRoomDimensions(initial, final)
}
