package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

// BuildingService building and floor management.
type BuildingService interface {
	CreateBuilding(ctx context.Context, req CreateBuildingRequest) (*domain.Building, error)
	UpdateBuilding(ctx context.Context, buildingID string, req UpdateBuildingRequest) (*domain.Building, error)
	GetBuilding(ctx context.Context, buildingID string) (*domain.Building, error)
	ListBuildings(ctx context.Context) ([]*domain.Building, error)

	CreateFloor(ctx context.Context, req CreateFloorRequest) (*domain.Floor, error)
	GetFloor(ctx context.Context, floorID string) (*domain.Floor, error)
	ListFloors(ctx context.Context, buildingID string) ([]*domain.Floor, error)
}

type CreateBuildingRequest struct {
	DomainID    string `json:"domainId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Length      int    `json:"length"`
}

// UpdateBuildingRequest partial update: empty fields are left unchanged,
// so a name or description cannot be cleared once set.
type UpdateBuildingRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateFloorRequest struct {
	DomainID    string `json:"domainId"`
	BuildingID  string `json:"buildingId"`
	Number      int    `json:"number"`
	Description string `json:"description"`
}

type buildingService struct {
	buildings repository.BuildingsRepository
	floors    repository.FloorsRepository
	limits    domain.Limits
	logger    *zap.Logger
}

func NewBuildingService(
	buildings repository.BuildingsRepository,
	floors repository.FloorsRepository,
	limits domain.Limits,
	logger *zap.Logger,
) BuildingService {
	return &buildingService{
		buildings: buildings,
		floors:    floors,
		limits:    limits,
		logger:    logger,
	}
}

func (s *buildingService) CreateBuilding(ctx context.Context, req CreateBuildingRequest) (*domain.Building, error) {
	code, err := domain.ValidateBuildingCode(req.Code, s.limits)
	if err != nil {
		return nil, err
	}
	if req.Width <= 0 || req.Length <= 0 {
		return nil, domain.Invalid("building width and length must be positive")
	}

	existing, err := s.buildings.FindByCode(ctx, code)
	if err != nil {
		return nil, domain.Storage("failed to check building code: %v", err)
	}
	if existing != nil {
		return nil, domain.Conflict("a building with code %q already exists", code)
	}

	building := &domain.Building{
		BuildingID:  req.DomainID,
		Code:        code,
		Name:        nullable(req.Name),
		Description: nullable(req.Description),
		Width:       req.Width,
		Length:      req.Length,
	}
	if err := s.buildings.Save(ctx, building); err != nil {
		return nil, domain.Storage("failed to save building: %v", err)
	}

	s.logger.Info("building created",
		zap.String("building_id", building.BuildingID),
		zap.String("code", building.Code),
	)
	return building, nil
}

func (s *buildingService) UpdateBuilding(ctx context.Context, buildingID string, req UpdateBuildingRequest) (*domain.Building, error) {
	building, err := s.buildings.FindByDomainID(ctx, buildingID)
	if err != nil {
		return nil, domain.Storage("failed to load building: %v", err)
	}
	if building == nil {
		return nil, domain.NotFound("building %s does not exist", buildingID)
	}

	// Empty fields mean "leave unchanged"; there is no way to clear a
	// value through this endpoint.
	if req.Name != "" {
		building.Name = nullable(req.Name)
	}
	if req.Description != "" {
		building.Description = nullable(req.Description)
	}
	if err := s.buildings.Save(ctx, building); err != nil {
		return nil, domain.Storage("failed to update building: %v", err)
	}
	return building, nil
}

func (s *buildingService) GetBuilding(ctx context.Context, buildingID string) (*domain.Building, error) {
	building, err := s.buildings.FindByDomainID(ctx, buildingID)
	if err != nil {
		return nil, domain.Storage("failed to load building: %v", err)
	}
	if building == nil {
		return nil, domain.NotFound("building %s does not exist", buildingID)
	}
	return building, nil
}

func (s *buildingService) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	buildings, err := s.buildings.List(ctx)
	if err != nil {
		return nil, domain.Storage("failed to list buildings: %v", err)
	}
	return buildings, nil
}

func (s *buildingService) CreateFloor(ctx context.Context, req CreateFloorRequest) (*domain.Floor, error) {
	building, err := s.buildings.FindByDomainID(ctx, req.BuildingID)
	if err != nil {
		return nil, domain.Storage("failed to resolve building: %v", err)
	}
	if building == nil {
		return nil, domain.NotFound("building %s does not exist", req.BuildingID)
	}

	existing, err := s.floors.FindByBuildingAndNumber(ctx, building.BuildingID, req.Number)
	if err != nil {
		return nil, domain.Storage("failed to check floor number: %v", err)
	}
	if existing != nil {
		return nil, domain.Conflict("building %s already has a floor %d", building.Code, req.Number)
	}

	floor := &domain.Floor{
		FloorID:     req.DomainID,
		BuildingID:  building.BuildingID,
		Number:      req.Number,
		Description: nullable(req.Description),
		Width:       building.Width,
		Length:      building.Length,
	}
	if err := s.floors.Save(ctx, floor); err != nil {
		return nil, domain.Storage("failed to save floor: %v", err)
	}

	s.logger.Info("floor created",
		zap.String("floor_id", floor.FloorID),
		zap.String("building_id", floor.BuildingID),
		zap.Int("number", floor.Number),
	)
	return floor, nil
}

func (s *buildingService) GetFloor(ctx context.Context, floorID string) (*domain.Floor, error) {
	floor, err := s.floors.FindByDomainID(ctx, floorID)
	if err != nil {
		return nil, domain.Storage("failed to load floor: %v", err)
	}
	if floor == nil {
		return nil, domain.NotFound("floor %s does not exist", floorID)
	}
	return floor, nil
}

func (s *buildingService) ListFloors(ctx context.Context, buildingID string) ([]*domain.Floor, error) {
	floors, err := s.floors.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, domain.Storage("failed to list floors: %v", err)
	}
	return floors, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
