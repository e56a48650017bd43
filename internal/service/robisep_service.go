package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

// RobisepService robot fleet management. Robots are disabled, never
// deleted.
type RobisepService interface {
	CreateRobisep(ctx context.Context, req CreateRobisepRequest) (*domain.Robisep, error)
	ListRobiseps(ctx context.Context) ([]*domain.Robisep, error)
	GetRobisep(ctx context.Context, robisepID string) (*domain.Robisep, error)
	DisableRobisep(ctx context.Context, robisepID string) (*domain.Robisep, error)
	// UpdateStateByCode is driven by telemetry (MQTT); unknown codes are
	// an error for the caller to log, not a client-facing failure.
	UpdateStateByCode(ctx context.Context, code string, state string, roomID string) error
}

type CreateRobisepRequest struct {
	DomainID     string `json:"domainId"`
	Code         string `json:"code"`
	Nickname     string `json:"nickname"`
	SerialNumber string `json:"serialNumber"`
	RoomID       string `json:"roomId"`
}

type robisepService struct {
	robiseps repository.RobisepsRepository
	rooms    repository.RoomsRepository
	limits   domain.Limits
	logger   *zap.Logger
}

func NewRobisepService(
	robiseps repository.RobisepsRepository,
	rooms repository.RoomsRepository,
	limits domain.Limits,
	logger *zap.Logger,
) RobisepService {
	return &robisepService{
		robiseps: robiseps,
		rooms:    rooms,
		limits:   limits,
		logger:   logger,
	}
}

func (s *robisepService) CreateRobisep(ctx context.Context, req CreateRobisepRequest) (*domain.Robisep, error) {
	code, err := domain.ValidateRobisepCode(req.Code, s.limits)
	if err != nil {
		return nil, err
	}
	if req.Nickname == "" {
		return nil, domain.Invalid("robisep nickname is required")
	}

	existing, err := s.robiseps.FindByCode(ctx, code)
	if err != nil {
		return nil, domain.Storage("failed to check robisep code: %v", err)
	}
	if existing != nil {
		return nil, domain.Conflict("a robisep with code %q already exists", code)
	}

	robisep := &domain.Robisep{
		RobisepID:    req.DomainID,
		Code:         code,
		Nickname:     req.Nickname,
		SerialNumber: nullable(req.SerialNumber),
		State:        domain.RobisepStateAvailable,
	}
	if req.RoomID != "" {
		room, err := s.rooms.FindByDomainID(ctx, req.RoomID)
		if err != nil {
			return nil, domain.Storage("failed to resolve room: %v", err)
		}
		if room == nil {
			return nil, domain.NotFound("room %s does not exist", req.RoomID)
		}
		robisep.RoomID = nullable(room.RoomID)
	}

	if err := s.robiseps.Save(ctx, robisep); err != nil {
		return nil, domain.Storage("failed to save robisep: %v", err)
	}

	s.logger.Info("robisep created",
		zap.String("robisep_id", robisep.RobisepID),
		zap.String("code", robisep.Code),
	)
	return robisep, nil
}

func (s *robisepService) ListRobiseps(ctx context.Context) ([]*domain.Robisep, error) {
	robiseps, err := s.robiseps.List(ctx)
	if err != nil {
		return nil, domain.Storage("failed to list robiseps: %v", err)
	}
	return robiseps, nil
}

func (s *robisepService) GetRobisep(ctx context.Context, robisepID string) (*domain.Robisep, error) {
	robisep, err := s.robiseps.FindByDomainID(ctx, robisepID)
	if err != nil {
		return nil, domain.Storage("failed to load robisep: %v", err)
	}
	if robisep == nil {
		return nil, domain.NotFound("robisep %s does not exist", robisepID)
	}
	return robisep, nil
}

func (s *robisepService) DisableRobisep(ctx context.Context, robisepID string) (*domain.Robisep, error) {
	robisep, err := s.GetRobisep(ctx, robisepID)
	if err != nil {
		return nil, err
	}
	if robisep.State == domain.RobisepStateDisabled {
		return nil, domain.Invalid("robisep %s is already disabled", robisep.Code)
	}
	if err := s.robiseps.UpdateState(ctx, robisep.RobisepID, domain.RobisepStateDisabled, ""); err != nil {
		return nil, domain.Storage("failed to disable robisep: %v", err)
	}
	robisep.State = domain.RobisepStateDisabled

	s.logger.Info("robisep disabled", zap.String("code", robisep.Code))
	return robisep, nil
}

func (s *robisepService) UpdateStateByCode(ctx context.Context, code string, state string, roomID string) error {
	newState, err := domain.CreateRobisepState(state)
	if err != nil {
		return err
	}
	robisep, err := s.robiseps.FindByCode(ctx, code)
	if err != nil {
		return domain.Storage("failed to resolve robisep: %v", err)
	}
	if robisep == nil {
		return domain.NotFound("robisep with code %q does not exist", code)
	}
	// Disabled robots stay disabled until explicitly re-enabled; stale
	// telemetry must not resurrect them.
	if robisep.State == domain.RobisepStateDisabled {
		return domain.Invalid("robisep %q is disabled, ignoring telemetry", code)
	}
	return s.robiseps.UpdateState(ctx, robisep.RobisepID, newState, roomID)
}
