package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

// TaskService task requests and their lifecycle. Route planning is
// delegated to the external planner; accepting a task triggers it.
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error)
	ListTasks(ctx context.Context, filters repository.TaskFilters) ([]*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	AcceptTask(ctx context.Context, taskID string, robisepID string) (*domain.Task, error)
	RefuseTask(ctx context.Context, taskID string) (*domain.Task, error)
}

type CreateTaskRequest struct {
	DomainID       string `json:"domainId"`
	Type           string `json:"type"`
	RequesterEmail string `json:"requesterEmail"`
	Description    string `json:"description"`
	PickupRoomID   string `json:"pickupRoomId"`
	DeliveryRoomID string `json:"deliveryRoomId"`
}

type taskService struct {
	tasks    repository.TasksRepository
	rooms    repository.RoomsRepository
	robiseps repository.RobisepsRepository
	planner  *PlannerClient
	logger   *zap.Logger
}

func NewTaskService(
	tasks repository.TasksRepository,
	rooms repository.RoomsRepository,
	robiseps repository.RobisepsRepository,
	planner *PlannerClient,
	logger *zap.Logger,
) TaskService {
	return &taskService{
		tasks:    tasks,
		rooms:    rooms,
		robiseps: robiseps,
		planner:  planner,
		logger:   logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	taskType, err := domain.CreateTaskType(req.Type)
	if err != nil {
		return nil, err
	}
	if req.RequesterEmail == "" {
		return nil, domain.Invalid("requester email is required")
	}
	if req.PickupRoomID == "" {
		return nil, domain.Invalid("pickup room is required")
	}
	if taskType == domain.TaskTypePickupDelivery && req.DeliveryRoomID == "" {
		return nil, domain.Invalid("delivery room is required for pickup and delivery tasks")
	}

	pickup, err := s.rooms.FindByDomainID(ctx, req.PickupRoomID)
	if err != nil {
		return nil, domain.Storage("failed to resolve pickup room: %v", err)
	}
	if pickup == nil {
		return nil, domain.NotFound("room %s does not exist", req.PickupRoomID)
	}

	task := &domain.Task{
		TaskID:         req.DomainID,
		Code:           newTaskCode(),
		Type:           taskType,
		State:          domain.TaskStateRequested,
		RequesterEmail: req.RequesterEmail,
		Description:    nullable(req.Description),
		PickupRoomID:   nullable(pickup.RoomID),
	}
	if req.DeliveryRoomID != "" {
		delivery, err := s.rooms.FindByDomainID(ctx, req.DeliveryRoomID)
		if err != nil {
			return nil, domain.Storage("failed to resolve delivery room: %v", err)
		}
		if delivery == nil {
			return nil, domain.NotFound("room %s does not exist", req.DeliveryRoomID)
		}
		task.DeliveryRoomID = nullable(delivery.RoomID)
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, domain.Storage("failed to save task: %v", err)
	}

	s.logger.Info("task requested",
		zap.String("task_id", task.TaskID),
		zap.String("code", task.Code),
		zap.String("type", string(task.Type)),
	)
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, filters repository.TaskFilters) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx, filters)
	if err != nil {
		return nil, domain.Storage("failed to list tasks: %v", err)
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.tasks.FindByDomainID(ctx, taskID)
	if err != nil {
		return nil, domain.Storage("failed to load task: %v", err)
	}
	if task == nil {
		return nil, domain.NotFound("task %s does not exist", taskID)
	}
	return task, nil
}

// AcceptTask assigns a robisep, asks the planner for a route, and moves
// the task to PLANNED. Planner failure leaves the task ACCEPTED so a
// retry can re-plan without re-approval.
func (s *taskService) AcceptTask(ctx context.Context, taskID string, robisepID string) (*domain.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.State != domain.TaskStateRequested {
		return nil, domain.Invalid("task %s is %s, only requested tasks can be accepted", task.Code, task.State)
	}

	robisep, err := s.robiseps.FindByDomainID(ctx, robisepID)
	if err != nil {
		return nil, domain.Storage("failed to resolve robisep: %v", err)
	}
	if robisep == nil {
		return nil, domain.NotFound("robisep %s does not exist", robisepID)
	}
	if robisep.State != domain.RobisepStateAvailable {
		return nil, domain.Invalid("robisep %s is %s, not available", robisep.Code, robisep.State)
	}

	if err := s.tasks.UpdateState(ctx, task.TaskID, domain.TaskStateAccepted, robisep.RobisepID, ""); err != nil {
		return nil, domain.Storage("failed to accept task: %v", err)
	}
	task.State = domain.TaskStateAccepted
	task.RobisepID = nullable(robisep.RobisepID)

	route, err := s.planner.PlanRoute(ctx, RouteRequest{
		TaskID:      task.TaskID,
		TaskType:    string(task.Type),
		OriginRoom:  task.PickupRoomID.String,
		TargetRoom:  task.DeliveryRoomID.String,
		RobisepCode: robisep.Code,
	})
	if err != nil {
		s.logger.Warn("planner unavailable, task left accepted",
			zap.String("task_id", task.TaskID), zap.Error(err))
		return task, nil
	}

	if err := s.tasks.UpdateState(ctx, task.TaskID, domain.TaskStatePlanned, "", string(route.Route)); err != nil {
		return nil, domain.Storage("failed to record planned route: %v", err)
	}
	task.State = domain.TaskStatePlanned
	task.PlannedRoute = nullable(string(route.Route))

	s.logger.Info("task planned", zap.String("task_id", task.TaskID))
	return task, nil
}

func (s *taskService) RefuseTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.State != domain.TaskStateRequested {
		return nil, domain.Invalid("task %s is %s, only requested tasks can be refused", task.Code, task.State)
	}
	if err := s.tasks.UpdateState(ctx, task.TaskID, domain.TaskStateRefused, "", ""); err != nil {
		return nil, domain.Storage("failed to refuse task: %v", err)
	}
	task.State = domain.TaskStateRefused
	return task, nil
}

func newTaskCode() string {
	return fmt.Sprintf("T-%d-%04d", time.Now().Unix(), rand.Intn(10000))
}
