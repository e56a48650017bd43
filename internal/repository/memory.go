package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

// In-memory repositories for DB-less operation and tests.
// IDs use uuid; no uniqueness constraints beyond what the services enforce.

// MemoryRoomsRepo rooms keyed by room ID.
type MemoryRoomsRepo struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
}

func NewMemoryRoomsRepo() *MemoryRoomsRepo {
	return &MemoryRoomsRepo{rooms: map[string]*domain.Room{}}
}

func (r *MemoryRoomsRepo) CheckRoomInArea(_ context.Context, floorID string, area domain.RoomDimensions) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.FloorID != floorID {
			continue
		}
		if domain.LegacyAreaOverlap(area, room.Dimensions) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRoomsRepo) FindByFloorID(_ context.Context, floorID string) ([]*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Room{}
	for _, room := range r.rooms {
		if room.FloorID == floorID {
			c := *room
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MemoryRoomsRepo) FindByName(_ context.Context, name string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.Name.String() == name {
			c := *room
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryRoomsRepo) FindByDomainID(_ context.Context, roomID string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, nil
	}
	c := *room
	return &c, nil
}

func (r *MemoryRoomsRepo) Save(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room.RoomID == "" {
		room.RoomID = uuid.NewString()
	}
	c := *room
	r.rooms[room.RoomID] = &c
	return nil
}

func (r *MemoryRoomsRepo) List(_ context.Context) ([]*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Room{}
	for _, room := range r.rooms {
		c := *room
		out = append(out, &c)
	}
	return out, nil
}

// MemoryElevatorsRepo elevators keyed by elevator ID.
type MemoryElevatorsRepo struct {
	mu        sync.RWMutex
	elevators map[string]*domain.Elevator
}

func NewMemoryElevatorsRepo() *MemoryElevatorsRepo {
	return &MemoryElevatorsRepo{elevators: map[string]*domain.Elevator{}}
}

func (r *MemoryElevatorsRepo) CheckElevatorInArea(_ context.Context, floorID string, area domain.RoomDimensions) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.elevators {
		for _, fid := range e.FloorIDs {
			if fid == floorID && domain.RectanglesIntersect(area, e.Footprint) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *MemoryElevatorsRepo) FindByDomainID(_ context.Context, elevatorID string) (*domain.Elevator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.elevators[elevatorID]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (r *MemoryElevatorsRepo) ListByBuilding(_ context.Context, buildingID string) ([]*domain.Elevator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Elevator{}
	for _, e := range r.elevators {
		if e.BuildingID == buildingID {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MemoryElevatorsRepo) Save(_ context.Context, elevator *domain.Elevator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if elevator.ElevatorID == "" {
		elevator.ElevatorID = uuid.NewString()
	}
	c := *elevator
	r.elevators[elevator.ElevatorID] = &c
	return nil
}

// MemoryPassagesRepo passages keyed by passage ID.
type MemoryPassagesRepo struct {
	mu       sync.RWMutex
	passages map[string]*domain.Passage
}

func NewMemoryPassagesRepo() *MemoryPassagesRepo {
	return &MemoryPassagesRepo{passages: map[string]*domain.Passage{}}
}

func (r *MemoryPassagesRepo) CheckPassageInArea(_ context.Context, floorID string, area domain.RoomDimensions) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.passages {
		if fp, ok := p.FootprintOn(floorID); ok {
			if domain.RectanglesIntersect(area, fp) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *MemoryPassagesRepo) FindByDomainID(_ context.Context, passageID string) (*domain.Passage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.passages[passageID]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *MemoryPassagesRepo) ListByFloor(_ context.Context, floorID string) ([]*domain.Passage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Passage{}
	for _, p := range r.passages {
		if p.FloorAID == floorID || p.FloorBID == floorID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MemoryPassagesRepo) Save(_ context.Context, passage *domain.Passage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if passage.PassageID == "" {
		passage.PassageID = uuid.NewString()
	}
	c := *passage
	r.passages[passage.PassageID] = &c
	return nil
}

// MemoryFloorsRepo floors keyed by floor ID.
type MemoryFloorsRepo struct {
	mu     sync.RWMutex
	floors map[string]*domain.Floor
}

func NewMemoryFloorsRepo() *MemoryFloorsRepo {
	return &MemoryFloorsRepo{floors: map[string]*domain.Floor{}}
}

func (r *MemoryFloorsRepo) FindByDomainID(_ context.Context, floorID string) (*domain.Floor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.floors[floorID]
	if !ok {
		return nil, nil
	}
	c := *f
	return &c, nil
}

func (r *MemoryFloorsRepo) FindByBuildingAndNumber(_ context.Context, buildingID string, number int) (*domain.Floor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.floors {
		if f.BuildingID == buildingID && f.Number == number {
			c := *f
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryFloorsRepo) ListByBuilding(_ context.Context, buildingID string) ([]*domain.Floor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Floor{}
	for _, f := range r.floors {
		if f.BuildingID == buildingID {
			c := *f
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MemoryFloorsRepo) Save(_ context.Context, floor *domain.Floor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if floor.FloorID == "" {
		floor.FloorID = uuid.NewString()
	}
	c := *floor
	r.floors[floor.FloorID] = &c
	return nil
}

// MemoryBuildingsRepo buildings keyed by building ID.
type MemoryBuildingsRepo struct {
	mu        sync.RWMutex
	buildings map[string]*domain.Building
}

func NewMemoryBuildingsRepo() *MemoryBuildingsRepo {
	return &MemoryBuildingsRepo{buildings: map[string]*domain.Building{}}
}

func (r *MemoryBuildingsRepo) FindByDomainID(_ context.Context, buildingID string) (*domain.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buildings[buildingID]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (r *MemoryBuildingsRepo) FindByCode(_ context.Context, code string) (*domain.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.buildings {
		if b.Code == code {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryBuildingsRepo) List(_ context.Context) ([]*domain.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Building{}
	for _, b := range r.buildings {
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryBuildingsRepo) Save(_ context.Context, building *domain.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if building.BuildingID == "" {
		building.BuildingID = uuid.NewString()
	}
	c := *building
	r.buildings[building.BuildingID] = &c
	return nil
}

// MemoryRobisepsRepo robots keyed by robisep ID.
type MemoryRobisepsRepo struct {
	mu       sync.RWMutex
	robiseps map[string]*domain.Robisep
}

func NewMemoryRobisepsRepo() *MemoryRobisepsRepo {
	return &MemoryRobisepsRepo{robiseps: map[string]*domain.Robisep{}}
}

func (r *MemoryRobisepsRepo) FindByDomainID(_ context.Context, robisepID string) (*domain.Robisep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rb, ok := r.robiseps[robisepID]
	if !ok {
		return nil, nil
	}
	c := *rb
	return &c, nil
}

func (r *MemoryRobisepsRepo) FindByCode(_ context.Context, code string) (*domain.Robisep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rb := range r.robiseps {
		if rb.Code == code {
			c := *rb
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryRobisepsRepo) List(_ context.Context) ([]*domain.Robisep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Robisep{}
	for _, rb := range r.robiseps {
		c := *rb
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryRobisepsRepo) Save(_ context.Context, robisep *domain.Robisep) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if robisep.RobisepID == "" {
		robisep.RobisepID = uuid.NewString()
	}
	c := *robisep
	r.robiseps[robisep.RobisepID] = &c
	return nil
}

func (r *MemoryRobisepsRepo) UpdateState(_ context.Context, robisepID string, state domain.RobisepState, roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rb, ok := r.robiseps[robisepID]
	if !ok {
		return domain.NotFound("robisep %s not found", robisepID)
	}
	rb.State = state
	if roomID != "" {
		rb.RoomID.String = roomID
		rb.RoomID.Valid = true
	}
	return nil
}

// MemoryTasksRepo tasks keyed by task ID.
type MemoryTasksRepo struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
}

func NewMemoryTasksRepo() *MemoryTasksRepo {
	return &MemoryTasksRepo{tasks: map[string]*domain.Task{}}
}

func (r *MemoryTasksRepo) FindByDomainID(_ context.Context, taskID string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (r *MemoryTasksRepo) FindByCode(_ context.Context, code string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.Code == code {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryTasksRepo) List(_ context.Context, filters TaskFilters) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Task{}
	for _, t := range r.tasks {
		if filters.State != "" && string(t.State) != filters.State {
			continue
		}
		if filters.Type != "" && string(t.Type) != filters.Type {
			continue
		}
		if filters.RequesterEmail != "" && t.RequesterEmail != filters.RequesterEmail {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryTasksRepo) Save(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	c := *task
	r.tasks[task.TaskID] = &c
	return nil
}

func (r *MemoryTasksRepo) UpdateState(_ context.Context, taskID string, state domain.TaskState, robisepID, plannedRoute string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return domain.NotFound("task %s not found", taskID)
	}
	t.State = state
	if robisepID != "" {
		t.RobisepID.String = robisepID
		t.RobisepID.Valid = true
	}
	if plannedRoute != "" {
		t.PlannedRoute.String = plannedRoute
		t.PlannedRoute.Valid = true
	}
	return nil
}
