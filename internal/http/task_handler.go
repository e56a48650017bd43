package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/repository"
	"github.com/gibs11/robdronego/internal/service"
)

// TaskHandler task request endpoints.
type TaskHandler struct {
	taskService service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

func (h *TaskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/tasks" && r.Method == http.MethodPost:
		h.CreateTask(w, r)
	case r.URL.Path == "/api/v1/tasks" && r.Method == http.MethodGet:
		h.ListTasks(w, r)
	case strings.HasSuffix(r.URL.Path, "/accept") && r.Method == http.MethodPatch:
		h.AcceptTask(w, r)
	case strings.HasSuffix(r.URL.Path, "/refuse") && r.Method == http.MethodPatch:
		h.RefuseTask(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/tasks/") && r.Method == http.MethodGet:
		h.GetTask(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTaskRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	task, err := h.taskService.CreateTask(r.Context(), req)
	if err != nil {
		h.logger.Warn("CreateTask failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(taskToJSON(task)))
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filters := repository.TaskFilters{
		State:          r.URL.Query().Get("state"),
		Type:           r.URL.Query().Get("type"),
		RequesterEmail: r.URL.Query().Get("requesterEmail"),
	}
	tasks, err := h.taskService.ListTasks(r.Context(), filters)
	if err != nil {
		h.logger.Error("ListTasks failed", zap.Error(err))
		failErr(w, err)
		return
	}
	out := make([]any, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToJSON(t))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/tasks/")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(taskToJSON(task)))
}

type acceptTaskBody struct {
	RobisepID string `json:"robisepId"`
}

func (h *TaskHandler) AcceptTask(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/tasks/")
	id = strings.TrimSuffix(id, "/accept")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var body acceptTaskBody
	if err := readBodyJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	task, err := h.taskService.AcceptTask(r.Context(), id, body.RobisepID)
	if err != nil {
		h.logger.Warn("AcceptTask failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(taskToJSON(task)))
}

func (h *TaskHandler) RefuseTask(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/tasks/")
	id = strings.TrimSuffix(id, "/refuse")
	if id == "" || strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	task, err := h.taskService.RefuseTask(r.Context(), id)
	if err != nil {
		h.logger.Warn("RefuseTask failed", zap.Error(err))
		failErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(taskToJSON(task)))
}
