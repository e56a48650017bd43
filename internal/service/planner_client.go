package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// PlannerClient talks to the external path/task planner service. The
// planner owns route computation; this backend only submits requests and
// stores the returned route.
type PlannerClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewPlannerClient(baseURL string, timeout time.Duration, logger *zap.Logger) *PlannerClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &PlannerClient{httpClient: client, logger: logger}
}

// RouteRequest planner input for a task route.
type RouteRequest struct {
	TaskID      string `json:"taskId"`
	TaskType    string `json:"taskType"`
	OriginRoom  string `json:"originRoom"`
	TargetRoom  string `json:"targetRoom,omitempty"`
	RobisepCode string `json:"robisepCode,omitempty"`
}

// RouteResponse planner output; Route is stored opaquely.
type RouteResponse struct {
	Status int             `json:"status"`
	Msg    string          `json:"msg"`
	Route  json.RawMessage `json:"route"`
}

// PlanRoute submits the task to the planner and returns the computed
// route.
func (c *PlannerClient) PlanRoute(ctx context.Context, req RouteRequest) (*RouteResponse, error) {
	c.logger.Info("calling planner",
		zap.String("task_id", req.TaskID),
		zap.String("task_type", req.TaskType),
	)

	var out RouteResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/planner/routes")
	if err != nil {
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("planner returned HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	if out.Status != 0 {
		return nil, fmt.Errorf("planner rejected request: %s", out.Msg)
	}
	return &out, nil
}
