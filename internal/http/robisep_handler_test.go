package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
	"github.com/gibs11/robdronego/internal/service"
)

func newRobisepHandler(t *testing.T) *RobisepHandler {
	t.Helper()
	log := zap.NewNop()
	svc := service.NewRobisepService(repository.NewMemoryRobisepsRepo(),
		repository.NewMemoryRoomsRepo(), domain.DefaultLimits(), log)
	return NewRobisepHandler(svc, log)
}

func TestRobisepHandler_CreateAndDisable(t *testing.T) {
	h := newRobisepHandler(t)

	rec, env := doRequest(t, h, http.MethodPost, "/api/v1/robiseps",
		`{"code":"RBS01","nickname":"Hauler"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Result, &created))
	id := created["robisepId"].(string)
	assert.Equal(t, "AVAILABLE", created["state"])

	rec, env = doRequest(t, h, http.MethodPatch, "/api/v1/robiseps/"+id+"/disable", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var disabled map[string]any
	require.NoError(t, json.Unmarshal(env.Result, &disabled))
	assert.Equal(t, "DISABLED", disabled["state"])

	// Already disabled.
	rec, _ = doRequest(t, h, http.MethodPatch, "/api/v1/robiseps/"+id+"/disable", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRobisepHandler_CreateInvalidCode(t *testing.T) {
	h := newRobisepHandler(t)

	rec, env := doRequest(t, h, http.MethodPost, "/api/v1/robiseps",
		`{"code":"RBS 01","nickname":"Hauler"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "alphanumeric")
}

func TestRobisepHandler_GetUnknown(t *testing.T) {
	h := newRobisepHandler(t)

	rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/robiseps/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRobisepHandler_List(t *testing.T) {
	h := newRobisepHandler(t)

	rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/robiseps",
		`{"code":"RBS01","nickname":"Hauler"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, h, http.MethodGet, "/api/v1/robiseps", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(env.Result, &listed))
	assert.Len(t, listed, 1)
}
