package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_hub_backend/internal/repository"
	"interview_hub_backend/internal/service"
	"interview_hub_backend/internal/util"
)

func newStudyRouter() *gin.Engine {
	store := repository.NewMemoryStateStore()
	progress := service.NewProgressService(store)
	study := service.NewStudyService(store, progress)
	ctrl := NewStudyController(study, progress)

	router := gin.New()
	api := router.Group("/api", fakeAuth(1))
	api.GET("/study/view", ctrl.GetViewState)
	api.PUT("/study/view", ctrl.PutViewState)
	api.GET("/study/progress", ctrl.GetProgress)
	api.POST("/study/progress/read", ctrl.MarkRead)
	api.POST("/study/progress/:kind/toggle", ctrl.ToggleProgress)
	api.GET("/courses/:courseId/levels/:levelId/progress", ctrl.GetLevelProgress)
	api.GET("/courses/:courseId/levels/:levelId/search", ctrl.Search)
	return router
}

func jsonReader(t *testing.T, body any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func getJSON(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]any)
	return w, data
}

func TestToggleEndpoint(t *testing.T) {
	router := newStudyRouter()

	body := map[string]any{"courseId": "k8s", "key": "junior-j1-0"}
	w := postJSON(t, router, "/api/study/progress/bookmarks/toggle", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["member"])

	w = postJSON(t, router, "/api/study/progress/bookmarks/toggle", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp.Data.(map[string]any)
	assert.Equal(t, false, data["member"])
}

func TestToggleReadKind(t *testing.T) {
	router := newStudyRouter()

	body := map[string]any{"courseId": "k8s", "key": "junior-j1-0"}
	w := postJSON(t, router, "/api/study/progress/read/toggle", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["member"])
}

func TestToggleRejectsInvalidKind(t *testing.T) {
	router := newStudyRouter()

	body := map[string]any{"courseId": "k8s", "key": "junior-j1-0"}
	w := postJSON(t, router, "/api/study/progress/starred/toggle", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkReadAndLevelProgress(t *testing.T) {
	router := newStudyRouter()

	body := map[string]any{"courseId": "k8s", "key": "junior-j1-0"}
	w := postJSON(t, router, "/api/study/progress/read", body)
	require.Equal(t, http.StatusOK, w.Code)

	w, data := getJSON(t, router, "/api/courses/k8s/levels/junior/progress")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), data["readCount"])
	assert.Greater(t, data["percent"].(float64), 0.0)
}

func TestGetProgressRequiresCourseID(t *testing.T) {
	router := newStudyRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/study/progress", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router := newStudyRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/courses/k8s/levels/junior/search?q=statefulset", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	hits := resp.Data.([]any)
	require.Len(t, hits, 1)
	hit := hits[0].(map[string]any)
	assert.Equal(t, "junior-j1-1", hit["key"])
}

// 视图状态 PUT 返回规整后的状态和可见题目
func TestViewStateFlow(t *testing.T) {
	router := newStudyRouter()

	w, data := getJSON(t, router, "/api/study/view?courseId=k8s")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "module", data["view"])

	body := map[string]any{"courseId": "k8s", "levelId": "junior", "moduleId": "j1"}
	req := httptest.NewRequest(http.MethodPut, "/api/study/view", jsonReader(t, body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	payload := resp.Data.(map[string]any)
	state := payload["state"].(map[string]any)
	assert.Equal(t, "junior", state["levelId"])
	assert.Equal(t, "j1", state["moduleId"])
	visible := payload["visible"].([]any)
	assert.Len(t, visible, 3)
}
