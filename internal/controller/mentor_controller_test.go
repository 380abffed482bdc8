package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_hub_backend/internal/config"
	"interview_hub_backend/internal/repository"
	"interview_hub_backend/internal/service"
	"interview_hub_backend/internal/util"
	"interview_hub_backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
}

// fakeAuth 绕过 JWT 校验，直接注入用户身份
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Email: "test@example.com"})
		c.Next()
	}
}

func newMentorRouter(maxCalls int) (*gin.Engine, *service.CallLimiter) {
	store := repository.NewMemoryStateStore()
	cfg := &config.Config{}
	cfg.AI.Model = "gemini-2.5-flash" // api_key 留空，网关走降级路径

	mentor := service.NewMentorService(cfg)
	limiter := service.NewCallLimiter(store, maxCalls, time.Hour)
	ctrl := NewMentorController(mentor, limiter)

	router := gin.New()
	api := router.Group("/api", fakeAuth(1))
	api.POST("/mentor/feedback", ctrl.Feedback)
	api.GET("/mentor/quota", ctrl.Quota)
	return router, limiter
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func feedbackBody(persona, input string) map[string]any {
	return map[string]any{
		"persona":  persona,
		"courseId": "k8s",
		"levelId":  "junior",
		"moduleId": "j1",
		"index":    0,
		"input":    input,
	}
}

// interviewer 人设要求先提交回答
func TestFeedbackRequiresAnswer(t *testing.T) {
	router, _ := newMentorRouter(10)

	w := postJSON(t, router, "/api/mentor/feedback", feedbackBody("interviewer_strict", ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackUnknownQuestion(t *testing.T) {
	router, _ := newMentorRouter(10)

	body := feedbackBody("teacher_eli5", "")
	body["moduleId"] = "j99"
	w := postJSON(t, router, "/api/mentor/feedback", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// 未注册人设：返回提示语，不消耗额度
func TestFeedbackUnknownPersonaKeepsQuota(t *testing.T) {
	router, limiter := newMentorRouter(10)

	w := postJSON(t, router, "/api/mentor/feedback", feedbackBody("time_traveler", "ответ"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Unknown AI persona requested.", data["text"])

	quota := limiter.Check(context.Background(), 1)
	assert.Equal(t, 10, quota.Remaining)
}

// 无 API Key 时返回固定降级提示，但额度照常扣减
func TestFeedbackMissingKeyDegrades(t *testing.T) {
	router, limiter := newMentorRouter(10)

	w := postJSON(t, router, "/api/mentor/feedback", feedbackBody("teacher_eli5", ""))
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "⚠️ API Key is missing. Please configure the API_KEY environment variable.", data["text"])

	quota := limiter.Check(context.Background(), 1)
	assert.Equal(t, 9, quota.Remaining)
}

func TestFeedbackRateLimited(t *testing.T) {
	router, _ := newMentorRouter(1)

	w := postJSON(t, router, "/api/mentor/feedback", feedbackBody("teacher_eli5", ""))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/mentor/feedback", feedbackBody("teacher_eli5", ""))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestQuotaEndpoint(t *testing.T) {
	router, _ := newMentorRouter(10)

	req := httptest.NewRequest(http.MethodGet, "/api/mentor/quota", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["allowed"])
	assert.Equal(t, float64(10), data["remaining"])
}
