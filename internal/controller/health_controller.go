package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"interview_hub_backend/internal/util"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// Check godoc
// @Summary 健康检查
// @Description 检查服务及其依赖（MySQL、Redis）的可用性
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (ctrl *HealthController) Check(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	healthy := true

	if ctrl.DB != nil {
		sqlDB, err := ctrl.DB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["database"] = "down"
			healthy = false
		} else {
			status["database"] = "up"
		}
	}
	if ctrl.Redis != nil {
		if err := ctrl.Redis.Ping(c.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
			healthy = false
		} else {
			status["redis"] = "up"
		}
	}

	if !healthy {
		status["status"] = "degraded"
		util.Error(c, http.StatusServiceUnavailable, "服务依赖不可用")
		return
	}
	util.Success(c, status)
}
