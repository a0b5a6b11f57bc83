package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"skillport_backend/internal/util"
)

type HealthController struct {
	Redis *redis.Client
}

func NewHealthController(rdb *redis.Client) *HealthController {
	return &HealthController{Redis: rdb}
}

// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	redisStatus := "ok"
	if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		redisStatus = "unavailable"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"redis":  redisStatus,
	})
}
