package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"skillport_backend/internal/middleware"
	"skillport_backend/internal/service"
	"skillport_backend/internal/util"
)

type LearningPathController struct {
	Service  *service.LearningPathService
	MaxLimit int
}

func NewLearningPathController(svc *service.LearningPathService, maxLimit int) *LearningPathController {
	return &LearningPathController{Service: svc, MaxLimit: maxLimit}
}

func (c *LearningPathController) limitFrom(ctx *gin.Context) int {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return limit
}

// @Summary 个性化学习路径
// @Tags 学习路径
// @Produce json
// @Param limit query int false "推荐条数上限"
// @Success 200 {object} util.Response
// @Router /api/learning-path [get]
func (c *LearningPathController) GetLearningPath(ctx *gin.Context) {
	resp, err := c.Service.GetLearningPath(ctx.Request.Context(), middleware.SessionID(ctx), c.limitFrom(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary 推荐内容列表
// @Tags 学习路径
// @Produce json
// @Param limit query int false "推荐条数上限"
// @Success 200 {object} util.Response
// @Router /api/learning-path/recommendations [get]
func (c *LearningPathController) GetRecommendations(ctx *gin.Context) {
	recommendations, err := c.Service.GetRecommendations(ctx.Request.Context(), middleware.SessionID(ctx), c.limitFrom(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recommendations)
}
