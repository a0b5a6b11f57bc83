package controller

import (
	"github.com/gin-gonic/gin"

	"skillport_backend/internal/service"
	"skillport_backend/internal/util"
)

type CommunityController struct {
	Service *service.CommunityService
}

func NewCommunityController(svc *service.CommunityService) *CommunityController {
	return &CommunityController{Service: svc}
}

// @Summary 社区信息流
// @Tags 社区
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/community/feed [get]
func (c *CommunityController) GetFeed(ctx *gin.Context) {
	util.Success(ctx, c.Service.GetFeed())
}
