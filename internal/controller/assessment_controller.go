package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"skillport_backend/internal/middleware"
	"skillport_backend/internal/service"
	"skillport_backend/internal/util"
	"skillport_backend/pkg/monitoring"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 获取测评题目
// @Tags 自我测评
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListQuestions())
}

// @Summary 提交测评答卷
// @Tags 自我测评
// @Accept json
// @Produce json
// @Param body body service.SubmitAssessmentRequest true "题目ID到回答的映射"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req service.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(ctx.Request.Context(), middleware.SessionID(ctx), req)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentIncomplete) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.AssessmentSubmissions.Inc()
	util.Success(ctx, result)
}

// @Summary 获取本会话的测评结果
// @Tags 自我测评
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/results [get]
func (c *AssessmentController) GetResults(ctx *gin.Context) {
	resp, err := c.Service.GetResults(ctx.Request.Context(), middleware.SessionID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary 结果页图表数据
// @Tags 自我测评
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/analytics [get]
func (c *AssessmentController) GetAnalytics(ctx *gin.Context) {
	resp, err := c.Service.GetAnalytics(ctx.Request.Context(), middleware.SessionID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}
