package controller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"skillport_backend/internal/middleware"
	"skillport_backend/internal/service"
	"skillport_backend/internal/util"
)

type ChatController struct {
	Service *service.ChatService
}

func NewChatController(svc *service.ChatService) *ChatController {
	return &ChatController{Service: svc}
}

// @Summary 学习助手对话
// @Tags AI助手
// @Accept json
// @Produce json
// @Param body body service.ChatRequest true "提问与历史对话"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.Chat(ctx.Request.Context(), middleware.SessionID(ctx), req)
	if err != nil {
		if errors.Is(err, util.ErrEmptyPrompt) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary 学习助手流式对话
// @Tags AI助手
// @Accept json
// @Produce text/event-stream
// @Param body body service.ChatRequest true "提问与历史对话"
// @Success 200 {string} string "SSE流"
// @Router /api/chat/stream [post]
func (c *ChatController) ChatStream(ctx *gin.Context) {
	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	out, errChan, err := c.Service.ChatStream(ctx.Request.Context(), middleware.SessionID(ctx), req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case chunk, ok := <-out:
			if !ok {
				ctx.SSEvent("done", "")
				return false
			}
			ctx.SSEvent("message", chunk)
			return true
		case err, ok := <-errChan:
			if ok && err != nil {
				ctx.SSEvent("error", err.Error())
			}
			return false
		}
	})
}
