package controller

import (
	"github.com/gin-gonic/gin"

	"interview_hub_backend/internal/catalog"
	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/service"
	"interview_hub_backend/internal/util"
)

// MentorController AI 导师接口。反馈与聊天共用同一个限流窗口
type MentorController struct {
	MentorService *service.MentorService
	CallLimiter   *service.CallLimiter
}

func NewMentorController(mentorService *service.MentorService, limiter *service.CallLimiter) *MentorController {
	return &MentorController{MentorService: mentorService, CallLimiter: limiter}
}

type feedbackRequest struct {
	Persona  string `json:"persona" binding:"required"`
	CourseID string `json:"courseId" binding:"required"`
	LevelID  string `json:"levelId" binding:"required"`
	ModuleID string `json:"moduleId" binding:"required"`
	Index    *int   `json:"index" binding:"required,gte=0"`
	Input    string `json:"input"`
	Prior    string `json:"prior"`
}

type chatRequest struct {
	History []model.ChatMessage `json:"history" binding:"dive"`
	Message string              `json:"message" binding:"required"`
}

// Feedback godoc
// @Summary 人设反馈
// @Description 按所选人设评审用户对某道题的回答。interviewer 系列人设要求先提交回答
// @Tags 导师
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body feedbackRequest true "反馈请求"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 429 {object} util.Response
// @Router /mentor/feedback [post]
func (ctrl *MentorController) Feedback(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	persona := model.Persona(req.Persona)
	if persona.RequiresAnswer() && req.Input == "" {
		util.BadRequest(c, util.ErrAnswerRequired.Error())
		return
	}
	question, ok := catalog.Question(req.CourseID, req.LevelID, req.ModuleID, *req.Index)
	if !ok {
		util.NotFound(c)
		return
	}
	// 未注册的人设不发起网络调用，也不占用额度
	if !service.KnownPersona(persona) {
		util.Success(c, gin.H{"persona": persona, "text": ctrl.MentorService.Generate(c.Request.Context(), persona, "", "", "", "")})
		return
	}
	quota := ctrl.CallLimiter.Check(c.Request.Context(), claims.UserID)
	if !quota.Allowed {
		util.TooManyRequests(c, quota)
		return
	}
	if err := ctrl.CallLimiter.Record(c.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(c, err)
		return
	}
	text := ctrl.MentorService.Generate(
		c.Request.Context(),
		persona,
		util.StripHTML(question.Q),
		util.StripHTML(question.A),
		req.Input,
		req.Prior,
	)
	util.Success(c, gin.H{
		"persona": persona,
		"text":    text,
	})
}

// Chat godoc
// @Summary 导师流式聊天
// @Description SSE 流式返回。历史对话超过上限时只保留最近的轮次
// @Tags 导师
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param request body chatRequest true "聊天请求"
// @Failure 400 {object} util.Response
// @Failure 429 {object} util.Response
// @Router /mentor/chat [post]
func (ctrl *MentorController) Chat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	quota := ctrl.CallLimiter.Check(ctx.Request.Context(), claims.UserID)
	if !quota.Allowed {
		util.TooManyRequests(ctx, quota)
		return
	}
	if err := ctrl.CallLimiter.Record(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	stream, errChan := ctrl.MentorService.ChatStream(ctx.Request.Context(), req.History, req.Message)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for content := range stream {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", "Error communicating with AI Mentor. Please try again.")
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}

// Quota godoc
// @Summary 剩余调用额度
// @Tags 导师
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /mentor/quota [get]
func (ctrl *MentorController) Quota(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	util.Success(c, ctrl.CallLimiter.Check(c.Request.Context(), claims.UserID))
}
