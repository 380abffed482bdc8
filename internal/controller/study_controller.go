package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/service"
	"interview_hub_backend/internal/util"
)

// StudyController 学习状态接口：进度集合、视图状态、主题偏好。
// 所有接口都要求登录，状态按 用户+课程 隔离
type StudyController struct {
	StudyService    *service.StudyService
	ProgressService *service.ProgressService
}

func NewStudyController(studyService *service.StudyService, progressService *service.ProgressService) *StudyController {
	return &StudyController{StudyService: studyService, ProgressService: progressService}
}

type toggleRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Key      string `json:"key" binding:"required"`
}

type viewStateRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	LevelID  string `json:"levelId"`
	ModuleID string `json:"moduleId"`
	View     string `json:"view" binding:"omitempty,oneof=module search bookmarks favorites"`
	Query    string `json:"query"`
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

// GetViewState godoc
// @Summary 读取视图状态
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param courseId query string true "课程 ID"
// @Success 200 {object} util.Response
// @Router /study/view [get]
func (ctrl *StudyController) GetViewState(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	courseID := c.Query("courseId")
	if courseID == "" {
		util.BadRequest(c, "缺少 courseId 参数")
		return
	}
	state := ctrl.StudyService.ViewState(c.Request.Context(), claims.UserID, courseID)
	util.Success(c, state)
}

// PutViewState godoc
// @Summary 保存视图状态
// @Description 写回前按状态机规则规整：切级别清空模块与搜索词，非空搜索词强制进入搜索视图
// @Tags 学习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body viewStateRequest true "视图状态"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /study/view [put]
func (ctrl *StudyController) PutViewState(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var req viewStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	prev := ctrl.StudyService.ViewState(c.Request.Context(), claims.UserID, req.CourseID)
	state := prev
	if req.LevelID != "" && req.LevelID != prev.LevelID {
		state.SelectLevel(req.LevelID)
	}
	if req.ModuleID != "" {
		state.SelectModule(req.ModuleID)
	}
	switch model.ViewMode(req.View) {
	case model.ViewBookmarks, model.ViewFavorites:
		state.SelectCollection(model.ViewMode(req.View))
	case model.ViewSearch, model.ViewModule, "":
		state.SetQuery(req.Query)
	}
	if err := ctrl.StudyService.SaveViewState(c.Request.Context(), claims.UserID, state); err != nil {
		util.LogInternalError(c, err)
		return
	}
	hits, err := ctrl.StudyService.Derive(c.Request.Context(), claims.UserID, state)
	if err != nil {
		hits = []model.SearchHit{}
	}
	util.Success(c, gin.H{
		"state":   state,
		"visible": hits,
	})
}

// ToggleProgress godoc
// @Summary 翻转进度集合成员
// @Description kind 接受 read、bookmarks 或 favorites，两次翻转恢复原状
// @Tags 学习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "集合类型" Enums(read, bookmarks, favorites)
// @Param request body toggleRequest true "题目复合键"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /study/progress/{kind}/toggle [post]
func (ctrl *StudyController) ToggleProgress(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	kind := model.ProgressKind(c.Param("kind"))
	member, err := ctrl.ProgressService.Toggle(c.Request.Context(), claims.UserID, req.CourseID, kind, req.Key)
	if err != nil {
		if errors.Is(err, util.ErrUnknownProgressSet) {
			util.BadRequest(c, "不支持的集合类型")
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{
		"key":    req.Key,
		"kind":   kind,
		"member": member,
	})
}

// MarkRead godoc
// @Summary 标记题目已读
// @Description 幂等操作，重复标记同一题无副作用
// @Tags 学习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body toggleRequest true "题目复合键"
// @Success 200 {object} util.Response
// @Router /study/progress/read [post]
func (ctrl *StudyController) MarkRead(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if err := ctrl.ProgressService.MarkRead(c.Request.Context(), claims.UserID, req.CourseID, req.Key); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"key": req.Key})
}

// GetProgress godoc
// @Summary 进度集合总览
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param courseId query string true "课程 ID"
// @Success 200 {object} util.Response
// @Router /study/progress [get]
func (ctrl *StudyController) GetProgress(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	courseID := c.Query("courseId")
	if courseID == "" {
		util.BadRequest(c, "缺少 courseId 参数")
		return
	}
	util.Success(c, ctrl.ProgressService.Sets(c.Request.Context(), claims.UserID, courseID))
}

// GetLevelProgress godoc
// @Summary 级别完成度
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId}/progress [get]
func (ctrl *StudyController) GetLevelProgress(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	progress, err := ctrl.StudyService.LevelProgress(c.Request.Context(), claims.UserID, c.Param("courseId"), c.Param("levelId"))
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, progress)
}

// Search godoc
// @Summary 级别内搜索
// @Description 大小写不敏感的子串匹配，覆盖题面、答案、提示和模块描述
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Param q query string true "搜索词"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId}/search [get]
func (ctrl *StudyController) Search(c *gin.Context) {
	hits, err := ctrl.StudyService.Search(c.Param("courseId"), c.Param("levelId"), c.Query("q"))
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, hits)
}

// ListBookmarks godoc
// @Summary 级别内的书签题目
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId}/bookmarks [get]
func (ctrl *StudyController) ListBookmarks(c *gin.Context) {
	ctrl.listCollection(c, model.ProgressBookmarked)
}

// ListFavorites godoc
// @Summary 级别内的收藏题目
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId}/favorites [get]
func (ctrl *StudyController) ListFavorites(c *gin.Context) {
	ctrl.listCollection(c, model.ProgressFavorited)
}

func (ctrl *StudyController) listCollection(c *gin.Context, kind model.ProgressKind) {
	claims := util.GetUserFromContext(c)
	hits, err := ctrl.StudyService.Collection(c.Request.Context(), claims.UserID, c.Param("courseId"), c.Param("levelId"), kind)
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, hits)
}

// GetTheme godoc
// @Summary 读取主题偏好
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /study/theme [get]
func (ctrl *StudyController) GetTheme(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	util.Success(c, gin.H{"theme": ctrl.ProgressService.Theme(c.Request.Context(), claims.UserID)})
}

// PutTheme godoc
// @Summary 保存主题偏好
// @Tags 学习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body themeRequest true "主题"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /study/theme [put]
func (ctrl *StudyController) PutTheme(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if err := ctrl.ProgressService.SetTheme(c.Request.Context(), claims.UserID, req.Theme); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"theme": req.Theme})
}
