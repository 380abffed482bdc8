package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"interview_hub_backend/internal/catalog"
	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/service"
	"interview_hub_backend/internal/util"
)

// CourseController 只读目录接口，内容编译期内置，无需鉴权
type CourseController struct {
	StudyService *service.StudyService
}

func NewCourseController(studyService *service.StudyService) *CourseController {
	return &CourseController{StudyService: studyService}
}

// ListCourses godoc
// @Summary 课程列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /courses [get]
func (ctrl *CourseController) ListCourses(c *gin.Context) {
	courses := catalog.Courses()
	summaries := make([]gin.H, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, gin.H{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"levels":      len(course.Levels),
		})
	}
	util.Success(c, summaries)
}

// GetCourse godoc
// @Summary 课程详情
// @Description 返回课程及其级别概要（不含题目正文）
// @Tags 目录
// @Produce json
// @Param courseId path string true "课程 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId} [get]
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	course, ok := catalog.Course(c.Param("courseId"))
	if !ok {
		util.NotFound(c)
		return
	}
	levels := make([]gin.H, 0, len(course.Levels))
	for _, level := range course.Levels {
		levels = append(levels, gin.H{
			"id":          level.ID,
			"title":       level.Title,
			"subTitle":    level.SubTitle,
			"icon":        level.Icon,
			"color":       level.Color,
			"description": level.Description,
			"modules":     len(level.Modules),
			"questions":   catalog.TotalQuestions(level),
		})
	}
	util.Success(c, gin.H{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"levels":      levels,
	})
}

// GetLevel godoc
// @Summary 级别详情
// @Description 返回级别下的模块列表
// @Tags 目录
// @Produce json
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId} [get]
func (ctrl *CourseController) GetLevel(c *gin.Context) {
	level, ok := catalog.Level(c.Param("courseId"), c.Param("levelId"))
	if !ok {
		util.NotFound(c)
		return
	}
	modules := make([]gin.H, 0, len(level.Modules))
	for _, mod := range level.Modules {
		modules = append(modules, gin.H{
			"id":        mod.ID,
			"title":     mod.Title,
			"desc":      mod.Desc,
			"questions": len(mod.Questions),
		})
	}
	util.Success(c, gin.H{
		"id":       level.ID,
		"title":    level.Title,
		"subTitle": level.SubTitle,
		"modules":  modules,
	})
}

// ListModuleQuestions godoc
// @Summary 模块题目列表
// @Tags 目录
// @Produce json
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Param moduleId path string true "模块 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId}/modules/{moduleId}/questions [get]
func (ctrl *CourseController) ListModuleQuestions(c *gin.Context) {
	hits, err := ctrl.StudyService.ModuleQuestions(c.Param("courseId"), c.Param("levelId"), c.Param("moduleId"))
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, hits)
}

// GetQuestionPlain godoc
// @Summary 题目纯文本版
// @Description 返回去除 HTML 标记后的题目内容，便于复制或朗读
// @Tags 目录
// @Produce json
// @Param courseId path string true "课程 ID"
// @Param levelId path string true "级别 ID"
// @Param moduleId path string true "模块 ID"
// @Param index path int true "题目序号"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/levels/{levelId}/modules/{moduleId}/questions/{index}/plain [get]
func (ctrl *CourseController) GetQuestionPlain(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		util.BadRequest(c, "题目序号必须是非负整数")
		return
	}
	levelID, moduleID := c.Param("levelId"), c.Param("moduleId")
	question, ok := catalog.Question(c.Param("courseId"), levelID, moduleID, index)
	if !ok {
		util.NotFound(c)
		return
	}
	util.Success(c, gin.H{
		"key": model.QuestionKey(levelID, moduleID, index),
		"q":   util.StripHTML(question.Q),
		"a":   util.StripHTML(question.A),
		"tip": util.StripHTML(question.Tip),
	})
}
