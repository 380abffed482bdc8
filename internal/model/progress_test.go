package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewStateSelectLevelResets(t *testing.T) {
	v := ViewState{CourseID: "k8s", LevelID: "junior", ModuleID: "j1", View: ViewSearch, Query: "pod"}

	v.SelectLevel("middle")

	assert.Equal(t, "middle", v.LevelID)
	assert.Empty(t, v.ModuleID)
	assert.Empty(t, v.Query)
	assert.Equal(t, ViewModule, v.View)
}

// 显式选模块优先于过期的搜索条件
func TestViewStateSelectModuleClearsQuery(t *testing.T) {
	v := ViewState{CourseID: "k8s", LevelID: "junior", View: ViewSearch, Query: "pod"}

	v.SelectModule("j2")

	assert.Equal(t, "j2", v.ModuleID)
	assert.Empty(t, v.Query)
	assert.Equal(t, ViewModule, v.View)
}

func TestViewStateQueryTransitions(t *testing.T) {
	v := ViewState{CourseID: "k8s", LevelID: "junior", ModuleID: "j1", View: ViewModule}

	v.SetQuery("service")
	assert.Equal(t, ViewSearch, v.View)

	v.SetQuery("")
	assert.Equal(t, ViewModule, v.View)
	// 模块选择在搜索往返后保留
	assert.Equal(t, "j1", v.ModuleID)
}

func TestViewStateSelectCollection(t *testing.T) {
	v := ViewState{CourseID: "k8s", LevelID: "junior", ModuleID: "j1", Query: "pod", View: ViewSearch}

	v.SelectCollection(ViewFavorites)
	assert.Equal(t, ViewFavorites, v.View)
	assert.Empty(t, v.ModuleID)
	assert.Empty(t, v.Query)

	// 非聚合视图参数被忽略
	v.SelectCollection(ViewSearch)
	assert.Equal(t, ViewFavorites, v.View)
}

func TestQuestionKeyComposition(t *testing.T) {
	assert.Equal(t, "junior-j1-0", QuestionKey("junior", "j1", 0))
	assert.Equal(t, "senior-s2-12", QuestionKey("senior", "s2", 12))
}

func TestRequiresAnswer(t *testing.T) {
	assert.True(t, PersonaInterviewerStrict.RequiresAnswer())
	assert.True(t, PersonaInterviewerFriendly.RequiresAnswer())
	assert.True(t, PersonaInterviewerContinuous.RequiresAnswer())
	// start_interview 由 AI 先提问，不要求输入
	assert.False(t, PersonaStartInterview.RequiresAnswer())
	assert.False(t, PersonaTeacherELI5.RequiresAnswer())
}

func TestValidProgressKind(t *testing.T) {
	assert.True(t, ValidProgressKind(ProgressRead))
	assert.True(t, ValidProgressKind(ProgressBookmarked))
	assert.True(t, ValidProgressKind(ProgressFavorited))
	assert.False(t, ValidProgressKind(ProgressKind("starred")))
}
