package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_hub_backend/internal/model"
)

func TestCourseLookup(t *testing.T) {
	assert.NotEmpty(t, Courses())

	course, ok := Course("k8s")
	require.True(t, ok)
	assert.Equal(t, "k8s", course.ID)

	_, ok = Course("rust")
	assert.False(t, ok)
}

func TestLevelAndModuleLookup(t *testing.T) {
	level, ok := Level("k8s", "junior")
	require.True(t, ok)
	assert.Equal(t, "junior", level.ID)
	assert.NotEmpty(t, level.Modules)

	_, ok = Level("k8s", "principal")
	assert.False(t, ok)

	mod, ok := Module("k8s", "junior", "j1")
	require.True(t, ok)
	assert.Len(t, mod.Questions, 3)

	_, ok = Module("k8s", "junior", "j9")
	assert.False(t, ok)
}

func TestQuestionLookupBounds(t *testing.T) {
	q, ok := Question("k8s", "junior", "j1", 0)
	require.True(t, ok)
	assert.NotEmpty(t, q.Q)

	_, ok = Question("k8s", "junior", "j1", -1)
	assert.False(t, ok)
	_, ok = Question("k8s", "junior", "j1", 99)
	assert.False(t, ok)
}

func TestTotalQuestions(t *testing.T) {
	level, ok := Level("k8s", "junior")
	require.True(t, ok)

	sum := 0
	for _, mod := range level.Modules {
		sum += len(mod.Questions)
	}
	assert.Equal(t, sum, TotalQuestions(level))
	assert.Zero(t, TotalQuestions(model.Level{}))
}

// 复合键在全目录内唯一
func TestCompositeKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, course := range Courses() {
		for _, level := range course.Levels {
			for _, mod := range level.Modules {
				for i := range mod.Questions {
					key := model.QuestionKey(level.ID, mod.ID, i)
					assert.False(t, seen[key], "duplicate key %s", key)
					seen[key] = true
				}
			}
		}
	}
}

// 目录内容完整：每道题都有题面和答案
func TestCatalogContentComplete(t *testing.T) {
	for _, course := range Courses() {
		assert.NotEmpty(t, course.ID)
		assert.NotEmpty(t, course.Levels)
		for _, level := range course.Levels {
			for _, mod := range level.Modules {
				assert.NotEmpty(t, mod.ID)
				for i, q := range mod.Questions {
					assert.NotEmpty(t, q.Q, "%s/%s/%s[%d]", course.ID, level.ID, mod.ID, i)
					assert.NotEmpty(t, q.A, "%s/%s/%s[%d]", course.ID, level.ID, mod.ID, i)
				}
			}
		}
	}
}
