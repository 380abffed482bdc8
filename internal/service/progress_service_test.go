package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/repository"
)

func newProgressFixture() (*ProgressService, repository.StateStore) {
	store := repository.NewMemoryStateStore()
	return NewProgressService(store), store
}

func TestToggleMembership(t *testing.T) {
	s, _ := newProgressFixture()
	ctx := context.Background()

	member, err := s.Toggle(ctx, 1, "k8s", model.ProgressBookmarked, "junior-j1-0")
	require.NoError(t, err)
	assert.True(t, member)

	member, err = s.Toggle(ctx, 1, "k8s", model.ProgressBookmarked, "junior-j1-0")
	require.NoError(t, err)
	assert.False(t, member)

	sets := s.Sets(ctx, 1, "k8s")
	assert.Empty(t, sets.Bookmarked)
}

// 双重翻转回到原点，集合其余成员不受影响
func TestToggleDoubleToggleIsIdentity(t *testing.T) {
	s, _ := newProgressFixture()
	ctx := context.Background()

	_, err := s.Toggle(ctx, 1, "k8s", model.ProgressFavorited, "junior-j1-0")
	require.NoError(t, err)
	_, err = s.Toggle(ctx, 1, "k8s", model.ProgressFavorited, "junior-j2-1")
	require.NoError(t, err)

	before := s.Sets(ctx, 1, "k8s").Favorited

	_, err = s.Toggle(ctx, 1, "k8s", model.ProgressFavorited, "middle-m1-0")
	require.NoError(t, err)
	_, err = s.Toggle(ctx, 1, "k8s", model.ProgressFavorited, "middle-m1-0")
	require.NoError(t, err)

	assert.Equal(t, before, s.Sets(ctx, 1, "k8s").Favorited)
}

// 已读集合同样支持翻转，两次翻转回到原始状态
func TestToggleReadSetRoundTrip(t *testing.T) {
	s, _ := newProgressFixture()
	ctx := context.Background()

	member, err := s.Toggle(ctx, 1, "k8s", model.ProgressRead, "junior-j1-0")
	require.NoError(t, err)
	assert.True(t, member)

	member, err = s.Toggle(ctx, 1, "k8s", model.ProgressRead, "junior-j1-0")
	require.NoError(t, err)
	assert.False(t, member)
	assert.Empty(t, s.Sets(ctx, 1, "k8s").Read)
}

func TestToggleRejectsUnknownKind(t *testing.T) {
	s, _ := newProgressFixture()

	_, err := s.Toggle(context.Background(), 1, "k8s", model.ProgressKind("starred"), "junior-j1-0")
	assert.Error(t, err)
}

func TestMarkReadIdempotent(t *testing.T) {
	s, _ := newProgressFixture()
	ctx := context.Background()

	require.NoError(t, s.MarkRead(ctx, 1, "k8s", "junior-j1-0"))
	require.NoError(t, s.MarkRead(ctx, 1, "k8s", "junior-j1-0"))

	sets := s.Sets(ctx, 1, "k8s")
	assert.Equal(t, []string{"junior-j1-0"}, sets.Read)
}

// 损坏的持久化内容按"无历史状态"处理，不报错
func TestCorruptStateFallsBackToEmpty(t *testing.T) {
	s, store := newProgressFixture()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, keyProgress(1, "k8s", model.ProgressBookmarked), "{not json"))
	require.NoError(t, store.Set(ctx, keyProgress(1, "k8s", model.ProgressRead), `{"wrong":"shape"}`))

	sets := s.Sets(ctx, 1, "k8s")
	assert.Empty(t, sets.Bookmarked)
	assert.Empty(t, sets.Read)

	// 损坏状态上的写入照常工作
	member, err := s.Toggle(ctx, 1, "k8s", model.ProgressBookmarked, "junior-j1-0")
	require.NoError(t, err)
	assert.True(t, member)
	assert.Equal(t, []string{"junior-j1-0"}, s.Sets(ctx, 1, "k8s").Bookmarked)
}

// 不同用户、不同课程互不串台
func TestProgressIsolation(t *testing.T) {
	s, _ := newProgressFixture()
	ctx := context.Background()

	require.NoError(t, s.MarkRead(ctx, 1, "k8s", "junior-j1-0"))
	require.NoError(t, s.MarkRead(ctx, 2, "k8s", "junior-j1-1"))
	require.NoError(t, s.MarkRead(ctx, 1, "python", "junior-p1-0"))

	assert.Equal(t, []string{"junior-j1-0"}, s.Sets(ctx, 1, "k8s").Read)
	assert.Equal(t, []string{"junior-j1-1"}, s.Sets(ctx, 2, "k8s").Read)
	assert.Equal(t, []string{"junior-p1-0"}, s.Sets(ctx, 1, "python").Read)
}

func TestThemeDefaultsToDark(t *testing.T) {
	s, store := newProgressFixture()
	ctx := context.Background()

	assert.Equal(t, "dark", s.Theme(ctx, 1))

	require.NoError(t, s.SetTheme(ctx, 1, "light"))
	assert.Equal(t, "light", s.Theme(ctx, 1))

	// 非法存量值回退默认
	require.NoError(t, store.Set(ctx, keyTheme(1), "neon"))
	assert.Equal(t, "dark", s.Theme(ctx, 1))
}
