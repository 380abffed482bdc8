package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_hub_backend/internal/repository"
)

func newLimiterFixture(max int, window time.Duration) (*CallLimiter, *time.Time) {
	store := repository.NewMemoryStateStore()
	l := NewCallLimiter(store, max, window)
	now := time.UnixMilli(1_700_000_000_000)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newLimiterFixture(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		quota := l.Check(ctx, 1)
		assert.True(t, quota.Allowed)
		assert.Equal(t, 3-i, quota.Remaining)
		require.NoError(t, l.Record(ctx, 1))
	}

	quota := l.Check(ctx, 1)
	assert.False(t, quota.Allowed)
	assert.Zero(t, quota.Remaining)
}

// 阻塞时的等待时间 = 最早一条记录 + 窗口 - 当前时刻
func TestLimiterRetryAfter(t *testing.T) {
	l, now := newLimiterFixture(2, time.Hour)
	ctx := context.Background()

	start := *now
	require.NoError(t, l.Record(ctx, 1))

	*now = start.Add(10 * time.Minute)
	require.NoError(t, l.Record(ctx, 1))

	*now = start.Add(30 * time.Minute)
	quota := l.Check(ctx, 1)
	require.False(t, quota.Allowed)
	assert.Equal(t, (30 * time.Minute).Milliseconds(), quota.RetryAfterMs)
}

func TestLimiterWindowSlides(t *testing.T) {
	l, now := newLimiterFixture(2, time.Hour)
	ctx := context.Background()

	start := *now
	require.NoError(t, l.Record(ctx, 1))
	require.NoError(t, l.Record(ctx, 1))

	assert.False(t, l.Check(ctx, 1).Allowed)

	// 窗口滑过第一条记录后额度恢复
	*now = start.Add(time.Hour + time.Millisecond)
	quota := l.Check(ctx, 1)
	assert.True(t, quota.Allowed)
	assert.Equal(t, 2, quota.Remaining)
}

func TestLimiterCorruptStateResets(t *testing.T) {
	store := repository.NewMemoryStateStore()
	l := NewCallLimiter(store, 2, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, keyMentorCalls(1), "not a list"))

	quota := l.Check(ctx, 1)
	assert.True(t, quota.Allowed)
	assert.Equal(t, 2, quota.Remaining)
}

func TestLimiterPerUser(t *testing.T) {
	l, _ := newLimiterFixture(1, time.Hour)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, 1))
	assert.False(t, l.Check(ctx, 1).Allowed)
	assert.True(t, l.Check(ctx, 2).Allowed)
}

func TestLimiterConfigureHotReload(t *testing.T) {
	l, _ := newLimiterFixture(1, time.Hour)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, 1))
	assert.False(t, l.Check(ctx, 1).Allowed)

	l.Configure(5, time.Hour)
	quota := l.Check(ctx, 1)
	assert.True(t, quota.Allowed)
	assert.Equal(t, 4, quota.Remaining)
}
