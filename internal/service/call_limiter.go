package service

import (
	"context"
	"sync"
	"time"

	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/repository"
)

// CallLimiter 固定窗口限流器：每个用户维护一份毫秒时间戳列表，
// 每次检查先剪掉窗口外的条目再与上限比较。列表整体持久化，与其余
// 用户状态共用同一个存储
type CallLimiter struct {
	store  repository.StateStore
	mu     sync.Mutex
	max    int
	window time.Duration
	now    func() time.Time
}

func NewCallLimiter(store repository.StateStore, max int, window time.Duration) *CallLimiter {
	return &CallLimiter{
		store:  store,
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Configure 热更新限流参数，由配置文件监听回调触发
func (l *CallLimiter) Configure(max int, window time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.max = max
	l.window = window
}

func (l *CallLimiter) prune(ts []int64, cutoff int64) []int64 {
	kept := ts[:0]
	for _, t := range ts {
		if t > cutoff {
			kept = append(kept, t)
		}
	}
	return kept
}

// Check 返回当前额度。被限流时 RetryAfterMs 等于最早一条记录滑出
// 窗口还需要的毫秒数
func (l *CallLimiter) Check(ctx context.Context, userID uint) model.MentorQuota {
	l.mu.Lock()
	max, window := l.max, l.window
	l.mu.Unlock()

	now := l.now().UnixMilli()
	ts := l.prune(loadTimestamps(ctx, l.store, keyMentorCalls(userID)), now-window.Milliseconds())
	if len(ts) < max {
		return model.MentorQuota{Allowed: true, Remaining: max - len(ts)}
	}
	return model.MentorQuota{
		Allowed:      false,
		Remaining:    0,
		RetryAfterMs: ts[0] + window.Milliseconds() - now,
	}
}

// Record 登记一次成功发往后端的调用。剪裁与追加在同一次写回中完成
func (l *CallLimiter) Record(ctx context.Context, userID uint) error {
	l.mu.Lock()
	window := l.window
	l.mu.Unlock()

	now := l.now().UnixMilli()
	key := keyMentorCalls(userID)
	ts := l.prune(loadTimestamps(ctx, l.store, key), now-window.Milliseconds())
	ts = append(ts, now)
	return saveTimestamps(ctx, l.store, key, ts)
}
