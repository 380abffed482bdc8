package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/repository"
)

// 状态键布局。具体字符串是实现细节，不构成对外契约
func keyProgress(userID uint, courseID string, kind model.ProgressKind) string {
	return fmt.Sprintf("trainer:%d:%s:%s", userID, courseID, kind)
}

func keyTheme(userID uint) string {
	return fmt.Sprintf("trainer:%d:theme", userID)
}

func keyViewState(userID uint, courseID string) string {
	return fmt.Sprintf("trainer:%d:%s:view", userID, courseID)
}

func keyMentorCalls(userID uint) string {
	return fmt.Sprintf("trainer:%d:mentor_calls", userID)
}

// loadStringSet 读取并解析字符串集合。持久化内容按不可信输入对待：
// 键不存在、JSON 损坏、形状不符都静默回退为空集合，绝不向调用方抛错
func loadStringSet(ctx context.Context, store repository.StateStore, key string) map[string]struct{} {
	set := make(map[string]struct{})
	raw, err := store.Get(ctx, key)
	if err != nil {
		return set
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return set
	}
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// saveStringSet 整体序列化写回。排序保证序列化结果稳定
func saveStringSet(ctx context.Context, store repository.StateStore, key string, set map[string]struct{}) error {
	items := make([]string, 0, len(set))
	for it := range set {
		items = append(items, it)
	}
	sort.Strings(items)
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}

// loadTimestamps 读取限流窗口的毫秒时间戳列表，损坏时同样回退为空
func loadTimestamps(ctx context.Context, store repository.StateStore, key string) []int64 {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil
	}
	var ts []int64
	if err := json.Unmarshal([]byte(raw), &ts); err != nil {
		return nil
	}
	return ts
}

func saveTimestamps(ctx context.Context, store repository.StateStore, key string, ts []int64) error {
	raw, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
