package service

import (
	"context"
	"sort"

	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/repository"
	"interview_hub_backend/internal/util"
)

// ProgressService 维护用户的学习进度集合：已读、收藏、书签。
// 三个集合都以题目复合键 levelID-moduleID-index 为成员
type ProgressService struct {
	Store repository.StateStore
}

func NewProgressService(store repository.StateStore) *ProgressService {
	return &ProgressService{Store: store}
}

// Toggle 翻转集合中的成员关系，返回翻转后是否在集合中。
// 三个集合都可翻转；常规阅读路径走一次性的 MarkRead
func (s *ProgressService) Toggle(ctx context.Context, userID uint, courseID string, kind model.ProgressKind, questionKey string) (bool, error) {
	if !model.ValidProgressKind(kind) {
		return false, util.ErrUnknownProgressSet
	}
	key := keyProgress(userID, courseID, kind)
	set := loadStringSet(ctx, s.Store, key)
	_, present := set[questionKey]
	if present {
		delete(set, questionKey)
	} else {
		set[questionKey] = struct{}{}
	}
	if err := saveStringSet(ctx, s.Store, key, set); err != nil {
		return present, err
	}
	return !present, nil
}

// MarkRead 将题目标记为已读。重复标记是幂等的
func (s *ProgressService) MarkRead(ctx context.Context, userID uint, courseID, questionKey string) error {
	key := keyProgress(userID, courseID, model.ProgressRead)
	set := loadStringSet(ctx, s.Store, key)
	if _, ok := set[questionKey]; ok {
		return nil
	}
	set[questionKey] = struct{}{}
	return saveStringSet(ctx, s.Store, key, set)
}

// Sets 返回用户在某课程下的全部进度集合，成员已排序
func (s *ProgressService) Sets(ctx context.Context, userID uint, courseID string) model.ProgressSets {
	return model.ProgressSets{
		Read:       sortedMembers(loadStringSet(ctx, s.Store, keyProgress(userID, courseID, model.ProgressRead))),
		Bookmarked: sortedMembers(loadStringSet(ctx, s.Store, keyProgress(userID, courseID, model.ProgressBookmarked))),
		Favorited:  sortedMembers(loadStringSet(ctx, s.Store, keyProgress(userID, courseID, model.ProgressFavorited))),
	}
}

// Set 返回单个进度集合
func (s *ProgressService) Set(ctx context.Context, userID uint, courseID string, kind model.ProgressKind) (map[string]struct{}, error) {
	if !model.ValidProgressKind(kind) {
		return nil, util.ErrUnknownProgressSet
	}
	return loadStringSet(ctx, s.Store, keyProgress(userID, courseID, kind)), nil
}

// Theme 返回用户保存的界面主题，未设置时为 dark
func (s *ProgressService) Theme(ctx context.Context, userID uint) string {
	raw, err := s.Store.Get(ctx, keyTheme(userID))
	if err != nil || (raw != "light" && raw != "dark") {
		return "dark"
	}
	return raw
}

func (s *ProgressService) SetTheme(ctx context.Context, userID uint, theme string) error {
	if theme != "light" && theme != "dark" {
		theme = "dark"
	}
	return s.Store.Set(ctx, keyTheme(userID), theme)
}

func sortedMembers(set map[string]struct{}) []string {
	items := make([]string, 0, len(set))
	for it := range set {
		items = append(items, it)
	}
	sort.Strings(items)
	return items
}
