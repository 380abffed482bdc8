package service

import (
	"context"
	"encoding/json"
	"strings"

	"interview_hub_backend/internal/catalog"
	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/repository"
	"interview_hub_backend/internal/util"
)

// StudyService 提供目录查询、搜索、集合视图与视图状态持久化
type StudyService struct {
	Store    repository.StateStore
	Progress *ProgressService
}

func NewStudyService(store repository.StateStore, progress *ProgressService) *StudyService {
	return &StudyService{Store: store, Progress: progress}
}

// ModuleQuestions 返回某模块下的全部题目，附带复合键
func (s *StudyService) ModuleQuestions(courseID, levelID, moduleID string) ([]model.SearchHit, error) {
	mod, ok := catalog.Module(courseID, levelID, moduleID)
	if !ok {
		return nil, util.ErrModuleNotFound
	}
	hits := make([]model.SearchHit, 0, len(mod.Questions))
	for i, q := range mod.Questions {
		hits = append(hits, model.SearchHit{
			Question:    q,
			Key:         model.QuestionKey(levelID, mod.ID, i),
			ModuleID:    mod.ID,
			ModuleTitle: mod.Title,
			Index:       i,
		})
	}
	return hits, nil
}

// Search 在指定级别内做大小写不敏感的子串匹配，匹配范围覆盖题面、
// 参考答案、提示与模块描述。结果保持目录的自然顺序
func (s *StudyService) Search(courseID, levelID, query string) ([]model.SearchHit, error) {
	level, ok := catalog.Level(courseID, levelID)
	if !ok {
		return nil, util.ErrLevelNotFound
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.SearchHit{}, nil
	}
	hits := []model.SearchHit{}
	for _, mod := range level.Modules {
		modMatch := strings.Contains(strings.ToLower(mod.Desc), q)
		for i, question := range mod.Questions {
			if modMatch ||
				strings.Contains(strings.ToLower(question.Q), q) ||
				strings.Contains(strings.ToLower(question.A), q) ||
				strings.Contains(strings.ToLower(question.Tip), q) {
				hits = append(hits, model.SearchHit{
					Question:    question,
					Key:         model.QuestionKey(levelID, mod.ID, i),
					ModuleID:    mod.ID,
					ModuleTitle: mod.Title,
					Index:       i,
				})
			}
		}
	}
	return hits, nil
}

// Collection 返回某级别内被书签或收藏的题目，按目录自然顺序排列
func (s *StudyService) Collection(ctx context.Context, userID uint, courseID, levelID string, kind model.ProgressKind) ([]model.SearchHit, error) {
	if kind != model.ProgressBookmarked && kind != model.ProgressFavorited {
		return nil, util.ErrUnknownProgressSet
	}
	level, ok := catalog.Level(courseID, levelID)
	if !ok {
		return nil, util.ErrLevelNotFound
	}
	set, err := s.Progress.Set(ctx, userID, courseID, kind)
	if err != nil {
		return nil, err
	}
	hits := []model.SearchHit{}
	for _, mod := range level.Modules {
		for i, question := range mod.Questions {
			key := model.QuestionKey(levelID, mod.ID, i)
			if _, ok := set[key]; ok {
				hits = append(hits, model.SearchHit{
					Question:    question,
					Key:         key,
					ModuleID:    mod.ID,
					ModuleTitle: mod.Title,
					Index:       i,
				})
			}
		}
	}
	return hits, nil
}

// LevelProgress 统计级别完成度：已读集合里键前缀属于该级别的数量占
// 级别总题数的百分比。空级别恒为 0
func (s *StudyService) LevelProgress(ctx context.Context, userID uint, courseID, levelID string) (model.LevelProgress, error) {
	level, ok := catalog.Level(courseID, levelID)
	if !ok {
		return model.LevelProgress{}, util.ErrLevelNotFound
	}
	total := catalog.TotalQuestions(level)
	read, _ := s.Progress.Set(ctx, userID, courseID, model.ProgressRead)
	count := 0
	prefix := levelID + "-"
	for key := range read {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}
	percent := 0.0
	if total > 0 {
		percent = float64(count) * 100 / float64(total)
	}
	return model.LevelProgress{
		LevelID:        levelID,
		ReadCount:      count,
		TotalQuestions: total,
		Percent:        percent,
	}, nil
}

// ViewState 读取用户在某课程下保存的视图状态，缺失或损坏时给出默认态
func (s *StudyService) ViewState(ctx context.Context, userID uint, courseID string) model.ViewState {
	state := model.ViewState{CourseID: courseID, View: model.ViewModule}
	raw, err := s.Store.Get(ctx, keyViewState(userID, courseID))
	if err != nil {
		return state
	}
	var saved model.ViewState
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return state
	}
	saved.CourseID = courseID
	if saved.View == "" {
		saved.View = model.ViewModule
	}
	return saved
}

// SaveViewState 写回视图状态，写回前按状态机规则做一次规整
func (s *StudyService) SaveViewState(ctx context.Context, userID uint, state model.ViewState) error {
	if state.View == "" {
		state.View = model.ViewModule
	}
	if state.View == model.ViewSearch && strings.TrimSpace(state.Query) == "" {
		state.View = model.ViewModule
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, keyViewState(userID, state.CourseID), string(raw))
}

// Derive 根据视图状态计算当前可见的题目列表
func (s *StudyService) Derive(ctx context.Context, userID uint, state model.ViewState) ([]model.SearchHit, error) {
	switch state.View {
	case model.ViewSearch:
		return s.Search(state.CourseID, state.LevelID, state.Query)
	case model.ViewBookmarks:
		return s.Collection(ctx, userID, state.CourseID, state.LevelID, model.ProgressBookmarked)
	case model.ViewFavorites:
		return s.Collection(ctx, userID, state.CourseID, state.LevelID, model.ProgressFavorited)
	default:
		if state.ModuleID == "" {
			return []model.SearchHit{}, nil
		}
		return s.ModuleQuestions(state.CourseID, state.LevelID, state.ModuleID)
	}
}
