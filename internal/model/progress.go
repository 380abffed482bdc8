package model

// ProgressKind 进度集合类型。三个集合互相独立，均为组合题目键的字符串集合
type ProgressKind string

const (
	ProgressRead       ProgressKind = "read"
	ProgressBookmarked ProgressKind = "bookmarks"
	ProgressFavorited  ProgressKind = "favorites"
)

// ValidProgressKind 校验集合名是否为三个已知集合之一
func ValidProgressKind(k ProgressKind) bool {
	switch k {
	case ProgressRead, ProgressBookmarked, ProgressFavorited:
		return true
	}
	return false
}

// ProgressSets 用户在某课程下的全部进度集合
// swagger:model ProgressSets
type ProgressSets struct {
	Read       []string `json:"read"`
	Bookmarked []string `json:"bookmarked"`
	Favorited  []string `json:"favorited"`
}

// LevelProgress 某等级的阅读进度
// swagger:model LevelProgress
type LevelProgress struct {
	LevelID        string  `json:"levelId"`
	ReadCount      int     `json:"readCount"`
	TotalQuestions int     `json:"totalQuestions"`
	Percent        float64 `json:"percent"`
}

// ViewMode 当前可见题目列表的推导方式
type ViewMode string

const (
	ViewModule    ViewMode = "module"
	ViewSearch    ViewMode = "search"
	ViewBookmarks ViewMode = "bookmarks"
	ViewFavorites ViewMode = "favorites"
)

// ViewState 用户当前的导航选择。选择等级会重置模块与搜索词；
// 显式选择模块会清空搜索词（选择意图优先于过期的过滤条件）
// swagger:model ViewState
type ViewState struct {
	CourseID string   `json:"courseId"`
	LevelID  string   `json:"levelId"`
	ModuleID string   `json:"moduleId,omitempty"`
	View     ViewMode `json:"view"`
	Query    string   `json:"query,omitempty"`
}

// SelectLevel 切换等级：模块与搜索词一并重置
func (v *ViewState) SelectLevel(levelID string) {
	v.LevelID = levelID
	v.ModuleID = ""
	v.Query = ""
	v.View = ViewModule
}

// SelectModule 显式选择模块：清空搜索词，回到模块视图
func (v *ViewState) SelectModule(moduleID string) {
	v.ModuleID = moduleID
	v.Query = ""
	v.View = ViewModule
}

// SetQuery 设置搜索词：非空进入搜索视图，清空回到模块视图
func (v *ViewState) SetQuery(q string) {
	v.Query = q
	if q != "" {
		v.View = ViewSearch
	} else if v.View == ViewSearch {
		v.View = ViewModule
	}
}

// SelectCollection 切换到书签/收藏聚合视图
func (v *ViewState) SelectCollection(mode ViewMode) {
	if mode != ViewBookmarks && mode != ViewFavorites {
		return
	}
	v.View = mode
	v.ModuleID = ""
	v.Query = ""
}
