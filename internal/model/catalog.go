package model

import "fmt"

// Question 题目：问题文本、HTML 格式参考答案、可选面试提示。
// 内容编译期写死，运行期只读；题目以其在模块内的下标作为身份标识
// swagger:model Question
type Question struct {
	Q   string `json:"q"`
	A   string `json:"a"`
	Tip string `json:"tip,omitempty"`
}

// Module 主题模块，包含有序题目列表
// swagger:model Module
type Module struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Desc      string     `json:"desc"`
	Questions []Question `json:"questions"`
}

// Level 难度等级（junior/middle/senior），携带展示元数据与有序模块列表
// swagger:model Level
type Level struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	SubTitle    string   `json:"subTitle"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Modules     []Module `json:"modules"`
}

// Course 课程，顶层内容单元
// swagger:model Course
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Levels      []Level `json:"levels"`
}

// QuestionKey 组合题目标识：levelID-moduleID-index。
// 只要等级/模块 ID 与题目顺序不变，该键在整个课程目录内唯一，
// 是静态内容与用户进度集合之间的关联键
func QuestionKey(levelID, moduleID string, index int) string {
	return fmt.Sprintf("%s-%s-%d", levelID, moduleID, index)
}

// SearchHit 搜索/聚合视图中的题目，带来源模块信息用于展示
// swagger:model SearchHit
type SearchHit struct {
	Question
	Key         string `json:"key"`
	ModuleID    string `json:"moduleId"`
	ModuleTitle string `json:"moduleTitle"`
	Index       int    `json:"index"`
}
