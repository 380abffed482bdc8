// Package catalog 静态内容目录：课程 → 等级 → 模块 → 题目。
// 数据在编译期写死，运行期只读；所有查询都是按键查找，
// 未命中不作为错误处理，调用方视为"未选择任何内容"。
package catalog

import "interview_hub_backend/internal/model"

var courses = []model.Course{
	k8sCourse,
	pythonCourse,
}

// Courses 返回全部课程，保持编排顺序
func Courses() []model.Course {
	return courses
}

// Course 按 ID 查找课程
func Course(id string) (model.Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// Level 按课程+等级查找
func Level(courseID, levelID string) (model.Level, bool) {
	c, ok := Course(courseID)
	if !ok {
		return model.Level{}, false
	}
	for _, l := range c.Levels {
		if l.ID == levelID {
			return l, true
		}
	}
	return model.Level{}, false
}

// Module 按课程+等级+模块查找
func Module(courseID, levelID, moduleID string) (model.Module, bool) {
	l, ok := Level(courseID, levelID)
	if !ok {
		return model.Module{}, false
	}
	for _, m := range l.Modules {
		if m.ID == moduleID {
			return m, true
		}
	}
	return model.Module{}, false
}

// Question 按课程+等级+模块+下标查找单题
func Question(courseID, levelID, moduleID string, index int) (model.Question, bool) {
	m, ok := Module(courseID, levelID, moduleID)
	if !ok || index < 0 || index >= len(m.Questions) {
		return model.Question{}, false
	}
	return m.Questions[index], true
}

// TotalQuestions 等级内全部模块的题目总数
func TotalQuestions(l model.Level) int {
	total := 0
	for _, m := range l.Modules {
		total += len(m.Questions)
	}
	return total
}
