package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLevelNotFound      = errors.New("level not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrUnknownProgressSet = errors.New("unknown progress set")
	ErrAnswerRequired     = errors.New("请先写下你的回答，再让面试官评审")
)
