package service

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"interview_hub_backend/internal/config"
	"interview_hub_backend/internal/model"
	"interview_hub_backend/pkg/logger"
	"interview_hub_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// 面向用户的固定提示语。网关对上层永远返回文本，不返回结构化错误
const (
	msgMissingKey     = "⚠️ API Key is missing. Please configure the API_KEY environment variable."
	msgUnknownPersona = "Unknown AI persona requested."
	msgGenerateFailed = "Error communicating with AI Mentor. Please try again."
	msgEmptyResponse  = "No response generated."
)

// generator 对生成后端的最小抽象，便于在测试里统计调用次数
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
	stream(ctx context.Context, contents []*genai.Content) (<-chan string, <-chan error)
}

// geminiGenerator 基于官方 SDK 的实现
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(ctx context.Context, apiKey, modelName string) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 Gemini 客户端失败: %w", err)
	}
	return &geminiGenerator{client: client, model: modelName}, nil
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (g *geminiGenerator) stream(ctx context.Context, contents []*genai.Content) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(chunks)
		defer close(errs)
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, nil) {
			if err != nil {
				errs <- err
				return
			}
			if text := resp.Text(); text != "" {
				select {
				case chunks <- text:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}
		}
	}()
	return chunks, errs
}

// MentorService AI 导师网关：按人设模板拼装提示词并转发给生成后端。
// 对调用方的契约是"永远有一段文本"：凭证缺失、人设未注册、网络失败、
// 空响应各对应一条固定提示语
type MentorService struct {
	apiKey string
	model  string
	gen    generator
}

func NewMentorService(cfg *config.Config) *MentorService {
	s := &MentorService{
		apiKey: cfg.AI.APIKey,
		model:  cfg.AI.Model,
	}
	if s.apiKey == "" {
		logger.Log.Warn("未配置 AI API Key，导师功能将返回降级提示")
		return s
	}
	gen, err := newGeminiGenerator(context.Background(), s.apiKey, s.model)
	if err != nil {
		logger.Log.Error("初始化 Gemini 客户端失败", zap.Error(err))
		s.apiKey = ""
		return s
	}
	s.gen = gen
	return s
}

// buildPrompt 组装单次请求的完整提示词：上下文块 + 人设任务块
func buildPrompt(instruction, question, canonical, userInput, prior string) string {
	if userInput == "" {
		userInput = "(User requested explanation/question)"
	}
	var b strings.Builder
	b.WriteString("--- CONTEXT ---\n")
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Canonical Answer (Hidden from user): %s\n", canonical)
	fmt.Fprintf(&b, "User Answer/Input: %s\n", userInput)
	if prior != "" {
		fmt.Fprintf(&b, "Previous Turn (AI): %s\n", prior)
	}
	b.WriteString("\n--- TASK ---\n")
	b.WriteString(instruction)
	b.WriteString("\n\nResponse Language: Russian (unless the input is clearly English).\nFormat: Markdown.")
	return b.String()
}

// Generate 执行一次人设反馈调用。prior 仅在连续面试人设下携带上一轮输出
func (s *MentorService) Generate(ctx context.Context, persona model.Persona, question, canonical, userInput, prior string) string {
	template, ok := personaPrompts[persona]
	if !ok {
		monitoring.MentorRequests.WithLabelValues(string(persona), "unknown_persona").Inc()
		return msgUnknownPersona
	}
	if s.apiKey == "" || s.gen == nil {
		monitoring.MentorRequests.WithLabelValues(string(persona), "missing_key").Inc()
		return msgMissingKey
	}
	prompt := buildPrompt(template(question), question, canonical, userInput, prior)
	text, err := s.gen.generate(ctx, prompt)
	if err != nil {
		logger.Log.Error("Gemini 调用失败", zap.String("persona", string(persona)), zap.Error(err))
		monitoring.MentorRequests.WithLabelValues(string(persona), "error").Inc()
		return msgGenerateFailed
	}
	if strings.TrimSpace(text) == "" {
		monitoring.MentorRequests.WithLabelValues(string(persona), "empty").Inc()
		return msgEmptyResponse
	}
	monitoring.MentorRequests.WithLabelValues(string(persona), "ok").Inc()
	return text
}

// chatHistoryLimit 多轮对话最多回传的历史轮数，避免提示词无界膨胀
const chatHistoryLimit = 20

// ChatStream 流式多轮对话。历史超限时只保留最近的轮次。
// 返回的两个通道由内部协程关闭
func (s *MentorService) ChatStream(ctx context.Context, history []model.ChatMessage, message string) (<-chan string, <-chan error) {
	if s.apiKey == "" || s.gen == nil {
		chunks := make(chan string, 1)
		errs := make(chan error)
		chunks <- msgMissingKey
		close(chunks)
		close(errs)
		monitoring.MentorRequests.WithLabelValues("chat", "missing_key").Inc()
		return chunks, errs
	}
	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == model.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))
	monitoring.MentorRequests.WithLabelValues("chat", "ok").Inc()
	return s.gen.stream(ctx, contents)
}
