package model

// Persona AI 导师人设。封闭枚举：每个值对应一个纯函数式的指令模板，
// 未注册的值直接返回错误提示语，不发起网络调用
type Persona string

const (
	PersonaInterviewerStrict     Persona = "interviewer_strict"
	PersonaInterviewerFriendly   Persona = "interviewer_friendly"
	PersonaInterviewerContinuous Persona = "interviewer_continuous"
	PersonaTeacherELI5           Persona = "teacher_eli5"
	PersonaArchitectDeep         Persona = "architect_deep"
	PersonaDevilAdvocate         Persona = "devil_advocate"
	PersonaAnalystCompare        Persona = "analyst_compare"
	PersonaTroubleshooterDebug   Persona = "troubleshooter_debug"
	PersonaSecurityAuditor       Persona = "security_auditor"
	PersonaExplainCode           Persona = "explain_code"
	PersonaStartInterview        Persona = "start_interview"
	PersonaHintGiver             Persona = "hint_giver"
)

// RequiresAnswer interviewer 系列人设要求先写答案再评审（start_interview 除外，
// 它由 AI 先提问）。空输入在进入网关前就被拦截
func (p Persona) RequiresAnswer() bool {
	switch p {
	case PersonaInterviewerStrict, PersonaInterviewerFriendly, PersonaInterviewerContinuous:
		return true
	}
	return false
}

// ChatMessage 导师聊天的一轮对话
// swagger:model ChatMessage
type ChatMessage struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// MentorQuota 当前限流窗口的剩余额度。被限流时 RetryAfterMs 给出
// 最早一次调用滑出窗口所需的毫秒数
type MentorQuota struct {
	Allowed      bool  `json:"allowed"`
	Remaining    int   `json:"remaining"`
	RetryAfterMs int64 `json:"retryAfterMs,omitempty"`
}
