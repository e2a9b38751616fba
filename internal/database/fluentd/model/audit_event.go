package model

// AuditEvent 敏感操作審計事件（登入、薪資產生、帳號開通等）
type AuditEvent struct {
	RequestID  string `json:"request_id,omitempty"`
	Action     string `json:"action"`
	ActorID    int    `json:"actor_id,omitempty"`
	ActorName  string `json:"actor_name,omitempty"`
	ActorRole  string `json:"actor_role,omitempty"`
	TargetType string `json:"target_type,omitempty"`
	TargetID   int    `json:"target_id,omitempty"`
	Outcome    string `json:"outcome"` // "success" / "failure"
	Detail     string `json:"detail,omitempty"`
	ClientIP   string `json:"client_ip,omitempty"`
	Version    string `json:"version,omitempty"`
	LoggedAt   string `json:"logged_at"`
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
