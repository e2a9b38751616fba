package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricStoreWriteDuration  MetricName = "store_write_duration_seconds"
	MetricStoreLockTimeouts   MetricName = "store_lock_timeouts_total"
	MetricLoginFailTotal      MetricName = "login_fail_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint   MetricLabelName = "endpoint"
	MetricLabelStatus     MetricLabelName = "status"
	MetricLabelCollection MetricLabelName = "collection"
	MetricLabelReason     MetricLabelName = "reason"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceAuthMeta struct {
	Username   string `trace:"auth.username,omitempty"`
	UserID     int    `trace:"auth.user_id,omitempty"`
	Role       string `trace:"auth.role,omitempty"`
	EmployeeID int    `trace:"auth.employee_id,omitempty"`
	Status     string `trace:"auth.status"`
}

type TraceStoreMeta struct {
	Collection string `trace:"store.collection"`
	Op         string `trace:"store.op"`
	Records    int    `trace:"store.records,omitempty"`
	AssignedID int    `trace:"store.assigned_id,omitempty"`
	WaitedMs   int64  `trace:"store.lock_wait_ms,omitempty"`
}

// 供 Redis 登入限流 Consume / Reset 使用
type TraceLoginLimitMeta struct {
	Username  string `trace:"rl.username"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "exceeded" / "reset"
}

type TraceLeaveMeta struct {
	LeaveID    int    `trace:"leave.id,omitempty"`
	EmployeeID int    `trace:"leave.employee_id,omitempty"`
	LeaveType  string `trace:"leave.type,omitempty"`
	Days       int    `trace:"leave.business_days,omitempty"`
	Used       int    `trace:"leave.quota_used,omitempty"`
	Quota      int    `trace:"leave.quota_total,omitempty"`
	Status     string `trace:"leave.status,omitempty"`
}

type TracePayrollMeta struct {
	PayrollID  int    `trace:"payroll.id,omitempty"`
	EmployeeID int    `trace:"payroll.employee_id,omitempty"`
	Period     string `trace:"payroll.period,omitempty"`
	Generated  int    `trace:"payroll.generated_count,omitempty"`
}

type TraceAttendanceMeta struct {
	AttendanceID int    `trace:"attendance.id,omitempty"`
	EmployeeID   int    `trace:"attendance.employee_id,omitempty"`
	Date         string `trace:"attendance.date,omitempty"`
	Op           string `trace:"attendance.op,omitempty"`
}
