package core

// ─── Store Collections ─────────────────────────────────────────────────────────

// Collection 對應資料目錄下的單一 JSON 檔
type Collection string

const (
	CollectionUsers       Collection = "users"
	CollectionEmployees   Collection = "employees"
	CollectionDepartments Collection = "departments"
	CollectionAttendance  Collection = "attendance"
	CollectionLeaves      Collection = "leaves"
	CollectionPayrolls    Collection = "payrolls"
	CollectionJobs        Collection = "jobs"
	CollectionApplicants  Collection = "applicants"
	CollectionSettings    Collection = "settings"
)

// Collections 全部集合（health check 用）
var Collections = []Collection{
	CollectionUsers,
	CollectionEmployees,
	CollectionDepartments,
	CollectionAttendance,
	CollectionLeaves,
	CollectionPayrolls,
	CollectionJobs,
	CollectionApplicants,
	CollectionSettings,
}

// ─── Redis Keys ────────────────────────────────────────────────────────────────

type RedisKey string

const (
	RedisKeyLoginAttempt RedisKey = "login_attempt" // 登入失敗限流
	RedisKeyServerName   RedisKey = "hrms"          // key 前綴
)

// ─── Fluentd Tags ──────────────────────────────────────────────────────────────

type FluentdSubTag string

const (
	FluentdAudit FluentdSubTag = "audit_log"
)
