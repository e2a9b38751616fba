package config

type Store struct {
	// JSON 資料目錄，預設 ./data
	Dir string `mapstructure:"DIR" json:"dir" yaml:"dir"`
	// 等待集合鎖的時間上限（毫秒），預設 5000
	LockTimeoutMs int64 `mapstructure:"LOCK_TIMEOUT_MS" json:"lock_timeout_ms" yaml:"lock_timeout_ms"`
}
