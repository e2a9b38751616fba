package config

type Log struct {
	// 最小輸出層級 debug / info / warn / error
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
}
