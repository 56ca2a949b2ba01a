package config

// File represents the structure of the uniseq.yaml configuration file.
// Every field is optional; zero values fall back to defaults.
type File struct {
	BaseURL   string `yaml:"base_url"`
	CacheDir  string `yaml:"cache_dir"`
	UserAgent string `yaml:"user_agent"`
	TimeoutMS int    `yaml:"timeout_ms"`
	Attempts  int    `yaml:"attempts"`
	JSONLogs  bool   `yaml:"json_logs"`
}
