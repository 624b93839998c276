package config

import "time"

const (
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

type FAQConfig struct {
	Source      string
	DataFile    string
	Title       string
	Description string
	CacheTTL    time.Duration
	MetricsPort int
}

func LoadFAQConfig() FAQConfig {
	source := GetEnv("FAQ_SOURCE", SourceFile)
	if source != SourceMySQL {
		source = SourceFile
	}

	return FAQConfig{
		Source:      source,
		DataFile:    GetEnv("FAQ_DATA_FILE", ""),
		Title:       GetEnv("FAQ_TITLE", "Frequently Asked Questions"),
		Description: GetEnv("FAQ_DESCRIPTION", "Find answers to common questions about our platform, pricing, and subscriptions."),
		CacheTTL:    GetEnvDuration("FAQ_CACHE_TTL", 5*time.Minute),
		MetricsPort: GetEnvInt("METRICS_PORT", 0),
	}
}
