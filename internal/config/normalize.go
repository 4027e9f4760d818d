package config

import "strings"

// Normalize trims values and fills unset fields with defaults.
func Normalize(cfg *Config) {
	cfg.Dataset.ExpectedVersion = strings.TrimSpace(cfg.Dataset.ExpectedVersion)
	if cfg.Dataset.ExpectedVersion == "" {
		cfg.Dataset.ExpectedVersion = DefaultExpectedVersion
	}
	if cfg.Compress.QuestionLength == nil {
		length := DefaultQuestionLength
		cfg.Compress.QuestionLength = &length
	}
	if cfg.Sample.Size == nil {
		size := DefaultSampleSize
		cfg.Sample.Size = &size
	}
}
