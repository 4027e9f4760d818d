package config

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	switch cfg.Version {
	case 1:
	case 0:
		collector.add("version", "is required")
	default:
		collector.add("version", "unsupported version %d", cfg.Version)
	}
	if cfg.Dataset.ExpectedVersion == "" {
		collector.add("dataset.expected_version", "is required")
	}
	collector.nonNegative("compress.question_length", cfg.Compress.QuestionLength)
	collector.nonNegative("sample.size", cfg.Sample.Size)

	return collector.result()
}
