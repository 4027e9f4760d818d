package config

// Config is the squadtrim configuration file schema.
type Config struct {
	Version  int            `yaml:"version"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Compress CompressConfig `yaml:"compress"`
	Sample   SampleConfig   `yaml:"sample"`
	Output   OutputConfig   `yaml:"output"`
}

// DatasetConfig controls dataset validation.
type DatasetConfig struct {
	ExpectedVersion string `yaml:"expected_version"`
}

// CompressConfig controls question compression.
type CompressConfig struct {
	QuestionLength  *int `yaml:"question_length"`
	KeepApostrophes bool `yaml:"keep_apostrophes"`
	KeepHyphens     bool `yaml:"keep_hyphens"`
	KeepSlashes     bool `yaml:"keep_slashes"`
}

// SampleConfig controls correctness-flip sampling.
type SampleConfig struct {
	Size *int   `yaml:"size"`
	Seed uint64 `yaml:"seed"`
}

// OutputConfig controls report outputs.
type OutputConfig struct {
	HTMLReport bool `yaml:"html_report"`
}

// Defaults applied by Normalize.
const (
	DefaultExpectedVersion = "1.1"
	DefaultQuestionLength  = 3
	DefaultSampleSize      = 10
)

// Default returns a normalized config with every default applied.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// QuestionLength returns the configured target question length.
func (c Config) QuestionLength() int {
	if c.Compress.QuestionLength == nil {
		return DefaultQuestionLength
	}
	return *c.Compress.QuestionLength
}

// SampleSize returns the configured sample size.
func (c Config) SampleSize() int {
	if c.Sample.Size == nil {
		return DefaultSampleSize
	}
	return *c.Sample.Size
}
