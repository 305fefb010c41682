package configs

// Config holds all configuration for both CLI tools.
type Config struct {
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Generator  GeneratorConfig  `mapstructure:"generator" validate:"required"`
	Aggregator AggregatorConfig `mapstructure:"aggregator" validate:"required"`
	Sink       SinkConfig       `mapstructure:"sink" validate:"required"`
	Ops        OpsConfig        `mapstructure:"ops"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// GeneratorConfig holds workload generation configuration.
type GeneratorConfig struct {
	Seed     int64 `mapstructure:"seed" validate:"min=0"`
	Width    int   `mapstructure:"width" validate:"required,min=1,max=256"` // write fan-out workers
	Compress bool  `mapstructure:"compress"`                                // gzip object payloads
}

// AggregatorConfig holds aggregation run configuration.
type AggregatorConfig struct {
	Width int `mapstructure:"width" validate:"required,min=1,max=256"` // fetch fan-out workers
}

// SinkConfig holds object store client configuration.
type SinkConfig struct {
	PutTimeout int `mapstructure:"put_timeout" validate:"required,min=1"`       // seconds per put attempt
	PutRetries int `mapstructure:"put_retries" validate:"required,min=1,max=10"` // attempts per object
}

// OpsConfig holds the optional operational HTTP listener configuration.
// When Addr is empty no listener is started.
type OpsConfig struct {
	Addr string `mapstructure:"addr"`
}

// DefaultConfig returns the built-in configuration used when no config file
// is given. The generation width of 20 matches the historical fan-out of the
// workload generator.
func DefaultConfig() *Config {
	return &Config{
		Log:        LogConfig{Level: "info"},
		Generator:  GeneratorConfig{Seed: 42, Width: 20},
		Aggregator: AggregatorConfig{Width: 20},
		Sink:       SinkConfig{PutTimeout: 5, PutRetries: 3},
	}
}
