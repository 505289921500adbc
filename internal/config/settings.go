package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const envPrefix = "APP"

// Settings is the full ingester configuration.
type Settings struct {
	Application ApplicationSettings `mapstructure:"application"`
	Database    DatabaseSettings    `mapstructure:"database"`
	Retry       RetrySettings       `mapstructure:"retry"`
}

// ApplicationSettings drive the chain workers.
type ApplicationSettings struct {
	Host              string        `mapstructure:"host"`
	NumberOfChains    uint64        `mapstructure:"number_of_chains"`
	ChainForkHeight   uint64        `mapstructure:"chain_fork_height"`
	Limit             uint64        `mapstructure:"limit"`
	MinHeight         uint64        `mapstructure:"min_height"`
	MaxHeight         uint64        `mapstructure:"max_height"`
	Rounds            uint64        `mapstructure:"rounds"`
	FallbackWorkers   uint64        `mapstructure:"fallback_workers"`
	IdleDelay         time.Duration `mapstructure:"idle_delay"`
	FailureDelay      time.Duration `mapstructure:"failure_delay"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	PayloadBatchSize  int           `mapstructure:"payload_batch_size"`
	PayloadWorkers    int           `mapstructure:"payload_workers"`
	PayloadCacheSize  int           `mapstructure:"payload_cache_size"`
	FollowHeads       bool          `mapstructure:"follow_heads"`
	FrontierInterval  time.Duration `mapstructure:"frontier_interval"`
}

// DatabaseSettings select the checkpoint store.
type DatabaseSettings struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RetrySettings shape the exponential backoff of API calls. Zero
// MaxElapsedTime and MaxRetries mean unbounded.
type RetrySettings struct {
	InitialInterval     time.Duration `mapstructure:"initial_interval"`
	MaxInterval         time.Duration `mapstructure:"max_interval"`
	MaxElapsedTime      time.Duration `mapstructure:"max_elapsed_time"`
	Multiplier          float64       `mapstructure:"multiplier"`
	RandomizationFactor float64       `mapstructure:"randomization_factor"`
	MaxRetries          uint64        `mapstructure:"max_retries"`
}

const (
	DriverClickHouse = "clickhouse"
	DriverPostgres   = "postgres"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("application.fallback_workers", 10)
	v.SetDefault("application.idle_delay", 10*time.Second)
	v.SetDefault("application.failure_delay", 5*time.Second)
	v.SetDefault("application.request_timeout", 30*time.Second)
	v.SetDefault("application.payload_batch_size", 50)
	v.SetDefault("application.payload_workers", 4)
	v.SetDefault("application.payload_cache_size", 1024)
	v.SetDefault("database.driver", DriverClickHouse)
	v.SetDefault("retry.initial_interval", 500*time.Millisecond)
	v.SetDefault("retry.max_interval", time.Minute)
	v.SetDefault("retry.max_elapsed_time", 15*time.Minute)
	v.SetDefault("retry.multiplier", 1.5)
	v.SetDefault("retry.randomization_factor", 0.5)
}

// Load reads base.yaml and <env>.yaml from dir, then applies APP_* environment
// overrides such as APP_APPLICATION_HOST.
func Load(dir string, env Environment) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetConfigFile(filepath.Join(dir, "base.yaml"))
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read base settings: %w", err)
	}

	v.SetConfigFile(filepath.Join(dir, string(env)+".yaml"))
	if err := v.MergeInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read %s settings: %w", env, err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the ingester cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if s.Application.Host == "" {
		errs = append(errs, errors.New("application.host is required"))
	}
	if s.Application.NumberOfChains == 0 {
		errs = append(errs, errors.New("application.number_of_chains must be positive"))
	}
	if s.Application.Limit == 0 {
		errs = append(errs, errors.New("application.limit must be positive"))
	}
	if s.Application.FallbackWorkers == 0 {
		errs = append(errs, errors.New("application.fallback_workers must be positive"))
	}
	switch s.Database.Driver {
	case DriverClickHouse, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", s.Database.Driver))
	}
	if err := multierr.Combine(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
