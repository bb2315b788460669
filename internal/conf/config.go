// Package conf loads the benchmark configuration from environment variables
// and an optional .env file, and provides the process logger.
package conf

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Env holds the benchmark run configuration. The output directory and the
// requested member count are passed explicitly into each phase; nothing else
// is held as ambient state.
type Env struct {
	Logger *zap.SugaredLogger
	Env    string

	// OutDir receives the four serialized artifacts and the run manifest.
	OutDir string
	// Members is the requested member count.
	Members int
	// BatchSize is the measurement batch size.
	BatchSize int
	// TriplesMin and TriplesMax bound the per-member triple count.
	TriplesMin int
	TriplesMax int
	// Seed seeds the generator; 0 selects a time-based seed.
	Seed int64
	// FrameRows is the binary stream frame size in rows.
	FrameRows int
	// ForceRegen regenerates artifacts even when all of them exist.
	ForceRegen bool
}

// NewEnv bootstraps the configuration from the environment and an optional
// .env file in the working directory.
func NewEnv() (*Env, error) {
	return loadEnv(".")
}

func loadEnv(path string) (*Env, error) {
	profile, found := os.LookupEnv("PROFILE")
	if !found {
		profile = "local"
	}
	logger := GetLogger(profile, zapcore.InfoLevel)

	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("BENCH_OUT_DIR", "out")
	viper.SetDefault("BENCH_MEMBERS", 10000)
	viper.SetDefault("BENCH_BATCH_SIZE", 100)
	viper.SetDefault("BENCH_TRIPLES_MIN", 6)
	viper.SetDefault("BENCH_TRIPLES_MAX", 30)
	viper.SetDefault("BENCH_SEED", 42)
	viper.SetDefault("BENCH_FRAME_ROWS", 256)
	viper.SetDefault("BENCH_FORCE_REGEN", "false")
	viper.AutomaticEnv()

	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(path)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else {
		logger.Infof("Reading config file %s", viper.ConfigFileUsed())
	}

	logger = GetLogger(profile, getLogLevel(viper.GetString("LOG_LEVEL")))

	env := &Env{
		Logger:     logger,
		Env:        profile,
		OutDir:     viper.GetString("BENCH_OUT_DIR"),
		Members:    viper.GetInt("BENCH_MEMBERS"),
		BatchSize:  viper.GetInt("BENCH_BATCH_SIZE"),
		TriplesMin: viper.GetInt("BENCH_TRIPLES_MIN"),
		TriplesMax: viper.GetInt("BENCH_TRIPLES_MAX"),
		Seed:       viper.GetInt64("BENCH_SEED"),
		FrameRows:  viper.GetInt("BENCH_FRAME_ROWS"),
		ForceRegen: viper.GetBool("BENCH_FORCE_REGEN"),
	}
	if err := env.validate(); err != nil {
		return nil, err
	}
	return env, nil
}

func (e *Env) validate() error {
	if e.Members < 0 {
		return fmt.Errorf("conf: BENCH_MEMBERS must not be negative, got %d", e.Members)
	}
	if e.BatchSize <= 0 {
		return fmt.Errorf("conf: BENCH_BATCH_SIZE must be positive, got %d", e.BatchSize)
	}
	if e.TriplesMax < e.TriplesMin {
		return fmt.Errorf("conf: triple range inverted: [%d, %d]", e.TriplesMin, e.TriplesMax)
	}
	if e.OutDir == "" {
		return fmt.Errorf("conf: BENCH_OUT_DIR must not be empty")
	}
	return nil
}
