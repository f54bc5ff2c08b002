package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig `mapstructure:"app"`
}

// AppConfig holds process settings only; chart styling is fixed.
type AppConfig struct {
	FontPath string `mapstructure:"font_path"` // TrueType font for chart text
	LogDir   string `mapstructure:"log_dir"`
	Seed     int64  `mapstructure:"seed"` // random pie colors; 0 seeds from the clock
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("font", "", "TrueType font used for chart text (env: CHARTS_FONT_PATH)")
	fs.String("log-dir", "logs", "Directory for app.log (env: CHARTS_LOG_DIR)")
	fs.Int64("seed", 0, "Seed for random pie slice colors, 0 = time based (env: CHARTS_SEED)")
}

// Load reads configuration, later sources overriding earlier ones:
// 1. defaults
// 2. config.yaml
// 3. .env file
// 4. environment
// 5. flags that were set explicitly
func Load(flags *pflag.FlagSet) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	setupEnvAliases(v)

	if flags != nil {
		bindFlag(v, flags, "app.font_path", "font")
		bindFlag(v, flags, "app.log_dir", "log-dir")
		bindFlag(v, flags, "app.seed", "seed")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.font_path", "")
	v.SetDefault("app.log_dir", "logs")
	v.SetDefault("app.seed", 0)
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("app.font_path", "CHARTS_FONT_PATH")
	v.BindEnv("app.log_dir", "CHARTS_LOG_DIR")
	v.BindEnv("app.seed", "CHARTS_SEED")
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil {
		v.BindPFlag(key, f)
	}
}

func validateConfig(cfg *Config) error {
	if cfg.App.LogDir == "" {
		return fmt.Errorf("app.log_dir must not be empty")
	}
	if cfg.App.FontPath != "" {
		if _, err := os.Stat(cfg.App.FontPath); err != nil {
			return fmt.Errorf("app.font_path: %w", err)
		}
	}
	return nil
}
