package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"solobill/internal/structures"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultHome())
		// running without a config file is fine, defaults apply
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	v.BindEnv("logger.level", "SOLOBILL_LOG_LEVEL")
	v.BindEnv("storage.backend", "SOLOBILL_STORAGE_BACKEND")
	v.BindEnv("storage.dir", "SOLOBILL_STORAGE_DIR")
	v.BindEnv("storage.compress", "SOLOBILL_STORAGE_COMPRESS")
	v.BindEnv("cache.enabled", "SOLOBILL_CACHE_ENABLED")
	v.BindEnv("cache.size", "SOLOBILL_CACHE_SIZE")
	v.BindEnv("metrics.enabled", "SOLOBILL_METRICS_ENABLED")

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	if err := ensureDirs(&conf); err != nil {
		return nil, err
	}

	conf.AppName = "solobill"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

func setDefaults(v *viper.Viper) {
	home := defaultHome()
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", filepath.Join(home, "data"))
	v.SetDefault("storage.compress", false)
	v.SetDefault("storage.mode", 0644)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", filepath.Join(home, "logs"))
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 8)
	v.SetDefault("metrics.enabled", true)
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".solobill")
}

func ensureDirs(conf *structures.Config) error {
	for _, dir := range []string{conf.Storage.Dir, conf.Logger.Dir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
