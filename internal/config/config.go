package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the small set of user-tunable knobs, read from
// ~/.gitbuddy/config.yaml and GITBUDDY_* env vars. Everything has a
// default; a missing config file is the normal case.
type Config struct {
	PetName       string
	ScanTimeout   time.Duration
	ChallengeSeed string
}

// Load reads configuration via viper. File parse errors fall back to
// defaults: a bad config file should not kill the pet.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.gitbuddy")

	v.SetEnvPrefix("GITBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("pet.name", "Byte")
	v.SetDefault("scan.timeout", 5)
	v.SetDefault("challenge.seed", "daily")

	_ = v.ReadInConfig()

	timeout := v.GetInt("scan.timeout")
	if timeout < 1 {
		timeout = 5
	}

	return &Config{
		PetName:       v.GetString("pet.name"),
		ScanTimeout:   time.Duration(timeout) * time.Second,
		ChallengeSeed: v.GetString("challenge.seed"),
	}
}
