package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Env holds the runtime configuration for the service. Values come from
// environment variables (prefix SANTOTOUR_) or an optional config file.
type Env struct {
	AppAddr   string
	GinMode   string
	DSN       string
	JWTSecret string

	LogLevel  string
	LogFormat string

	CORSOrigins []string

	MigrateOnStart bool
}

// Load reads configuration via viper. Environment variables win over the
// optional santo-tour.yaml in the working directory.
func Load() (Env, error) {
	v := viper.New()

	v.SetDefault("app_addr", ":8080")
	v.SetDefault("gin_mode", "")
	v.SetDefault("dsn", "root:@tcp(127.0.0.1:3306)/santo_tour?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s")
	v.SetDefault("jwt_secret", "troque-esta-chave")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cors_origins", "http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("migrate_on_start", true)

	v.SetEnvPrefix("SANTOTOUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("santo-tour")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Env{}, err
		}
	}

	env := Env{
		AppAddr:        strings.TrimSpace(v.GetString("app_addr")),
		GinMode:        strings.TrimSpace(v.GetString("gin_mode")),
		DSN:            strings.TrimSpace(v.GetString("dsn")),
		JWTSecret:      v.GetString("jwt_secret"),
		LogLevel:       strings.TrimSpace(v.GetString("log_level")),
		LogFormat:      strings.TrimSpace(v.GetString("log_format")),
		MigrateOnStart: v.GetBool("migrate_on_start"),
	}

	for _, o := range strings.Split(v.GetString("cors_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}

	return env, nil
}
