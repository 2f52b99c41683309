package config

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vietanh2810/icecream-api/internal/form"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Form     *FormConfig     `mapstructure:"form"`
	Flash    *FlashConfig    `mapstructure:"flash"`
	Backup   *BackupConfig   `mapstructure:"backup"`

	v     *viper.Viper
	rules atomic.Pointer[form.Rules]
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// DSN returns the key/value connection string for the postgres driver.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

type FormConfig struct {
	AllowNegativeLitres bool `mapstructure:"allow_negative_litres"`
}

func (c *FormConfig) Rules() form.Rules {
	return form.Rules{AllowNegativeLitres: c.AllowNegativeLitres}
}

type FlashConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	MaxAge     int    `mapstructure:"max_age"`
}

type BackupConfig struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
	Keep      int    `mapstructure:"keep"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:8080"})

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "icecream")
	v.SetDefault("postgres.ssl_mode", "disable")

	v.SetDefault("form.allow_negative_litres", true)

	v.SetDefault("flash.cookie_name", "icecream_flash")
	v.SetDefault("flash.max_age", 60)

	v.SetDefault("backup.bucket", "")
	v.SetDefault("backup.endpoint", "")
	v.SetDefault("backup.region", "")
	v.SetDefault("backup.access_key", "")
	v.SetDefault("backup.secret_key", "")
	v.SetDefault("backup.prefix", "icecream-backup-")
	v.SetDefault("backup.keep", 4)
}

// Load reads the yml file at path. Every key can be overridden from the
// environment, e.g. api.port by API_PORT.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{v: v}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}
	conf.storeRules(conf.Form.Rules())

	return conf, nil
}

// FormRules returns the form rules currently in force.
func (c *AppConfig) FormRules() form.Rules {
	if rules := c.rules.Load(); rules != nil {
		return *rules
	}

	return form.DefaultRules()
}

func (c *AppConfig) storeRules(rules form.Rules) {
	c.rules.Store(&rules)
}

// WatchForm reloads the form block whenever the config file changes on disk.
// Other blocks are read once at startup.
func (c *AppConfig) WatchForm() {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		var fc FormConfig
		if err := c.v.UnmarshalKey("form", &fc); err != nil {
			zap.L().Error("failed to reload form rules", zap.String("file", e.Name), zap.Error(err))
			return
		}

		c.storeRules(fc.Rules())
		zap.L().Info("form rules reloaded",
			zap.String("file", e.Name),
			zap.Bool("allow_negative_litres", fc.AllowNegativeLitres))
	})
	c.v.WatchConfig()
}
