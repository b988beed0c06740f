package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModeDebug   = "debug"
	ModeRelease = "release"

	SinkMemory = "memory"
	SinkRedis  = "redis"
	SinkMySQL  = "mysql"
)

type Config struct {
	Server     ServerConfig
	Data       DataConfig
	Assessment AssessmentConfig
	Progress   ProgressConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	Tracing    TracingConfig   `mapstructure:"tracing"`
	CORS       CORSConfig      `mapstructure:"cors"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`

	// 配置文件实际路径（为空表示仅使用默认值和环境变量）
	File string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DataConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

type AssessmentConfig struct {
	PassingScore int `mapstructure:"passing_score"`
}

type ProgressConfig struct {
	Sink string `mapstructure:"sink"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", ModeRelease)
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.watch", false)
	v.SetDefault("assessment.passing_score", 70)
	v.SetDefault("progress.sink", SinkMemory)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("rate_limit.max_requests", 1000)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
}

// LoadConfig 读取 path 目录下的 config.yaml（可选），并叠加 .env 与环境变量
func LoadConfig(path string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("COURSE_BUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Server（兼容原 Node 服务使用的 PORT / FRONTEND_URL）
	v.BindEnv("server.port", "COURSE_BUILDER_SERVER_PORT", "PORT")
	v.BindEnv("server.mode", "COURSE_BUILDER_SERVER_MODE", "SERVER_MODE")
	v.BindEnv("cors.allowed_origins", "COURSE_BUILDER_CORS_ALLOWED_ORIGINS", "FRONTEND_URL")

	// Data
	v.BindEnv("data.dir", "COURSE_BUILDER_DATA_DIR", "DATA_DIR")

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 环境变量中的逗号分隔列表
	cfg.CORS.AllowedOrigins = splitList(strings.Join(cfg.CORS.AllowedOrigins, ","))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Progress.Sink {
	case SinkMemory, SinkRedis, SinkMySQL:
	default:
		return fmt.Errorf("unknown progress sink %q (want memory, redis or mysql)", c.Progress.Sink)
	}

	if c.Assessment.PassingScore < 0 || c.Assessment.PassingScore > 100 {
		return fmt.Errorf("assessment passing score %d out of range [0,100]", c.Assessment.PassingScore)
	}

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d requests per %d minutes", c.RateLimit.MaxRequests, c.RateLimit.WindowMinutes)
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
