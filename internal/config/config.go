package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr  string `envconfig:"ADDR" default:":8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	MySQLDSN string `envconfig:"MYSQL_DSN" default:"root:root@tcp(127.0.0.1:3306)/founder_circle?charset=utf8mb4&parseTime=True"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"127.0.0.1:9092"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"founder-circle-events"`

	JWTAccessSecret  string `envconfig:"JWT_ACCESS_SECRET" default:""`
	JWTRefreshSecret string `envconfig:"JWT_REFRESH_SECRET" default:""`

	SMTPHost     string `envconfig:"SMTP_HOST" default:""`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"NoReply <no-reply@example.com>"`

	// 发布清理：读路径之外的兜底扫描间隔
	LaunchSweepInterval time.Duration `envconfig:"LAUNCH_SWEEP_INTERVAL" default:"10m"`
	OutboxInterval      time.Duration `envconfig:"OUTBOX_INTERVAL" default:"1s"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
