package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis     `yaml:"redis"`
	Bot        Bot       `yaml:"bot"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	// SessionTTL - how long an untouched game or player stays in storage. Zero keeps them forever.
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

type Bot struct {
	// ThinkingTime - pause before the computer commits its move over the socket.
	ThinkingTime time.Duration `yaml:"thinking-time" env:"BOT_THINKING_TIME" env-default:"500ms"`
}

type Telemetry struct {
	// Endpoint - OTLP gRPC collector address. Telemetry is disabled when empty.
	Endpoint    string `yaml:"endpoint" env:"OTEL_ENDPOINT" env-default:""`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe-engine"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Telemetry) Enabled() bool {
	return that.Endpoint != ""
}
