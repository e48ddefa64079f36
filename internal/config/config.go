package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"console"` // console 或 json
	} `envPrefix:"LOG_"`
	Generator struct {
		Seed            uint32  `env:"SEED" envDefault:"42"`
		Size            int     `env:"SIZE" envDefault:"80"`
		ArrivedCount    int     `env:"ARRIVED_COUNT" envDefault:"72"`
		NotArrivedCount int     `env:"NOT_ARRIVED_COUNT" envDefault:"8"`
		ReferenceLon    float64 `env:"REFERENCE_LON" envDefault:"113.264"`
		ReferenceLat    float64 `env:"REFERENCE_LAT" envDefault:"23.129"`
	} `envPrefix:"GENERATOR_"`
	Fetch struct {
		Latency int `env:"LATENCY" envDefault:"300"` // 毫秒
	} `envPrefix:"FETCH_"`
	Redis struct {
		Enabled          bool   `env:"ENABLED" envDefault:"false"`
		Host             string `env:"HOST" envDefault:"localhost"`
		Port             int    `env:"PORT" envDefault:"6379"`
		Password         string `env:"PASSWORD"`
		DB               int    `env:"DB" envDefault:"0"`
		ConnectTimeout   int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"5"`
		SnapshotTTL      int    `env:"SNAPSHOT_TTL" envDefault:"0"` // 秒，0 表示不过期
	} `envPrefix:"REDIS_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
