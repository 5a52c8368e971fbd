package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone - таймзона процесса, в которой считаются календарные дни.
// Устанавливается в NewConfig из APP_TIMEZONE.
var TimeZone *time.Location = time.UTC

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"schedule_viewer:schedule_viewer"`
		BasicClients       []ConfigBasicClient
	}

	Roster struct {
		SeedFile string `env:"ROSTER_SEED_FILE"`
	}

	// Окно рабочего дня и шаг сетки. Значения по умолчанию:
	// 08:00-18:00, 30 минут для дневного вида, 60 минут для недельного.
	Calendar struct {
		DayStartHour    int `env:"CALENDAR_DAY_START_HOUR" envDefault:"8"`
		DayEndHour      int `env:"CALENDAR_DAY_END_HOUR" envDefault:"18"`
		DayStepMinutes  int `env:"CALENDAR_DAY_STEP_MINUTES" envDefault:"30"`
		WeekStepMinutes int `env:"CALENDAR_WEEK_STEP_MINUTES" envDefault:"60"`
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"clinic"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"schedule-viewer.cache"`
	}

	Cache struct {
		Enabled bool `env:"CACHE_ENABLED"`
		Size    int  `env:"CACHE_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.App.Timezone, err)
	}
	TimeZone = loc

	if cfg.Calendar.DayStartHour < 0 || cfg.Calendar.DayEndHour > 24 ||
		cfg.Calendar.DayStartHour >= cfg.Calendar.DayEndHour {
		return nil, fmt.Errorf("invalid calendar window: %d-%d", cfg.Calendar.DayStartHour, cfg.Calendar.DayEndHour)
	}
	if cfg.Calendar.DayStepMinutes <= 0 || cfg.Calendar.WeekStepMinutes <= 0 {
		return nil, fmt.Errorf("invalid calendar step")
	}

	// Разбор клиентов basic-авторизации
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Если RabbitMQ не включен, то кэш инвалидировать некому
	// и смысла в нем нет для статичного реестра
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
