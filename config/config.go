// Package config carrega a configuração do binário todo-server.
//
// Ordem de precedência: defaults -> arquivo TOML (opcional) -> variáveis de
// ambiente. Não há flags; os binários são configurados pelo ambiente.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile é o arquivo procurado no diretório atual quando CONFIG_FILE
// não está setada. Ausência do default não é erro.
const DefaultFile = "todo-server.toml"

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	ListenAddr string `toml:"listen_addr"`

	// Backend seleciona a implementação do repositório: memory ou redis.
	Backend       string `toml:"backend"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisKey      string `toml:"redis_key"`

	// MaxTodos é o limite da política. 0 usa o padrão do domínio.
	MaxTodos int `toml:"max_todos"`

	RateEnabled bool    `toml:"rate_enabled"`
	RateRPS     float64 `toml:"rate_rps"`
	RateBurst   int     `toml:"rate_burst"`
}

// Load monta a configuração. file == "" procura DefaultFile (ausência ok);
// um caminho explícito que não existe é erro.
func Load(file string) (Config, error) {
	cfg := Config{
		ListenAddr: ":8080",
		Backend:    BackendMemory,
		RedisKey:   "todos",
		RateRPS:    10,
		RateBurst:  20,
	}

	explicit := file != ""
	if !explicit {
		file = DefaultFile
	}
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		if explicit || !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config file %s: %w", file, err)
		}
	}

	loadEnv(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnv(cfg *Config) {
	cfg.ListenAddr = getenvDefault("LISTEN_ADDR", cfg.ListenAddr)
	cfg.Backend = strings.ToLower(getenvDefault("BACKEND", cfg.Backend))
	cfg.RedisAddr = getenvDefault("REDIS_ADDR", cfg.RedisAddr)
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	cfg.RedisDB = getenvIntDefault("REDIS_DB", cfg.RedisDB)
	cfg.RedisKey = getenvDefault("REDIS_KEY", cfg.RedisKey)
	cfg.MaxTodos = getenvIntDefault("MAX_TODOS", cfg.MaxTodos)
	cfg.RateEnabled = getenvBoolDefault("RATE_ENABLED", cfg.RateEnabled)
	cfg.RateRPS = getenvFloatDefault("RATE_RPS", cfg.RateRPS)
	cfg.RateBurst = getenvIntDefault("RATE_BURST", cfg.RateBurst)
}

func validate(cfg Config) error {
	switch cfg.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, cfg.Backend)
	}
	if cfg.Backend == BackendRedis && strings.TrimSpace(cfg.RedisAddr) == "" {
		return errors.New("REDIS_ADDR is required when BACKEND=redis")
	}
	if cfg.MaxTodos < 0 {
		return errors.New("MAX_TODOS must be >= 0")
	}
	if cfg.RateEnabled && cfg.RateRPS <= 0 {
		return errors.New("RATE_RPS must be > 0 when RATE_ENABLED=true")
	}
	if cfg.RateEnabled && cfg.RateBurst <= 0 {
		return errors.New("RATE_BURST must be > 0 when RATE_ENABLED=true")
	}
	return nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvFloatDefault(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBoolDefault(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
