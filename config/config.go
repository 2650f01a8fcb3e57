package config

import (
	"os"

	"github.com/3lvia/ice-problems/internal/runtime"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

type Config struct {
	Env       runtime.Env
	VaultAddr string
	NatsAddr  string
	ApiAddr   string
}

func New() (*Config, error) {
	_ = godotenv.Load(".env")

	return &Config{
		Env:       runtime.Env(get("ENVIRONMENT", string(runtime.Production))),
		VaultAddr: get("VAULT_ADDR", ""),
		NatsAddr:  get("NATS_ADDR", nats.DefaultURL),
		ApiAddr:   get("API_ADDR", ":8080"),
	}, nil
}

func get(name string, alt string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return alt
	}
	return v
}
