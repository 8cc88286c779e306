package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix es el prefijo de las env vars que sobreescriben config.
// Ej: PETREG_HTTP_ADDR=:9090 -> http.addr
const EnvPrefix = "PETREG_"

// Config agrupa toda la configuración del servicio.
// Precedencia: defaults < archivo YAML < env vars.
type Config struct {
	App struct {
		Name string `koanf:"name"`
	} `koanf:"app"`

	HTTP struct {
		Addr            string        `koanf:"addr"`
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"http"`

	DB struct {
		// DSN vacío => repos in-memory (modo dev, igual que sin DB_DSN antes).
		DSN string `koanf:"dsn"`
	} `koanf:"db"`

	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`

	Auth struct {
		// Secreto HS256 para verificar tokens. Vacío => modo dev sin verifier.
		JWTSecret string `koanf:"jwt_secret"`
		Issuer    string `koanf:"issuer"`
	} `koanf:"auth"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":              "pet-registry",
		"http.addr":             ":8080",
		"http.read_timeout":     5 * time.Second,
		"http.write_timeout":    10 * time.Second,
		"http.shutdown_timeout": 10 * time.Second,
		"db.dsn":                "",
		"log.level":             "info",
		"log.format":            "text",
		"auth.jwt_secret":       "",
		"auth.issuer":           "",
	}
}

// Load arma la config final: defaults + archivo (opcional) + env.
// path vacío => no intenta leer archivo.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	if strings.TrimSpace(path) != "" {
		if err := k.Load(file.Provider(path), koanfyaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	// PETREG_HTTP_ADDR -> http.addr
	tf := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.Replace(s, "_", ".", 1)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", tf), nil); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv usa PETREG_CONFIG como ruta del archivo si está definida.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(EnvPrefix + "CONFIG"))
}
