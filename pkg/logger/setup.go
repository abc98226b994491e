package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/lazyaws-toolkit/envloader"
	"github.com/rs/zerolog"
)

// Config controla o logger do toolkit. Por ser uma biblioteca, o default
// é silencioso (apenas warn+); aplicações podem abaixar o nível via env.
type Config struct {
	Enabled bool   `env:"LAZYAWS_LOG_ENABLED" envDefault:"true"`
	Level   string `env:"LAZYAWS_LOG_LEVEL" envDefault:"warn"`
	Format  string `env:"LAZYAWS_LOG_FORMAT" envDefault:"json"`
}

// FromEnv carrega a configuração de log das variáveis de ambiente.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envloader.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Configure cria um logger baseando-se na configuração dada.
func Configure(cfg Config) zerolog.Logger {
	// Define o nível de log (default: warn)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	// Define o output (JSON para produção, Console "bonito" para local se solicitado)
	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
