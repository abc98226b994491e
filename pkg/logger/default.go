package logger

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	global = Configure(Config{Enabled: true, Level: "warn"})
)

// Global retorna o logger compartilhado do toolkit.
func Global() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetGlobal substitui o logger compartilhado. Útil para aplicações que já
// possuem um zerolog.Logger próprio e querem direcionar os eventos do toolkit.
func SetGlobal(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Init reconfigura o logger global a partir das variáveis de ambiente.
func Init() error {
	cfg, err := FromEnv()
	if err != nil {
		return err
	}
	SetGlobal(Configure(cfg))
	return nil
}
