package metrics

import "sync"

var (
	mu      sync.RWMutex
	current Provider = Noop{}
)

// SetProvider troca o provider global usado pelas funções de pacote.
// Passar nil restaura o Noop.
func SetProvider(p Provider) {
	mu.Lock()
	defer mu.Unlock()
	if p == nil {
		p = Noop{}
	}
	current = p
}

// Current retorna o provider global ativo.
func Current() Provider {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Count registra um contador no provider global.
func Count(name string, value float64, tags []string) error {
	return Current().Count(name, value, tags)
}

// Gauge registra um gauge no provider global.
func Gauge(name string, value float64, tags []string) error {
	return Current().Gauge(name, value, tags)
}

// Histogram registra um histograma no provider global.
func Histogram(name string, value float64, tags []string) error {
	return Current().Histogram(name, value, tags)
}
