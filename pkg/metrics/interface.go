package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por Prometheus ou Logging sem alterar a lógica de negócio.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// MetricType define os tipos suportados.
type MetricType string

const (
	TypeCount     MetricType = "count"
	TypeGauge     MetricType = "gauge"
	TypeHistogram MetricType = "histogram"
)

// Noop descarta todas as métricas. É o provider padrão até que
// SetProvider seja chamado com um provider real.
type Noop struct{}

func (Noop) Count(name string, value float64, tags []string) error     { return nil }
func (Noop) Gauge(name string, value float64, tags []string) error     { return nil }
func (Noop) Histogram(name string, value float64, tags []string) error { return nil }
