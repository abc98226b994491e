package observability

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/lazyaws-toolkit/envloader"
	"github.com/raywall/lazyaws-toolkit/pkg/metrics"
)

// Config controla o envio de métricas do toolkit para o Datadog.
type Config struct {
	Enabled   bool   `env:"LAZYAWS_METRICS_ENABLED" envDefault:"false"`
	Addr      string `env:"DD_AGENT_HOST" envDefault:"localhost:8125"`
	Namespace string `env:"LAZYAWS_METRICS_NAMESPACE" envDefault:"lazyaws."`
}

// FromEnv carrega a configuração de métricas das variáveis de ambiente.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envloader.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DatadogProvider adapta a lib oficial do Datadog para nossa interface.
type DatadogProvider struct {
	client *statsd.Client
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}

// SetupMetrics inicializa o provedor correto a partir da configuração.
func SetupMetrics(cfg Config) (metrics.Provider, error) {
	if !cfg.Enabled {
		return metrics.Noop{}, nil
	}

	opts := []statsd.Option{
		statsd.WithNamespace(cfg.Namespace),
	}

	client, err := statsd.New(cfg.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no datadog statsd: %w", err)
	}

	return &DatadogProvider{client: client}, nil
}

// Init carrega a configuração do ambiente e registra o provider resultante
// como provider global de métricas do toolkit.
func Init() error {
	cfg, err := FromEnv()
	if err != nil {
		return err
	}

	provider, err := SetupMetrics(cfg)
	if err != nil {
		return err
	}

	metrics.SetProvider(provider)
	return nil
}
