package scope

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/google/uuid"
	"github.com/raywall/lazyaws-toolkit/pkg/logger"
	"github.com/raywall/lazyaws-toolkit/pkg/metrics"
)

// Scope é uma unidade ativável de configuração: um aws.Config lazy e o cache
// dos handles construídos sob ele. Todos os métodos são seguros para uso
// concorrente.
type Scope struct {
	mu    sync.Mutex
	id    string
	opts  Options
	cfg   *aws.Config
	cache map[any]any
}

// New cria um Scope com as opções dadas (cópia defensiva).
func New(opts Options) *Scope {
	return &Scope{
		id:    uuid.NewString(),
		opts:  opts.clone(),
		cache: make(map[any]any),
	}
}

// ID identifica o scope em logs e métricas.
func (s *Scope) ID() string { return s.id }

// Options retorna uma cópia independente das opções correntes.
func (s *Scope) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.clone()
}

// SetOptions substitui as opções por inteiro (cópia defensiva) e reseta o
// scope: nenhum handle sobrevive à configuração que o produziu.
func (s *Scope) SetOptions(opts Options) {
	s.mu.Lock()
	s.opts = opts.clone()
	s.resetLocked()
	s.mu.Unlock()

	lg := logger.Global()
	lg.Debug().Str("scope", s.id).Msg("scope: opções substituídas, cache resetado")
}

// Config retorna o aws.Config do scope, construindo-o na primeira chamada.
// A resolução de credenciais continua lazy dentro do próprio SDK; nenhuma
// negociação de rede acontece aqui.
func (s *Scope) Config(ctx context.Context) (aws.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg != nil {
		return *s.cfg, nil
	}

	if s.opts.BaseConfig != nil {
		cfg := s.opts.BaseConfig.Copy()
		s.cfg = &cfg
		return cfg, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, s.opts.loadOptions()...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("scope: falha ao construir aws.Config: %w", err)
	}
	s.cfg = &cfg

	lg := logger.Global()
	lg.Debug().Str("scope", s.id).Str("region", cfg.Region).Msg("scope: aws.Config construído")
	return cfg, nil
}

// GetOrCreate retorna o handle cacheado para key, ou invoca ctor e guarda o
// resultado. Com force, o ctor roda mesmo havendo entrada no cache e o novo
// handle substitui o anterior. Um ctor que falha não popula o cache.
//
// O ctor executa com o lock do scope tomado e não pode chamar de volta
// métodos deste Scope.
func (s *Scope) GetOrCreate(key any, ctor func() (any, error), force bool) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		if h, ok := s.cache[key]; ok {
			_ = metrics.Count("handle.cache_hit", 1, []string{"scope:" + s.id})
			return h, nil
		}
	}

	h, err := ctor()
	if err != nil {
		return nil, err
	}
	s.cache[key] = h

	_ = metrics.Count("handle.build", 1, []string{"scope:" + s.id})
	return h, nil
}

// Reset descarta o aws.Config e o cache inteiro de handles; tudo será
// reconstruído lazy no próximo acesso.
func (s *Scope) Reset() {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()

	lg := logger.Global()
	lg.Debug().Str("scope", s.id).Msg("scope: reset")
	_ = metrics.Count("scope.reset", 1, []string{"scope:" + s.id})
}

// ResetHandle remove apenas a entrada de cache de key, preservando a sessão
// e os demais handles.
func (s *Scope) ResetHandle(key any) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

func (s *Scope) resetLocked() {
	s.cfg = nil
	s.cache = make(map[any]any)
}

// activated aplica o comportamento ResetOnActivate quando o scope vira o
// topo da pilha.
func (s *Scope) activated() {
	s.mu.Lock()
	reset := s.opts.ResetOnActivate
	s.mu.Unlock()

	if reset {
		s.Reset()
	}
}
