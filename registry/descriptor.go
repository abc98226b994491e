package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/raywall/lazyaws-toolkit/pkg/logger"
	"github.com/raywall/lazyaws-toolkit/scope"
)

// Descriptor descreve um recurso nomeado de um kind e sabe materializar o
// handle correspondente no scope ativo. Existe exatamente uma instância por
// (kind, nome normalizado) durante a vida do processo.
type Descriptor struct {
	reg  *Registry
	kind Kind
	name string

	mu   sync.RWMutex
	opts Options
}

// Kind retorna o kind do descriptor.
func (d *Descriptor) Kind() Kind { return d.kind }

// Name retorna o nome normalizado.
func (d *Descriptor) Name() string { return d.name }

// Options retorna uma cópia independente da configuração corrente.
func (d *Descriptor) Options() Options {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opts.clone()
}

// SetOptions substitui a configuração por inteiro (cópia defensiva) e
// remove o handle deste descriptor do scope ativo, para que o próximo Get
// reconstrua com as novas opções.
func (d *Descriptor) SetOptions(opts Options) {
	d.mu.Lock()
	d.opts = opts.clone()
	d.mu.Unlock()

	scope.Current().ResetHandle(d)
	lg := logger.Global()
	lg.Debug().
		Str("kind", string(d.kind)).
		Str("name", d.name).
		Msg("registry: opções do descriptor substituídas")
}

// Reset descarta o handle deste descriptor no scope ativo; ele será
// recriado lazy no próximo Get.
func (d *Descriptor) Reset() {
	scope.Current().ResetHandle(d)
}

// Get resolve o scope ativo e retorna o handle deste descriptor, cacheado
// ou recém-construído.
//
// Sem endpoint override explícito o handle é reconstruído em todo acesso:
// se o endpoint default do ambiente mudou, queremos um objeto novo. Com
// endpoint explícito o destino está fixo e o cache vale normalmente.
func (d *Descriptor) Get(ctx context.Context) (any, error) {
	opts := d.Options()

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("registry: invalid options for %s %q: %w", d.kind, d.name, err)
	}

	b, ok := d.reg.builder(d.kind, d.name)
	if !ok {
		// Erro adiado de propósito: o catálogo é aberto e o nome só é
		// julgado quando o handle é realmente pedido.
		return nil, fmt.Errorf("registry: no %s builder registered for %q", d.kind, d.name)
	}

	s := scope.Current()
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}

	force := opts.EndpointURL == ""
	return s.GetOrCreate(d, func() (any, error) {
		return b(ctx, cfg, opts)
	}, force)
}
