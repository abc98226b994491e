package lazyaws

import (
	"context"
	"fmt"
	"strings"

	"github.com/raywall/lazyaws-toolkit/registry"
)

// Facade resolve nomes de recurso em handles vivos para um kind fixo.
// Todas as fachadas de um mesmo kind compartilham o registry e, portanto,
// os mesmos descriptors.
type Facade struct {
	kind registry.Kind
	reg  *registry.Registry
}

// Clients e Resources são as fachadas process-wide sobre registry.Default.
var (
	Clients   = &Facade{kind: registry.KindClient, reg: registry.Default}
	Resources = &Facade{kind: registry.KindResource, reg: registry.Default}
)

// NewFacade cria uma fachada sobre um registry próprio, para aplicações
// que não querem compartilhar o catálogo default.
func NewFacade(kind registry.Kind, reg *registry.Registry) *Facade {
	return &Facade{kind: kind, reg: reg}
}

// Kind retorna o kind desta fachada.
func (f *Facade) Kind() registry.Kind { return f.kind }

func (f *Facade) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("lazyaws: invalid %s name %q", f.kind, name)
	}
	if strings.HasPrefix(name, "_") {
		return fmt.Errorf("lazyaws: invalid %s name %q (nomes com prefixo _ são reservados)", f.kind, name)
	}
	return nil
}

// Resolve retorna o handle vivo do recurso nomeado no scope ativo,
// construindo-o se necessário. Qualquer grafia que normalize para o mesmo
// nome resolve pelo mesmo descriptor.
func (f *Facade) Resolve(ctx context.Context, name string) (any, error) {
	if err := f.checkName(name); err != nil {
		return nil, err
	}
	return f.reg.GetOrRegister(f.kind, name).Get(ctx)
}

// Load é o equivalente string-driven de Resolve, para nomes que não
// existem como acessor tipado (ex: serviços recém-lançados).
func (f *Facade) Load(ctx context.Context, name string) (any, error) {
	return f.Resolve(ctx, name)
}

// Descriptor retorna o descriptor do recurso (não o handle), permitindo
// ajustar a configuração individual antes do primeiro uso. Nomes nunca
// vistos são registrados na hora.
func (f *Facade) Descriptor(name string) (*registry.Descriptor, error) {
	if err := f.checkName(name); err != nil {
		return nil, err
	}
	return f.reg.GetOrRegister(f.kind, name), nil
}
