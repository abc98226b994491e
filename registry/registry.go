package registry

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Kind separa as duas famílias de handles: clients de baixo nível e
// resources de alto nível. Um mesmo nome pode existir nos dois kinds, com
// descriptors (e handles) independentes.
type Kind string

const (
	KindClient   Kind = "client"
	KindResource Kind = "resource"
)

// Builder constrói um handle pronto para uso a partir do aws.Config do
// scope ativo e das opções do descriptor.
type Builder func(ctx context.Context, cfg aws.Config, opts Options) (any, error)

type key struct {
	kind Kind
	name string
}

// Registry é a tabela process-wide (kind, nome normalizado) → descriptor,
// mais o catálogo de builders. Segura para uso concorrente; leituras
// dominam, inserções são raras.
type Registry struct {
	descriptors sync.Map // key -> *Descriptor
	builders    sync.Map // key -> Builder
}

// Default é o registry compartilhado do processo. Os builders embutidos do
// toolkit são registrados nele pelo pacote raiz.
var Default = NewRegistry()

// NewRegistry cria um registry vazio e independente, sem builders.
func NewRegistry() *Registry {
	return &Registry{}
}

// Normalize canonicaliza um nome de recurso: underscores viram hífens, tudo
// em caixa baixa, e um único hífen final é removido (permite nomes que
// colidiriam com identificadores reservados).
func Normalize(raw string) string {
	n := strings.ToLower(strings.ReplaceAll(raw, "_", "-"))
	return strings.TrimSuffix(n, "-")
}

// GetOrRegister retorna o descriptor de (kind, rawName), criando-o com
// opções default na primeira referência. Qualquer grafia que normalize para
// o mesmo nome retorna o mesmo descriptor, por referência.
func (r *Registry) GetOrRegister(kind Kind, rawName string) *Descriptor {
	k := key{kind: kind, name: Normalize(rawName)}

	if v, ok := r.descriptors.Load(k); ok {
		return v.(*Descriptor)
	}

	d := &Descriptor{reg: r, kind: kind, name: k.name}
	actual, _ := r.descriptors.LoadOrStore(k, d)
	return actual.(*Descriptor)
}

// RegisterBuilder associa um Builder ao par (kind, nome). Substitui
// qualquer builder anterior do mesmo par; é assim que aplicações estendem o
// catálogo além dos serviços embutidos.
func (r *Registry) RegisterBuilder(kind Kind, rawName string, b Builder) {
	r.builders.Store(key{kind: kind, name: Normalize(rawName)}, b)
}

// RegisterClientBuilder é a conveniência de RegisterBuilder para KindClient.
func (r *Registry) RegisterClientBuilder(rawName string, b Builder) {
	r.RegisterBuilder(KindClient, rawName, b)
}

// RegisterResourceBuilder é a conveniência de RegisterBuilder para KindResource.
func (r *Registry) RegisterResourceBuilder(rawName string, b Builder) {
	r.RegisterBuilder(KindResource, rawName, b)
}

func (r *Registry) builder(kind Kind, name string) (Builder, bool) {
	v, ok := r.builders.Load(key{kind: kind, name: name})
	if !ok {
		return nil, false
	}
	return v.(Builder), true
}
