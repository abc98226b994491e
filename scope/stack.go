package scope

import (
	"sync"

	"github.com/raywall/lazyaws-toolkit/pkg/logger"
)

var (
	stacksMu sync.Mutex
	stacks   = make(map[uint64][]*Scope)

	defaultOnce  sync.Once
	defaultScope *Scope
)

// Default retorna o scope de processo, criado lazy na primeira chamada.
// É o scope efetivo de qualquer goroutine que nunca fez Push.
func Default() *Scope {
	defaultOnce.Do(func() {
		defaultScope = New(Options{})
	})
	return defaultScope
}

// Current retorna o scope ativo da goroutine chamadora: o topo da pilha, ou
// o scope default do processo se nada foi empilhado.
func Current() *Scope {
	gid := goroutineID()

	stacksMu.Lock()
	st := stacks[gid]
	stacksMu.Unlock()

	if n := len(st); n > 0 {
		return st[n-1]
	}
	return Default()
}

// Push ativa s como scope corrente da goroutine chamadora e retorna a função
// de restauração. A restauração deve ser deferida no mesmo ponto do Push,
// garantindo o pop em qualquer caminho de saída (return, erro ou panic);
// chamadas repetidas são inofensivas.
//
// A pilha não é herdada por goroutines filhas: cada goroutine que precisar
// do override deve fazer seu próprio Push.
func Push(s *Scope) (restore func()) {
	gid := goroutineID()

	stacksMu.Lock()
	stacks[gid] = append(stacks[gid], s)
	depth := len(stacks[gid])
	stacksMu.Unlock()

	lg := logger.Global()
	lg.Debug().Str("scope", s.id).Int("depth", depth).Msg("scope: push")
	s.activated()

	var once sync.Once
	return func() {
		once.Do(func() {
			stacksMu.Lock()
			st := stacks[gid]
			if n := len(st); n > 0 {
				st = st[:n-1]
				if len(st) == 0 {
					delete(stacks, gid)
				} else {
					stacks[gid] = st
				}
			}
			var top *Scope
			if n := len(st); n > 0 {
				top = st[n-1]
			}
			stacksMu.Unlock()

			lg := logger.Global()
			lg.Debug().Str("scope", s.id).Msg("scope: pop")
			if top != nil {
				top.activated()
			}
		})
	}
}

// With executa fn com s ativo e restaura o scope anterior ao final, mesmo
// quando fn panica.
func With(s *Scope, fn func() error) error {
	restore := Push(s)
	defer restore()
	return fn()
}
