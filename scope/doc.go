// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package scope gerencia o "scope de sessão" corrente: a configuração de
// conexão AWS (credenciais, região, profile) junto com o cache de handles
// construídos sob essa configuração.
//
// Visão Geral:
// Um Scope constrói lazy um aws.Config (a "sessão" de baixo nível) e guarda
// os clients/resources criados a partir dele, garantindo que acessos
// repetidos retornem o mesmo handle (mesma identidade) enquanto o scope não
// for resetado. Scopes são empilháveis por goroutine: Push ativa um override
// temporário e a função de restauração devolvida desfaz a ativação em
// qualquer caminho de saída, inclusive panics quando usada com defer.
//
// Funcionalidades Principais:
// - Sessão Lazy: aws.Config construído no máximo uma vez por scope (até Reset).
// - Cache de Handles: GetOrCreate indexa handles pela identidade do descriptor.
// - Overrides Aninhados: Push/restore isolam configurações por goroutine.
// - ResetOnActivate: scopes que resetam ao virar topo da pilha (ideal para testes).
//
// Exemplo de Uso:
//
//	s := scope.New(scope.Options{Region: "us-west-2"})
//	restore := scope.Push(s)
//	defer restore()
//
//	// Qualquer resolução de handle dentro deste trecho usa o scope ativo.
//	cfg, err := scope.Current().Config(ctx)
//
// Concorrência:
// A pilha de scopes é por goroutine: duas goroutines concorrentes que fazem
// Push enxergam pilhas e caches totalmente independentes. O aws.Config em si
// segue as garantias do SDK; o scope apenas assegura que cada goroutine
// resolve para o scope apropriado.
package scope
