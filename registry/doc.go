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
// Package registry mantém a tabela process-wide de descriptors de recursos
// AWS: um descriptor por (kind, nome normalizado), criado lazy na primeira
// referência e vivo até o fim do processo.
//
// Visão Geral:
// Um Descriptor descreve um recurso nomeado ("ssm", "dynamodb", ...) de um
// kind (client ou resource) junto com sua configuração individual (endpoint
// override, região, credenciais próprias). O Descriptor sabe construir o
// handle através de um Builder registrado para o par (kind, nome); nomes sem
// builder só falham quando o handle é de fato pedido, mantendo o catálogo
// aberto.
//
// Identidade:
// Nomes são normalizados (underscores viram hífens, caixa baixa, um hífen
// final removido) e dois nomes que normalizam igual compartilham o mesmo
// descriptor, por referência. A tabela é um sync.Map: leitura dominante,
// inserção rara.
//
// Política de Staleness:
// Descriptors sem endpoint override explícito tratam o handle como
// potencialmente stale em todo acesso e o reconstroem, para que mudanças no
// endpoint default do ambiente sejam sempre observadas. Com endpoint
// explícito o destino está fixo e o cache funciona normalmente.
package registry
