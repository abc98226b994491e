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

/*
Package lazyaws é a fachada do toolkit: acesso lazy, thread-safe e
cacheado a clients e resources da AWS, com configuração por escopo.

# Visão Geral

Em vez de construir e passar clients manualmente, o código pede o handle
pelo nome no momento do uso:

	svc, err := lazyaws.SSM(ctx)
	if err != nil {
		return err
	}
	out, err := svc.GetParameter(ctx, &ssm.GetParameterInput{...})

O aws.Config subjacente é construído uma única vez por escopo, na
primeira necessidade, e os handles são cacheados por descriptor dentro
do escopo ativo.

# Escopos

O pacote scope mantém uma pilha de escopos por goroutine. Um push torna
um novo conjunto de configurações (região, credenciais, profile) o
contexto ambiente; o restore devolve o anterior:

	restore := scope.Push(scope.New(scope.Options{Region: "sa-east-1"}))
	defer restore()

	// daqui em diante, todo handle resolve contra sa-east-1
	svc, _ := lazyaws.SSM(ctx)

Handles construídos dentro do escopo pertencem a ele: ao restaurar, os
handles do escopo anterior voltam intactos.

# Clients e Resources

Duas fachadas convivem, com caches independentes:

  - lazyaws.Clients — clients de baixo nível do SDK (ssm, s3, sqs,
    dynamodb, secretsmanager)
  - lazyaws.Resources — wrappers de alto nível (dyndb, objstore, queue)

O catálogo é aberto: RegisterBuilder aceita serviços que o toolkit não
conhece, e nomes desconhecidos só falham quando o handle é pedido.
*/
package lazyaws
