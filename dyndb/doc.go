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
// Package dyndb é o handle de alto nível ("resource") do DynamoDB: uma
// camada orientada a objetos sobre o client do AWS SDK v2.
//
// Visão Geral:
// O Resource expõe tabelas como objetos (`res.Table("users")`), com CRUD
// que usa tipos Go nativos e um builder fluente para Query/Scan, abstraindo
// AttributeValue e as Expression Builders do SDK.
//
// Exemplo:
//
//	table := res.Table("users")
//
//	_ = table.Put(ctx, User{ID: "u1", Email: "a@b.com"})
//
//	var u User
//	err := table.Get(ctx, dyndb.Key{"id": "u1"}, &u)
//	if errors.Is(err, dyndb.ErrNotFound) { /* ... */ }
//
//	var active []User
//	next, err := table.Query().
//		KeyEqual("id", "u1").
//		FilterEqual("status", "ACTIVE").
//		Limit(50).
//		Exec(ctx, &active)
//
// A paginação converte o LastEvaluatedKey em tokens Base64 opacos,
// reaplicáveis via StartToken.
//
// Para testes existe o MockClient, com campos de função por operação.
package dyndb
