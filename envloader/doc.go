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
// Package envloader carrega variáveis de ambiente diretamente para os campos
// de uma struct Go, via tags `env` e `envDefault`.
//
// Visão Geral:
// É o mecanismo de configuração ambiente do toolkit: os pacotes logger,
// observability e scope declaram suas structs de config com tags `env` e
// chamam Load na inicialização. Usa reflection para mapear cada variável para
// o campo tipado correspondente.
//
// Funcionalidades Principais:
// - Mapeamento por Tag: Usa a tag `env:"VAR_NAME"` para encontrar a variável.
// - Valores Padrão: Usa a tag `envDefault:"value"` se a variável não estiver definida.
// - Suporte a Aninhamento: Processa structs aninhadas e ponteiros para structs.
// - Tipos Estendidos: Além dos básicos (string, bool, int, uint, float),
//   suporta time.Duration ("30s", "1500ms") e slices de string separados por vírgula.
// - Exclusão Explícita: Campos com a tag `env:"-"` são ignorados — necessário
//   para campos não-serializáveis como funções e configs pré-construídos.
// - Tratamento de Erros Tipados: InvalidConfigError, FieldError e UnsupportedTypeError.
//
// Exemplo de Uso:
//
//	type Config struct {
//	    Enabled bool          `env:"LAZYAWS_METRICS_ENABLED" envDefault:"false"`
//	    Addr    string        `env:"LAZYAWS_METRICS_ADDR" envDefault:"127.0.0.1:8125"`
//	    Flush   time.Duration `env:"LAZYAWS_METRICS_FLUSH" envDefault:"10s"`
//	}
//
//	var cfg Config
//	if err := envloader.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load exige um ponteiro para struct; qualquer outro destino retorna
// InvalidConfigError.
package envloader
