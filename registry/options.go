package registry

import (
	"maps"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Options é a configuração individual de um descriptor. Qualquer campo
// vazio cai no valor herdado do scope ativo quando o handle é construído.
type Options struct {
	// Region sobrepõe a região do scope apenas para este recurso.
	Region string `yaml:"region"`

	// APIVersion é aceito por compatibilidade; o SDK v2 não versiona a API
	// por client, então o valor só chega a builders customizados via Extra.
	APIVersion string `yaml:"api_version"`

	// UseTLS e TLSVerify controlam o transporte seguro. TLSVerify=false
	// desliga a verificação do certificado (útil contra endpoints locais).
	UseTLS    *bool `yaml:"use_tls"`
	TLSVerify *bool `yaml:"tls_verify"`

	// CABundle aponta para um bundle PEM alternativo.
	CABundle string `yaml:"ca_bundle" validate:"omitempty,filepath"`

	// EndpointURL fixa o endpoint do handle (ex: LocalStack). Com endpoint
	// fixo o handle é cacheado normalmente; sem ele, todo acesso reconstrói.
	EndpointURL string `yaml:"endpoint_url" validate:"omitempty,url"`

	// Credenciais próprias deste recurso, sobrepondo as do scope.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`

	// Extra é entregue verbatim ao builder do handle (compatibilidade
	// futura com opções que o toolkit não conhece).
	Extra map[string]any `yaml:"extra"`
}

// clone devolve uma cópia independente (o mapa Extra é copiado).
func (o Options) clone() Options {
	o.Extra = maps.Clone(o.Extra)
	return o
}

// Validate verifica a integridade estrutural das opções (URLs, paths).
// Roda na construção do handle, não na referência ao descriptor.
func (o Options) Validate() error {
	return validate.Struct(o)
}

// CredentialsProvider retorna o provider estático das credenciais override,
// ou nil quando o descriptor herda as credenciais do scope.
func (o Options) CredentialsProvider() aws.CredentialsProvider {
	if o.AccessKeyID == "" {
		return nil
	}
	return credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, o.SessionToken)
}
