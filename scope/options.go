package scope

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/raywall/lazyaws-toolkit/envloader"
	"gopkg.in/yaml.v3"
)

// Options agrupa a configuração de conexão de um Scope. Campos vazios caem
// nos defaults do SDK (env vars, shared config, IAM role), resolvidos lazy
// na primeira construção do aws.Config.
type Options struct {
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" yaml:"access_key_id"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" yaml:"secret_access_key"`
	SessionToken    string `env:"AWS_SESSION_TOKEN" yaml:"session_token"`
	Region          string `env:"AWS_REGION" yaml:"region"`
	Profile         string `env:"AWS_PROFILE" yaml:"profile"`

	// BaseConfig, quando definido, é usado como sessão subjacente no lugar
	// de um config.LoadDefaultConfig (sessão pré-construída pelo chamador).
	BaseConfig *aws.Config `env:"-" yaml:"-"`

	// ResetOnActivate faz o scope ser resetado toda vez que vira o topo da
	// pilha, garantindo estado limpo por ativação (um scope novo por teste).
	ResetOnActivate bool `env:"-" yaml:"reset_on_activate"`

	// Extra é repassado verbatim ao LoadDefaultConfig, permitindo usar
	// opções do SDK que o toolkit não conhece.
	Extra []func(*awsconfig.LoadOptions) error `env:"-" yaml:"-"`
}

// clone devolve uma cópia independente (o slice Extra é copiado).
func (o Options) clone() Options {
	if o.Extra != nil {
		o.Extra = append([]func(*awsconfig.LoadOptions) error(nil), o.Extra...)
	}
	return o
}

// loadOptions converte os campos preenchidos em opções do SDK.
func (o Options) loadOptions() []func(*awsconfig.LoadOptions) error {
	var fns []func(*awsconfig.LoadOptions) error
	if o.Region != "" {
		fns = append(fns, awsconfig.WithRegion(o.Region))
	}
	if o.Profile != "" {
		fns = append(fns, awsconfig.WithSharedConfigProfile(o.Profile))
	}
	if o.AccessKeyID != "" {
		fns = append(fns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, o.SessionToken),
		))
	}
	return append(fns, o.Extra...)
}

// FromEnv monta Options a partir das variáveis de ambiente AWS_*.
func FromEnv() (Options, error) {
	var o Options
	if err := envloader.Load(&o); err != nil {
		return Options{}, err
	}
	return o, nil
}

// FromYAML monta Options a partir de um documento YAML (profile de scope).
func FromYAML(data []byte) (Options, error) {
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("scope: profile YAML malformado: %w", err)
	}
	return o, nil
}

// FromYAMLFile é a conveniência de FromYAML para um arquivo local.
func FromYAMLFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("scope: falha ao ler profile (%s): %w", path, err)
	}
	return FromYAML(data)
}
