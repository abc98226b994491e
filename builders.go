package lazyaws

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/raywall/lazyaws-toolkit/dyndb"
	"github.com/raywall/lazyaws-toolkit/objstore"
	"github.com/raywall/lazyaws-toolkit/queue"
	"github.com/raywall/lazyaws-toolkit/registry"
)

func init() {
	RegisterBuiltins(registry.Default)
}

// RegisterBuiltins registra no registry os builders dos serviços que o
// toolkit conhece: clients do SDK para ssm, dynamodb, s3, sqs e
// secretsmanager, e os resources de alto nível dyndb, objstore e queue.
//
// Aplicações podem registrar serviços adicionais no mesmo registry via
// RegisterBuilder; o catálogo é aberto.
func RegisterBuiltins(r *registry.Registry) {
	r.RegisterBuilder(registry.KindClient, "ssm", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		cfg, err := applyOverrides(cfg, opts)
		if err != nil {
			return nil, err
		}
		return ssm.NewFromConfig(cfg), nil
	})

	r.RegisterBuilder(registry.KindClient, "dynamodb", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		cfg, err := applyOverrides(cfg, opts)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewFromConfig(cfg), nil
	})

	r.RegisterBuilder(registry.KindClient, "s3", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		return buildS3(cfg, opts)
	})

	r.RegisterBuilder(registry.KindClient, "sqs", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		cfg, err := applyOverrides(cfg, opts)
		if err != nil {
			return nil, err
		}
		return sqs.NewFromConfig(cfg), nil
	})

	r.RegisterBuilder(registry.KindClient, "secretsmanager", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		cfg, err := applyOverrides(cfg, opts)
		if err != nil {
			return nil, err
		}
		return secretsmanager.NewFromConfig(cfg), nil
	})

	r.RegisterBuilder(registry.KindResource, "dynamodb", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		cfg, err := applyOverrides(cfg, opts)
		if err != nil {
			return nil, err
		}
		return dyndb.NewResource(dynamodb.NewFromConfig(cfg)), nil
	})

	r.RegisterBuilder(registry.KindResource, "s3", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		client, err := buildS3(cfg, opts)
		if err != nil {
			return nil, err
		}
		return objstore.NewResource(client), nil
	})

	r.RegisterBuilder(registry.KindResource, "sqs", func(ctx context.Context, cfg aws.Config, opts registry.Options) (any, error) {
		cfg, err := applyOverrides(cfg, opts)
		if err != nil {
			return nil, err
		}
		return queue.NewResource(sqs.NewFromConfig(cfg)), nil
	})
}

func buildS3(cfg aws.Config, opts registry.Options) (*s3.Client, error) {
	cfg, err := applyOverrides(cfg, opts)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Endpoints locais (LocalStack, MinIO) não resolvem virtual-host.
		if opts.EndpointURL != "" {
			o.UsePathStyle = true
		}
	}), nil
}

// applyOverrides projeta as opções do descriptor sobre o aws.Config do
// scope: região, credenciais, endpoint e transporte TLS.
func applyOverrides(cfg aws.Config, opts registry.Options) (aws.Config, error) {
	if opts.Region != "" {
		cfg.Region = opts.Region
	}
	if cp := opts.CredentialsProvider(); cp != nil {
		cfg.Credentials = cp
	}
	if opts.EndpointURL != "" {
		url := opts.EndpointURL
		if opts.UseTLS != nil && !*opts.UseTLS {
			url = strings.Replace(url, "https://", "http://", 1)
		}
		cfg.BaseEndpoint = aws.String(url)
	}

	if needsCustomTransport(opts) {
		client, err := httpClient(opts)
		if err != nil {
			return aws.Config{}, err
		}
		cfg.HTTPClient = client
	}
	return cfg, nil
}

func needsCustomTransport(opts registry.Options) bool {
	if opts.CABundle != "" {
		return true
	}
	return opts.TLSVerify != nil && !*opts.TLSVerify
}

func httpClient(opts registry.Options) (*http.Client, error) {
	tlsCfg := &tls.Config{}

	if opts.TLSVerify != nil && !*opts.TLSVerify {
		tlsCfg.InsecureSkipVerify = true
	}

	if opts.CABundle != "" {
		pem, err := os.ReadFile(opts.CABundle)
		if err != nil {
			return nil, fmt.Errorf("lazyaws: falha ao ler CA bundle %q: %w", opts.CABundle, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("lazyaws: CA bundle %q não contém certificados PEM válidos", opts.CABundle)
		}
		tlsCfg.RootCAs = pool
	}

	return &http.Client{
		Transport: &http.Transport{TLSClientConfig: tlsCfg},
	}, nil
}
