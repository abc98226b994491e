package lazyaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/raywall/lazyaws-toolkit/dyndb"
	"github.com/raywall/lazyaws-toolkit/objstore"
	"github.com/raywall/lazyaws-toolkit/queue"
)

// Acessores tipados sobre as fachadas. São açúcar sintático: resolvem
// pelo mesmo descriptor que Clients.Resolve/Resources.Resolve com o nome
// correspondente, e portanto compartilham o mesmo handle.

// SSM retorna o client lazy do Systems Manager no scope ativo.
func SSM(ctx context.Context) (*ssm.Client, error) {
	h, err := Clients.Resolve(ctx, "ssm")
	if err != nil {
		return nil, err
	}
	return h.(*ssm.Client), nil
}

// DynamoDB retorna o client lazy do DynamoDB no scope ativo.
func DynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	h, err := Clients.Resolve(ctx, "dynamodb")
	if err != nil {
		return nil, err
	}
	return h.(*dynamodb.Client), nil
}

// S3 retorna o client lazy do S3 no scope ativo.
func S3(ctx context.Context) (*s3.Client, error) {
	h, err := Clients.Resolve(ctx, "s3")
	if err != nil {
		return nil, err
	}
	return h.(*s3.Client), nil
}

// SQS retorna o client lazy do SQS no scope ativo.
func SQS(ctx context.Context) (*sqs.Client, error) {
	h, err := Clients.Resolve(ctx, "sqs")
	if err != nil {
		return nil, err
	}
	return h.(*sqs.Client), nil
}

// SecretsManager retorna o client lazy do Secrets Manager no scope ativo.
func SecretsManager(ctx context.Context) (*secretsmanager.Client, error) {
	h, err := Clients.Resolve(ctx, "secretsmanager")
	if err != nil {
		return nil, err
	}
	return h.(*secretsmanager.Client), nil
}

// DynamoDBResource retorna o resource de alto nível do DynamoDB.
func DynamoDBResource(ctx context.Context) (*dyndb.Resource, error) {
	h, err := Resources.Resolve(ctx, "dynamodb")
	if err != nil {
		return nil, err
	}
	return h.(*dyndb.Resource), nil
}

// S3Resource retorna o resource de alto nível do S3.
func S3Resource(ctx context.Context) (*objstore.Resource, error) {
	h, err := Resources.Resolve(ctx, "s3")
	if err != nil {
		return nil, err
	}
	return h.(*objstore.Resource), nil
}

// SQSResource retorna o resource de alto nível do SQS.
func SQSResource(ctx context.Context) (*queue.Resource, error) {
	h, err := Resources.Resolve(ctx, "sqs")
	if err != nil {
		return nil, err
	}
	return h.(*queue.Resource), nil
}
