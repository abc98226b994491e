package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound – erro padrão quando o item não existe
var ErrNotFound = errors.New("dyndb: item not found")

// Client abstrai o subconjunto do client DynamoDB que o resource usa,
// permitindo mock em testes.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Key identifica um item pela chave primária (hash e, se houver, sort).
type Key map[string]any

// Resource é o handle resource-kind do DynamoDB.
type Resource struct {
	client Client
}

// NewResource cria o resource sobre um client existente.
func NewResource(client Client) *Resource {
	return &Resource{client: client}
}

// Client expõe o client subjacente para operações fora da camada de objetos.
func (r *Resource) Client() Client {
	return r.client
}

// Table retorna o objeto de acesso à tabela informada.
func (r *Resource) Table(name string) *Table {
	return &Table{client: r.client, name: name}
}
