package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table dá acesso orientado a objetos a uma tabela do DynamoDB.
type Table struct {
	client Client
	name   string
}

// Name retorna o nome da tabela.
func (t *Table) Name() string { return t.name }

// Get carrega o item identificado por key em out (ponteiro para struct ou
// mapa). Retorna ErrNotFound quando o item não existe.
func (t *Table) Get(ctx context.Context, key Key, out any) error {
	k, err := marshalKey(key)
	if err != nil {
		return err
	}

	res, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            k,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("dyndb: get failed: %w", err)
	}
	if res.Item == nil {
		return ErrNotFound
	}

	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	return nil
}

// Put grava o item (upsert).
func (t *Table) Put(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dyndb: marshal failed: %w", err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dyndb: put failed: %w", err)
	}
	return nil
}

// Delete remove o item identificado por key.
func (t *Table) Delete(ctx context.Context, key Key) error {
	k, err := marshalKey(key)
	if err != nil {
		return err
	}

	_, err = t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       k,
	})
	if err != nil {
		return fmt.Errorf("dyndb: delete failed: %w", err)
	}
	return nil
}

// Query inicia uma Query fluente sobre a tabela.
func (t *Table) Query() *QueryBuilder {
	return &QueryBuilder{table: t}
}

// Scan inicia um Scan fluente sobre a tabela.
func (t *Table) Scan() *QueryBuilder {
	return &QueryBuilder{table: t, isScan: true}
}

// marshalKey converte a chave nativa para AttributeValues.
func marshalKey(key Key) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("dyndb: empty key")
	}

	out := make(map[string]types.AttributeValue, len(key))
	for name, value := range key {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("dyndb: marshal key %q failed: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}
