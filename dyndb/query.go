package dyndb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryBuilder monta Query/Scan de forma fluente sobre as Expression
// Builders do SDK. Erros de montagem ficam pendentes e são reportados
// apenas no Exec.
type QueryBuilder struct {
	table       *Table
	keyCond     *expression.KeyConditionBuilder
	filterCond  *expression.ConditionBuilder
	indexName   *string
	limit       *int32
	lastKey     map[string]types.AttributeValue
	scanForward *bool
	isScan      bool
	err         error
}

// Index direciona a consulta para um índice secundário.
func (qb *QueryBuilder) Index(name string) *QueryBuilder {
	qb.indexName = aws.String(name)
	return qb
}

// KeyEqual adiciona uma condição de igualdade de chave.
func (qb *QueryBuilder) KeyEqual(key string, value any) *QueryBuilder {
	cond := expression.KeyEqual(expression.Key(key), expression.Value(value))
	qb.andKey(cond)
	return qb
}

// KeyBeginsWith adiciona uma condição de prefixo na chave de ordenação.
func (qb *QueryBuilder) KeyBeginsWith(key, prefix string) *QueryBuilder {
	cond := expression.Key(key).BeginsWith(prefix)
	qb.andKey(cond)
	return qb
}

// FilterEqual adiciona um filtro de igualdade num atributo.
func (qb *QueryBuilder) FilterEqual(field string, value any) *QueryBuilder {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	qb.andFilter(cond)
	return qb
}

// FilterContains adiciona um filtro contains num atributo.
func (qb *QueryBuilder) FilterContains(field string, value any) *QueryBuilder {
	cond := expression.Contains(expression.Name(field), fmt.Sprint(value))
	qb.andFilter(cond)
	return qb
}

// Limit restringe o número de itens por página.
func (qb *QueryBuilder) Limit(n int32) *QueryBuilder {
	qb.limit = &n
	return qb
}

// Descending inverte a ordem da Query (ignorado em Scan).
func (qb *QueryBuilder) Descending() *QueryBuilder {
	qb.scanForward = aws.Bool(false)
	return qb
}

// StartToken retoma a paginação a partir de um token devolvido por Exec.
func (qb *QueryBuilder) StartToken(token string) *QueryBuilder {
	if token == "" {
		return qb
	}

	lastKey, err := decodePageToken(token)
	if err != nil {
		qb.err = err
		return qb
	}
	qb.lastKey = lastKey
	return qb
}

func (qb *QueryBuilder) andKey(cond expression.KeyConditionBuilder) {
	if qb.keyCond == nil {
		qb.keyCond = &cond
		return
	}
	combined := qb.keyCond.And(cond)
	qb.keyCond = &combined
}

func (qb *QueryBuilder) andFilter(cond expression.ConditionBuilder) {
	if qb.filterCond == nil {
		qb.filterCond = &cond
		return
	}
	combined := qb.filterCond.And(cond)
	qb.filterCond = &combined
}

// Exec executa a consulta, desserializa a página em out (ponteiro para
// slice) e retorna o token da próxima página ("" quando acabou).
func (qb *QueryBuilder) Exec(ctx context.Context, out any) (string, error) {
	if qb.err != nil {
		return "", qb.err
	}
	if qb.isScan {
		return qb.execScan(ctx, out)
	}
	return qb.execQuery(ctx, out)
}

func (qb *QueryBuilder) execQuery(ctx context.Context, out any) (string, error) {
	if qb.keyCond == nil {
		return "", fmt.Errorf("dyndb: query requires a key condition")
	}

	builder := expression.NewBuilder().WithKeyCondition(*qb.keyCond)
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("dyndb: build expression failed: %w", err)
	}

	res, err := qb.table.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(qb.table.name),
		IndexName:                 qb.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ExclusiveStartKey:         qb.lastKey,
		ScanIndexForward:          qb.scanForward,
	})
	if err != nil {
		return "", fmt.Errorf("dyndb: query failed: %w", err)
	}

	return unmarshalPage(res.Items, res.LastEvaluatedKey, out)
}

func (qb *QueryBuilder) execScan(ctx context.Context, out any) (string, error) {
	input := &dynamodb.ScanInput{
		TableName:         aws.String(qb.table.name),
		IndexName:         qb.indexName,
		Limit:             qb.limit,
		ExclusiveStartKey: qb.lastKey,
	}

	if qb.filterCond != nil {
		expr, err := expression.NewBuilder().WithFilter(*qb.filterCond).Build()
		if err != nil {
			return "", fmt.Errorf("dyndb: build expression failed: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	res, err := qb.table.client.Scan(ctx, input)
	if err != nil {
		return "", fmt.Errorf("dyndb: scan failed: %w", err)
	}

	return unmarshalPage(res.Items, res.LastEvaluatedKey, out)
}

func unmarshalPage(items []map[string]types.AttributeValue, lastKey map[string]types.AttributeValue, out any) (string, error) {
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return "", fmt.Errorf("dyndb: unmarshal page failed: %w", err)
	}
	return encodePageToken(lastKey)
}

// encodePageToken serializa o LastEvaluatedKey num token Base64 opaco.
func encodePageToken(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}

	var plain map[string]any
	if err := attributevalue.UnmarshalMap(lastKey, &plain); err != nil {
		return "", fmt.Errorf("dyndb: encode page token failed: %w", err)
	}

	data, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("dyndb: encode page token failed: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodePageToken(token string) (map[string]types.AttributeValue, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("dyndb: invalid page token: %w", err)
	}

	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("dyndb: invalid page token: %w", err)
	}

	return attributevalue.MarshalMap(plain)
}
