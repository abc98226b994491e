package dyndb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestQueryBuilder_Exec(t *testing.T) {
	mock := &MockClient{
		QueryFunc: func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, "users", *params.TableName)
			assert.NotNil(t, params.KeyConditionExpression)
			assert.NotNil(t, params.FilterExpression)
			assert.Equal(t, int32(10), *params.Limit)
			assert.Equal(t, "by-status", *params.IndexName)

			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{
					mustMarshal(t, testUser{ID: "u1", Status: "ACTIVE"}),
					mustMarshal(t, testUser{ID: "u2", Status: "ACTIVE"}),
				},
			}, nil
		},
	}

	var users []testUser
	next, err := NewResource(mock).Table("users").Query().
		Index("by-status").
		KeyEqual("id", "u1").
		FilterEqual("status", "ACTIVE").
		Limit(10).
		Exec(context.Background(), &users)

	require.NoError(t, err)
	assert.Empty(t, next, "sem LastEvaluatedKey não há token de próxima página")
	assert.Len(t, users, 2)
}

func TestQueryBuilder_RequiresKeyCondition(t *testing.T) {
	var users []testUser
	_, err := NewResource(&MockClient{}).Table("users").Query().
		Exec(context.Background(), &users)

	assert.Error(t, err)
}

func TestQueryBuilder_PaginationTokenRoundtrip(t *testing.T) {
	lastKey := mustMarshal(t, map[string]any{"id": "u2"})

	mock := &MockClient{
		QueryFunc: func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{LastEvaluatedKey: lastKey}, nil
		},
	}
	table := NewResource(mock).Table("users")

	var users []testUser
	token, err := table.Query().KeyEqual("id", "u1").Exec(context.Background(), &users)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Segunda página: o token deve virar ExclusiveStartKey equivalente.
	mock.QueryFunc = func(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		require.NotNil(t, params.ExclusiveStartKey)
		member, ok := params.ExclusiveStartKey["id"].(*types.AttributeValueMemberS)
		require.True(t, ok)
		assert.Equal(t, "u2", member.Value)
		return &dynamodb.QueryOutput{}, nil
	}

	_, err = table.Query().KeyEqual("id", "u1").StartToken(token).Exec(context.Background(), &users)
	require.NoError(t, err)
}

func TestQueryBuilder_InvalidStartToken(t *testing.T) {
	var users []testUser
	_, err := NewResource(&MockClient{}).Table("users").Query().
		KeyEqual("id", "u1").
		StartToken("not-base64!!").
		Exec(context.Background(), &users)

	assert.Error(t, err)
}

func TestScanBuilder_Exec(t *testing.T) {
	mock := &MockClient{
		ScanFunc: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.NotNil(t, params.FilterExpression)
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{
					mustMarshal(t, testUser{ID: "u3"}),
				},
			}, nil
		},
	}

	var users []testUser
	next, err := NewResource(mock).Table("users").Scan().
		FilterEqual("status", "INACTIVE").
		Exec(context.Background(), &users)

	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Len(t, users, 1)
}
