package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqbal-singh-1/ideathon/internal/models"
)

type MockDynamo struct {
	PutItemFunc func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	GetItemFunc func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
}

func (m *MockDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return m.PutItemFunc(in)
}

func (m *MockDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.GetItemFunc(in)
}

func testUser() *models.User {
	return &models.User{
		ID:        "3f1c9a52-1b1e-4c4e-9a55-6d1f7f0f2b11",
		UID:       "PB-10422",
		FullName:  "Asha Verma",
		Phone:     "9876543210",
		Password:  "$2a$10$hash",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDynamoCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Conditional Put", func(t *testing.T) {
		var captured *dynamodb.PutItemInput
		db := New(&MockDynamo{PutItemFunc: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = in
			return &dynamodb.PutItemOutput{}, nil
		}}, "users")

		require.NoError(t, db.CreateUser(ctx, testUser()))
		assert.Equal(t, "users", *captured.TableName)
		assert.Equal(t, "attribute_not_exists(uid)", *captured.ConditionExpression)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "PB-10422"}, captured.Item["uid"])
	})

	t.Run("Duplicate UID", func(t *testing.T) {
		db := New(&MockDynamo{PutItemFunc: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}, "users")

		assert.ErrorIs(t, db.CreateUser(ctx, testUser()), ErrUserExists)
	})

	t.Run("Other Error", func(t *testing.T) {
		db := New(&MockDynamo{PutItemFunc: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("throttled")
		}}, "users")

		assert.EqualError(t, db.CreateUser(ctx, testUser()), "throttled")
	})
}

func TestDynamoGetUserByUID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(testUser())
		require.NoError(t, err)

		db := New(&MockDynamo{GetItemFunc: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, &types.AttributeValueMemberS{Value: "PB-10422"}, in.Key["uid"])
			return &dynamodb.GetItemOutput{Item: item}, nil
		}}, "users")

		user, err := db.GetUserByUID(ctx, "PB-10422")
		require.NoError(t, err)
		assert.Equal(t, testUser(), user)
	})

	t.Run("Not Found", func(t *testing.T) {
		db := New(&MockDynamo{GetItemFunc: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}, "users")

		user, err := db.GetUserByUID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreateUser(ctx, testUser()))
	assert.ErrorIs(t, m.CreateUser(ctx, testUser()), ErrUserExists)

	user, err := m.GetUserByUID(ctx, "PB-10422")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", user.FullName)

	user, err = m.GetUserByUID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
