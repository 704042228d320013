package repository

import (
	"context"

	"facturador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "invoice_documents"

type payloadItem struct {
	Key     string `dynamodbav:"key"`
	Payload string `dynamodbav:"payload"`
}

// KeyValueDynamoRepository is the scoped key-value collaborator backed by
// DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// One item holds one full serialized collection under its key; writes replace
// the item wholesale, which is exactly the no-partial-write contract the
// invoice store expects.

type KeyValueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueStore = (*KeyValueDynamoRepository)(nil)

func NewKeyValueDynamoRepository(ddb *dynamodb.Client) *KeyValueDynamoRepository {
	return &KeyValueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *KeyValueDynamoRepository) Read(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it payloadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Payload, true, nil
}

func (r *KeyValueDynamoRepository) Write(ctx context.Context, key string, value string) error {
	av, err := attributevalue.MarshalMap(payloadItem{Key: key, Payload: value})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
