package dynamo

import (
	"context"
	"fmt"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DonationRepo provides typed DynamoDB operations for the donations table.
type DonationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewDonationRepo(client *dynamodb.Client, tableName string) *DonationRepo {
	return &DonationRepo{client: client, tableName: tableName}
}

func (r *DonationRepo) Put(ctx context.Context, d *domain.Donation) error {
	item, err := attributevalue.MarshalMap(d)
	if err != nil {
		return fmt.Errorf("marshal donation: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// GetByTransactionID looks up a donation via the transaction_id GSI.
// Returns domain.ErrNotFound when no donation carries the transaction ID.
func (r *DonationRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("transaction_id-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "transaction_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: transactionID}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("donation not found: %w", domain.ErrNotFound)
	}
	var d domain.Donation
	if err := attributevalue.UnmarshalMap(out.Items[0], &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Scan returns every donation, following pagination until exhausted.
func (r *DonationRepo) Scan(ctx context.Context) ([]domain.Donation, error) {
	var donations []domain.Donation
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Donation
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		donations = append(donations, page...)
		if out.LastEvaluatedKey == nil {
			return donations, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
