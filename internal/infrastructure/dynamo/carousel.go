package dynamo

import (
	"context"
	"fmt"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// CarouselRepo provides typed DynamoDB operations for the carousel_items table.
type CarouselRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCarouselRepo(client *dynamodb.Client, tableName string) *CarouselRepo {
	return &CarouselRepo{client: client, tableName: tableName}
}

func (r *CarouselRepo) Put(ctx context.Context, item *domain.CarouselItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal carousel item: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CarouselRepo) Scan(ctx context.Context) ([]domain.CarouselItem, error) {
	var items []domain.CarouselItem
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.CarouselItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *CarouselRepo) Delete(ctx context.Context, itemID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("item_id", itemID),
	})
	return err
}
