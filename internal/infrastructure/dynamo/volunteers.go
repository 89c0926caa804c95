package dynamo

import (
	"context"
	"fmt"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// VolunteerRepo provides typed DynamoDB operations for the volunteers table.
type VolunteerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVolunteerRepo(client *dynamodb.Client, tableName string) *VolunteerRepo {
	return &VolunteerRepo{client: client, tableName: tableName}
}

func (r *VolunteerRepo) Put(ctx context.Context, v *domain.Volunteer) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal volunteer: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Scan returns every volunteer record, following pagination until the table
// is exhausted. Read order is the table's natural scan order; the export
// pipeline preserves it as-is.
func (r *VolunteerRepo) Scan(ctx context.Context) ([]domain.Volunteer, error) {
	var volunteers []domain.Volunteer
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Volunteer
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, page...)
		if out.LastEvaluatedKey == nil {
			return volunteers, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
