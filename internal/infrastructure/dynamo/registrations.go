package dynamo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RegistrationRepo provides typed DynamoDB operations for the competition
// registrations table. A synthetic email_mobile attribute backs the GSI used
// to reject duplicate entries.
type RegistrationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewRegistrationRepo(client *dynamodb.Client, tableName string) *RegistrationRepo {
	return &RegistrationRepo{client: client, tableName: tableName}
}

func emailMobileKey(email, mobile string) string {
	return strings.ToLower(email) + "#" + mobile
}

func (r *RegistrationRepo) Put(ctx context.Context, reg *domain.Registration) error {
	item, err := attributevalue.MarshalMap(reg)
	if err != nil {
		return fmt.Errorf("marshal registration: %w", err)
	}
	item["email_mobile"] = &types.AttributeValueMemberS{Value: emailMobileKey(reg.EmailAddress, reg.MobileNo)}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// GetByEmailMobile returns the registration for an email+mobile pair, or
// domain.ErrNotFound when the pair is unused.
func (r *RegistrationRepo) GetByEmailMobile(ctx context.Context, email, mobile string) (*domain.Registration, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("email_mobile-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "email_mobile"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: emailMobileKey(email, mobile)}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("registration not found: %w", domain.ErrNotFound)
	}
	var reg domain.Registration
	if err := attributevalue.UnmarshalMap(out.Items[0], &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) Scan(ctx context.Context) ([]domain.Registration, error) {
	return scanAll[domain.Registration](ctx, r.client, r.tableName)
}
