package dynamo

import (
	"context"
	"fmt"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// The three event tables share one key schema (event_id), so the repos share
// a small generic core.

func putItem[T any](ctx context.Context, client *dynamodb.Client, tableName string, v *T) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
	})
	return err
}

func getByEventID[T any](ctx context.Context, client *dynamodb.Client, tableName, eventID string) (*T, error) {
	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key:       strKey("event_id", eventID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("event not found: %w", domain.ErrNotFound)
	}
	var v T
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanAll[T any](ctx context.Context, client *dynamodb.Client, tableName string) ([]T, error) {
	var all []T
	input := &dynamodb.ScanInput{TableName: aws.String(tableName)}
	for {
		out, err := client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func updateByEventID(ctx context.Context, client *dynamodb.Client, tableName, eventID string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(tableName),
		Key:                       strKey("event_id", eventID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func deleteByEventID(ctx context.Context, client *dynamodb.Client, tableName, eventID string) error {
	_, err := client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key:       strKey("event_id", eventID),
	})
	return err
}

// UpcomingEventRepo provides typed operations for the upcoming_events table.
type UpcomingEventRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUpcomingEventRepo(client *dynamodb.Client, tableName string) *UpcomingEventRepo {
	return &UpcomingEventRepo{client: client, tableName: tableName}
}

func (r *UpcomingEventRepo) Put(ctx context.Context, e *domain.UpcomingEvent) error {
	return putItem(ctx, r.client, r.tableName, e)
}

func (r *UpcomingEventRepo) Get(ctx context.Context, eventID string) (*domain.UpcomingEvent, error) {
	return getByEventID[domain.UpcomingEvent](ctx, r.client, r.tableName, eventID)
}

func (r *UpcomingEventRepo) Scan(ctx context.Context) ([]domain.UpcomingEvent, error) {
	return scanAll[domain.UpcomingEvent](ctx, r.client, r.tableName)
}

func (r *UpcomingEventRepo) Update(ctx context.Context, eventID string, updates map[string]interface{}) error {
	return updateByEventID(ctx, r.client, r.tableName, eventID, updates)
}

func (r *UpcomingEventRepo) Delete(ctx context.Context, eventID string) error {
	return deleteByEventID(ctx, r.client, r.tableName, eventID)
}

// FeaturedEventRepo provides typed operations for the featured_events table.
type FeaturedEventRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewFeaturedEventRepo(client *dynamodb.Client, tableName string) *FeaturedEventRepo {
	return &FeaturedEventRepo{client: client, tableName: tableName}
}

func (r *FeaturedEventRepo) Put(ctx context.Context, e *domain.FeaturedEvent) error {
	return putItem(ctx, r.client, r.tableName, e)
}

func (r *FeaturedEventRepo) Get(ctx context.Context, eventID string) (*domain.FeaturedEvent, error) {
	return getByEventID[domain.FeaturedEvent](ctx, r.client, r.tableName, eventID)
}

func (r *FeaturedEventRepo) Scan(ctx context.Context) ([]domain.FeaturedEvent, error) {
	return scanAll[domain.FeaturedEvent](ctx, r.client, r.tableName)
}

func (r *FeaturedEventRepo) Delete(ctx context.Context, eventID string) error {
	return deleteByEventID(ctx, r.client, r.tableName, eventID)
}

// ArchivedEventRepo provides typed operations for the archived_events table.
type ArchivedEventRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewArchivedEventRepo(client *dynamodb.Client, tableName string) *ArchivedEventRepo {
	return &ArchivedEventRepo{client: client, tableName: tableName}
}

func (r *ArchivedEventRepo) Put(ctx context.Context, e *domain.ArchivedEvent) error {
	return putItem(ctx, r.client, r.tableName, e)
}

func (r *ArchivedEventRepo) Get(ctx context.Context, eventID string) (*domain.ArchivedEvent, error) {
	return getByEventID[domain.ArchivedEvent](ctx, r.client, r.tableName, eventID)
}

func (r *ArchivedEventRepo) Scan(ctx context.Context) ([]domain.ArchivedEvent, error) {
	return scanAll[domain.ArchivedEvent](ctx, r.client, r.tableName)
}

func (r *ArchivedEventRepo) Update(ctx context.Context, eventID string, updates map[string]interface{}) error {
	return updateByEventID(ctx, r.client, r.tableName, eventID, updates)
}

func (r *ArchivedEventRepo) Delete(ctx context.Context, eventID string) error {
	return deleteByEventID(ctx, r.client, r.tableName, eventID)
}
