// Package store persists users' lookbooks — saved outfit looks — in DynamoDB
// using a single-table key layout: the partition key identifies the user, the
// sort key the saved look.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB key constants.
const (
	pkPrefix = "USER#"
	skLook   = "LOOK#"
)

// SavedLook is one entry in a user's lookbook: a recommendation the user
// chose to keep, optionally with an uploaded image.
type SavedLook struct {
	UserID      string   `json:"userId" dynamodbav:"-"`
	LookID      string   `json:"lookId" dynamodbav:"lookId"`
	Title       string   `json:"title" dynamodbav:"title"`
	Description string   `json:"description" dynamodbav:"description"`
	Items       []string `json:"items" dynamodbav:"items"`
	Occasion    string   `json:"occasion" dynamodbav:"occasion"`
	ImageURL    string   `json:"imageUrl,omitempty" dynamodbav:"imageUrl,omitempty"`
	SavedAt     string   `json:"savedAt" dynamodbav:"savedAt"`
}

// LookbookStore persists saved looks in DynamoDB.
type LookbookStore struct {
	client    *dynamodb.Client
	tableName string
}

// NewLookbookStore creates a LookbookStore for the given table.
// The client should be initialized from the shared AWS config.
func NewLookbookStore(client *dynamodb.Client, tableName string) *LookbookStore {
	return &LookbookStore{client: client, tableName: tableName}
}

func userPK(userID string) string {
	return pkPrefix + userID
}

// PutSavedLook writes a saved look. SavedAt is stamped here if empty.
func (s *LookbookStore) PutSavedLook(ctx context.Context, look *SavedLook) error {
	if look.SavedAt == "" {
		look.SavedAt = time.Now().UTC().Format(time.RFC3339)
	}

	item, err := attributevalue.MarshalMap(look)
	if err != nil {
		return fmt.Errorf("marshal look %s: %w", look.LookID, err)
	}
	item["PK"] = &types.AttributeValueMemberS{Value: userPK(look.UserID)}
	item["SK"] = &types.AttributeValueMemberS{Value: skLook + look.LookID}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem look %s: %w", look.LookID, err)
	}
	return nil
}

// ListSavedLooks returns all of a user's saved looks, newest first.
func (s *LookbookStore) ListSavedLooks(ctx context.Context, userID string) ([]SavedLook, error) {
	pk := userPK(userID)
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: strPtr("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
			":sk": &types.AttributeValueMemberS{Value: skLook},
		},
		ScanIndexForward: boolPtr(false),
	})
	if err != nil {
		return nil, fmt.Errorf("Query looks for %s: %w", userID, err)
	}

	looks := make([]SavedLook, 0, len(result.Items))
	for _, item := range result.Items {
		var look SavedLook
		if err := attributevalue.UnmarshalMap(item, &look); err != nil {
			return nil, fmt.Errorf("unmarshal look: %w", err)
		}
		look.UserID = userID
		looks = append(looks, look)
	}
	return looks, nil
}

// DeleteSavedLook removes one saved look.
func (s *LookbookStore) DeleteSavedLook(ctx context.Context, userID, lookID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: skLook + lookID},
		},
	})
	if err != nil {
		return fmt.Errorf("DeleteItem look %s: %w", lookID, err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
