package repository

import (
	"context"
	"fmt"
	"strings"

	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID    string `dynamodbav:"id"`
	Email string `dynamodbav:"email"`
	Admin bool   `dynamodbav:"admin"`
}

// UserDynamoRepository resolves caller tokens against the users table.
// The identity platform owns the table's contents; this repository only
// reads id and the admin flag.
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIdentityResolver = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) CurrentPrincipal(ctx context.Context, token string) (entities.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Principal{}, entities.ErrUnauthenticated
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: get user: %v", entities.ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return entities.Principal{}, entities.ErrUnauthenticated
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Principal{}, err
	}
	return entities.Principal{UserID: it.ID, IsAdmin: it.Admin}, nil
}
