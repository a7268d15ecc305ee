package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultApplicationsTableName = "applications"

type applicationItem struct {
	ID                string   `dynamodbav:"id"`
	UserID            string   `dynamodbav:"user_id"`
	PhotoBase64       []string `dynamodbav:"photo_base64,omitempty"`
	Category          string   `dynamodbav:"category"`
	Comment           string   `dynamodbav:"comment"`
	Status            string   `dynamodbav:"status"`
	SubmittedAt       string   `dynamodbav:"submitted_at"`
	Price             *float64 `dynamodbav:"price,omitempty"`
	AdminComment      *string  `dynamodbav:"admin_comment,omitempty"`
	UserFio           *string  `dynamodbav:"user_fio,omitempty"`
	UserPhone         *string  `dynamodbav:"user_phone,omitempty"`
	UserAddress       *string  `dynamodbav:"user_address,omitempty"`
	UserPaymentMethod *string  `dynamodbav:"user_payment_method,omitempty"`
}

// ApplicationDynamoRepository persists application records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every status-changing update carries a ConditionExpression on the
// expected current status, so two concurrent transitions cannot both
// land: the loser observes a conditional-check failure and gets
// entities.ErrInvalidTransition instead of silently overwriting the
// winner's fields.
type ApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb *dynamodb.Client) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
		now:       time.Now,
	}
}

// Create writes a new record with status UNDER_REVIEW. The submission
// timestamp is stamped here, on the service side of the store boundary,
// so snapshot ordering never depends on client clocks. When the id
// already exists (a retried create with the same idempotency key) the
// stored record is returned unchanged.
func (r *ApplicationDynamoRepository) Create(ctx context.Context, app entities.Application) (entities.Application, error) {
	app.Status = entities.StatusUnderReview
	app.SubmittedAt = r.now().UTC()

	av, err := attributevalue.MarshalMap(toApplicationItem(app))
	if err != nil {
		return entities.Application{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, app.ID)
		}
		return entities.Application{}, fmt.Errorf("%w: put application: %v", entities.ErrStoreUnavailable, err)
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, fmt.Errorf("%w: get application: %v", entities.ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

// List returns the full snapshot matching the filter, sorted by (status
// lifecycle order asc, submitted_at desc). Expected volumes are tens of
// records per view, so a filtered scan plus an in-memory sort is the
// whole query layer.
func (r *ApplicationDynamoRepository) List(ctx context.Context, filter interfaces.ApplicationFilter) ([]entities.Application, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter.UserID != "" {
		input.FilterExpression = aws.String("#user_id = :user_id")
		input.ExpressionAttributeNames = map[string]string{"#user_id": "user_id"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: filter.UserID},
		}
	}

	apps := make([]entities.Application, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: scan applications: %v", entities.ErrStoreUnavailable, err)
		}
		var items []applicationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			apps = append(apps, fromApplicationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	entities.SortApplications(apps)
	return apps, nil
}

// ApplyPricing moves UNDER_REVIEW -> AWAITING_CONFIRMATION, setting price
// and admin comment together.
func (r *ApplicationDynamoRepository) ApplyPricing(ctx context.Context, id string, price float64, adminComment string) (entities.Application, error) {
	return r.conditionalUpdate(ctx, id, entities.StatusUnderReview, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #price = :price, #admin_comment = :admin_comment"
		vals := map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(entities.StatusAwaitingConfirmation)},
			":price":         &types.AttributeValueMemberN{Value: floatToString(price)},
			":admin_comment": &types.AttributeValueMemberS{Value: adminComment},
		}
		names := map[string]string{
			"#status":        "status",
			"#price":         "price",
			"#admin_comment": "admin_comment",
		}
		return expr, vals, names
	})
}

// ApplyConfirmation moves AWAITING_CONFIRMATION -> APPROVED and stores
// the customer's payout contact record.
func (r *ApplicationDynamoRepository) ApplyConfirmation(ctx context.Context, id string, contact entities.ContactDetails) (entities.Application, error) {
	return r.conditionalUpdate(ctx, id, entities.StatusAwaitingConfirmation, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #user_fio = :user_fio, #user_phone = :user_phone, #user_address = :user_address, #user_payment_method = :user_payment_method"
		vals := map[string]types.AttributeValue{
			":status":              &types.AttributeValueMemberS{Value: string(entities.StatusApproved)},
			":user_fio":            &types.AttributeValueMemberS{Value: contact.FullName},
			":user_phone":          &types.AttributeValueMemberS{Value: contact.Phone},
			":user_address":        &types.AttributeValueMemberS{Value: contact.Address},
			":user_payment_method": &types.AttributeValueMemberS{Value: contact.PaymentMethod},
		}
		names := map[string]string{
			"#status":              "status",
			"#user_fio":            "user_fio",
			"#user_phone":          "user_phone",
			"#user_address":        "user_address",
			"#user_payment_method": "user_payment_method",
		}
		return expr, vals, names
	})
}

// ApplyDecline moves AWAITING_CONFIRMATION -> REJECTED. The record is
// kept for history; rejection is terminal, not a delete.
func (r *ApplicationDynamoRepository) ApplyDecline(ctx context.Context, id string) (entities.Application, error) {
	return r.conditionalUpdate(ctx, id, entities.StatusAwaitingConfirmation, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.StatusRejected)},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *ApplicationDynamoRepository) conditionalUpdate(
	ctx context.Context,
	id string,
	expected entities.ApplicationStatus,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Application, error) {
	updateExpr, values, names := build()
	values[":expected_status"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected_status"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.resolveConditionFailure(ctx, id, expected)
		}
		return entities.Application{}, fmt.Errorf("%w: update application: %v", entities.ErrStoreUnavailable, err)
	}
	if len(out.Attributes) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

// resolveConditionFailure distinguishes the two reasons the condition can
// fail: the record does not exist (zero value, mapped to not-found by the
// use case) or it exists in another status, meaning the transition guard
// no longer holds, typically because a concurrent writer got there first.
func (r *ApplicationDynamoRepository) resolveConditionFailure(ctx context.Context, id string, expected entities.ApplicationStatus) (entities.Application, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if current.ID == "" {
		return entities.Application{}, nil
	}
	return entities.Application{}, fmt.Errorf("%w: expected status %s, found %s", entities.ErrInvalidTransition, expected, current.Status)
}

func toApplicationItem(app entities.Application) applicationItem {
	it := applicationItem{
		ID:           app.ID,
		UserID:       app.UserID,
		PhotoBase64:  app.PhotoBase64,
		Category:     app.Category,
		Comment:      app.Comment,
		Status:       string(app.Status),
		SubmittedAt:  app.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Price:        app.Price,
		AdminComment: app.AdminComment,
	}
	if app.Contact != nil {
		it.UserFio = &app.Contact.FullName
		it.UserPhone = &app.Contact.Phone
		it.UserAddress = &app.Contact.Address
		it.UserPaymentMethod = &app.Contact.PaymentMethod
	}
	return it
}

func fromApplicationItem(it applicationItem) entities.Application {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	app := entities.Application{
		ID:           it.ID,
		UserID:       it.UserID,
		PhotoBase64:  it.PhotoBase64,
		Category:     it.Category,
		Comment:      it.Comment,
		Status:       entities.ApplicationStatus(it.Status),
		SubmittedAt:  submittedAt,
		Price:        it.Price,
		AdminComment: it.AdminComment,
	}
	if it.UserFio != nil || it.UserPhone != nil || it.UserAddress != nil || it.UserPaymentMethod != nil {
		app.Contact = &entities.ContactDetails{
			FullName:      deref(it.UserFio),
			Phone:         deref(it.UserPhone),
			Address:       deref(it.UserAddress),
			PaymentMethod: deref(it.UserPaymentMethod),
		}
	}
	return app
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
