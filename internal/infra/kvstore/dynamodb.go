package kvstore

import (
	"context"
	"errors"
	"sort"

	"badminton-club/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by DynamoStore.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type DynamoStore struct {
	client DynamoAPI
	table  string
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) Get(ctx context.Context, pk, sk string, out any) error {
	res, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		return errs.Wrapf(err, "get %s/%s", pk, sk)
	}
	if res.Item == nil {
		return ErrNotFound
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return errs.Wrapf(err, "decode %s/%s", pk, sk)
	}
	return nil
}

func (s *DynamoStore) Put(ctx context.Context, op PutOp) error {
	put, err := s.buildPut(op)
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	return translateWriteErr(err)
}

func (s *DynamoStore) Update(ctx context.Context, pk, sk string, fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var update expression.UpdateBuilder
	for _, name := range names {
		update = update.Set(expression.Name(name), expression.Value(fields[name]))
	}
	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("PK"))).
		Build()
	if err != nil {
		return errs.Wrap(err, "build update expression")
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       primaryKey(pk, sk),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err := translateWriteErr(err); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return ErrNotFound
		}
		return errs.Wrapf(err, "update %s/%s", pk, sk)
	}
	return nil
}

func (s *DynamoStore) Query(ctx context.Context, pk, skPrefix string, out any) error {
	return s.QueryIndex(ctx, IndexPrimary, pk, skPrefix, out)
}

func (s *DynamoStore) QueryIndex(ctx context.Context, index Index, pk, skPrefix string, out any) error {
	pkName, skName := "PK", "SK"
	if index != IndexPrimary {
		pkName, skName = string(index)+"PK", string(index)+"SK"
	}

	keyCond := expression.Key(pkName).Equal(expression.Value(pk))
	if skPrefix != "" {
		keyCond = keyCond.And(expression.Key(skName).BeginsWith(skPrefix))
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return errs.Wrap(err, "build key condition")
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if index != IndexPrimary {
		input.IndexName = aws.String(string(index))
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return errs.Wrapf(err, "query %s %s", index, pk)
		}
		items = append(items, page.Items...)
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return errs.Wrap(err, "decode items")
	}
	return nil
}

func (s *DynamoStore) Scan(ctx context.Context, filter map[string]string, out any) error {
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}

	if len(filter) > 0 {
		names := make([]string, 0, len(filter))
		for name := range filter {
			names = append(names, name)
		}
		sort.Strings(names)

		cond := expression.Name(names[0]).Equal(expression.Value(filter[names[0]]))
		for _, name := range names[1:] {
			cond = cond.And(expression.Name(name).Equal(expression.Value(filter[name])))
		}
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return errs.Wrap(err, "build scan filter")
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return errs.Wrap(err, "scan items")
		}
		items = append(items, page.Items...)
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return errs.Wrap(err, "decode items")
	}
	return nil
}

func (s *DynamoStore) TransactWrite(ctx context.Context, ops ...PutOp) error {
	items := make([]types.TransactWriteItem, 0, len(ops))
	for _, op := range ops {
		put, err := s.buildPut(op)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: put})
	}
	_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return translateWriteErr(err)
}

func (s *DynamoStore) buildPut(op PutOp) (*types.Put, error) {
	keys := op.Item.ItemKeys()
	item, err := attributevalue.MarshalMap(op.Item)
	if err != nil {
		return nil, errs.Wrapf(err, "encode %s/%s", keys.PK, keys.SK)
	}
	put := &types.Put{
		TableName: aws.String(s.table),
		Item:      item,
	}

	var cond expression.ConditionBuilder
	switch op.Condition.kind {
	case conditionNone:
		return put, nil
	case conditionNotExists:
		cond = expression.AttributeNotExists(expression.Name("PK"))
	case conditionVersion:
		cond = expression.Name(VersionAttribute).Equal(expression.Value(op.Condition.version))
	}
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, errs.Wrap(err, "build condition expression")
	}
	put.ConditionExpression = expr.Condition()
	put.ExpressionAttributeNames = expr.Names()
	put.ExpressionAttributeValues = expr.Values()
	return put, nil
}

func translateWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return ErrConditionFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		// TransactionConflict: another transaction held one of the items; nothing was written.
		for _, reason := range tce.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return ErrConditionFailed
			}
		}
	}
	return errs.Wrap(err, "write items")
}

func primaryKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
