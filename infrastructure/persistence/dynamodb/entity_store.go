// Package dynamodb implements the EntityStore port against the single
// entity table.
package dynamodb

import (
	"context"
	stderrors "errors"

	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const batchGetLimit = 100

// EntityStore implements ports.EntityStore on DynamoDB.
type EntityStore struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewEntityStore creates a new EntityStore.
func NewEntityStore(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.EntityStore {
	return &EntityStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Get retrieves a single item by its composite key.
func (s *EntityStore) Get(ctx context.Context, key entity.Key) (*entity.Item, error) {
	av, err := attributevalue.MarshalMap(key)
	if err != nil {
		return nil, errors.NewStoreError("get", err)
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       av,
	})
	if err != nil {
		return nil, errors.NewStoreError("get", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError("item")
	}

	var it entity.Item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, errors.NewStoreError("get", err)
	}
	return &it, nil
}

// Query returns the items of one partition, optionally narrowed by a sort
// key prefix.
func (s *EntityStore) Query(ctx context.Context, hashKey, rangeKeyPrefix string) ([]entity.Item, error) {
	keyCond := expression.Key("hashKey").Equal(expression.Value(hashKey))
	if rangeKeyPrefix != "" {
		keyCond = keyCond.And(expression.Key("rangeKey").BeginsWith(rangeKeyPrefix))
	}

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, errors.NewStoreError("query", err)
	}

	var items []entity.Item
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, errors.NewStoreError("query", err)
		}

		var page []entity.Item
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, errors.NewStoreError("query", err)
		}
		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Scan enumerates the table (or a secondary index) with optional filters,
// following pagination to exhaustion.
func (s *EntityStore) Scan(ctx context.Context, opts ports.ScanOptions) ([]entity.Item, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.tableName)}
	if opts.IndexName != "" {
		input.IndexName = aws.String(opts.IndexName)
	}

	var conds []expression.ConditionBuilder
	if opts.RangeKeyPrefix != "" {
		conds = append(conds, expression.BeginsWith(expression.Name("rangeKey"), opts.RangeKeyPrefix))
	}
	if opts.RangeKeyContains != "" {
		conds = append(conds, expression.Contains(expression.Name("rangeKey"), opts.RangeKeyContains))
	}
	if opts.IsApproved != nil {
		conds = append(conds, expression.Equal(expression.Name("isApproved"), expression.Value(*opts.IsApproved)))
	}

	if len(conds) > 0 {
		filter := conds[0]
		for _, c := range conds[1:] {
			filter = filter.And(c)
		}
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, errors.NewStoreError("scan", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	var items []entity.Item
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, errors.NewStoreError("scan", err)
		}

		var page []entity.Item
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, errors.NewStoreError("scan", err)
		}
		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// BatchGet fetches the existing items among the requested keys. Absent keys
// simply do not appear in the result.
func (s *EntityStore) BatchGet(ctx context.Context, keys []entity.Key) ([]entity.Item, error) {
	items := make([]entity.Item, 0, len(keys))

	for start := 0; start < len(keys); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(keys) {
			end = len(keys)
		}

		chunk := make([]map[string]types.AttributeValue, 0, end-start)
		for _, key := range keys[start:end] {
			av, err := attributevalue.MarshalMap(key)
			if err != nil {
				return nil, errors.NewStoreError("batchGet", err)
			}
			chunk = append(chunk, av)
		}

		request := map[string]types.KeysAndAttributes{
			s.tableName: {Keys: chunk},
		}
		for len(request) > 0 {
			out, err := s.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, errors.NewStoreError("batchGet", err)
			}

			var page []entity.Item
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[s.tableName], &page); err != nil {
				return nil, errors.NewStoreError("batchGet", err)
			}
			items = append(items, page...)

			request = out.UnprocessedKeys
		}
	}

	return items, nil
}

// Write applies a planned write set. Atomic sets and any multi-op set go
// through TransactWriteItems so partial application is never observable;
// single non-atomic ops use the plain item calls.
func (s *EntityStore) Write(ctx context.Context, set entity.WriteSet) error {
	if len(set.Ops) == 0 {
		return nil
	}

	if !set.Atomic && len(set.Ops) == 1 {
		return s.writeSingle(ctx, set.Ops[0])
	}

	transactItems := make([]types.TransactWriteItem, 0, len(set.Ops))
	for _, op := range set.Ops {
		item, err := s.buildTransactItem(op)
		if err != nil {
			return err
		}
		transactItems = append(transactItems, item)
	}

	_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		return s.mapWriteError("transactWrite", err)
	}
	return nil
}

func (s *EntityStore) writeSingle(ctx context.Context, op entity.WriteOp) error {
	switch op.Kind {
	case entity.OpPut:
		av, err := attributevalue.MarshalMap(op.Item)
		if err != nil {
			return errors.NewStoreError("put", err)
		}
		if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.tableName),
			Item:      av,
		}); err != nil {
			return s.mapWriteError("put", err)
		}
		return nil

	case entity.OpDelete:
		key, err := attributevalue.MarshalMap(op.Key)
		if err != nil {
			return errors.NewStoreError("delete", err)
		}
		if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       key,
		}); err != nil {
			return s.mapWriteError("delete", err)
		}
		return nil

	case entity.OpUpdate:
		key, expr, err := s.buildUpdate(op)
		if err != nil {
			return err
		}
		if _, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(s.tableName),
			Key:                       key,
			UpdateExpression:          expr.Update(),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		}); err != nil {
			return s.mapWriteError("update", err)
		}
		return nil
	}

	return errors.NewInternalError("unknown write op kind")
}

func (s *EntityStore) buildTransactItem(op entity.WriteOp) (types.TransactWriteItem, error) {
	switch op.Kind {
	case entity.OpPut:
		av, err := attributevalue.MarshalMap(op.Item)
		if err != nil {
			return types.TransactWriteItem{}, errors.NewStoreError("transactWrite", err)
		}
		return types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(s.tableName),
				Item:      av,
			},
		}, nil

	case entity.OpDelete:
		key, err := attributevalue.MarshalMap(op.Key)
		if err != nil {
			return types.TransactWriteItem{}, errors.NewStoreError("transactWrite", err)
		}
		return types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(s.tableName),
				Key:       key,
			},
		}, nil

	case entity.OpUpdate:
		key, expr, err := s.buildUpdate(op)
		if err != nil {
			return types.TransactWriteItem{}, err
		}
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName:                 aws.String(s.tableName),
				Key:                       key,
				UpdateExpression:          expr.Update(),
				ConditionExpression:       expr.Condition(),
				ExpressionAttributeNames:  expr.Names(),
				ExpressionAttributeValues: expr.Values(),
			},
		}, nil
	}

	return types.TransactWriteItem{}, errors.NewInternalError("unknown write op kind")
}

func (s *EntityStore) buildUpdate(op entity.WriteOp) (map[string]types.AttributeValue, expression.Expression, error) {
	key, err := attributevalue.MarshalMap(op.Key)
	if err != nil {
		return nil, expression.Expression{}, errors.NewStoreError("update", err)
	}

	update := expression.UpdateBuilder{}
	for _, attr := range op.Set {
		update = update.Set(expression.Name(attr.Name), expression.Value(attr.Value))
	}

	var conds []expression.ConditionBuilder
	if op.RequireExists {
		conds = append(conds, expression.AttributeExists(expression.Name("hashKey")))
	}
	if op.RequireAbsent != "" {
		conds = append(conds, expression.AttributeNotExists(expression.Name(op.RequireAbsent)))
	}

	builder := expression.NewBuilder().WithUpdate(update)
	if len(conds) > 0 {
		cond := conds[0]
		for _, c := range conds[1:] {
			cond = cond.And(c)
		}
		builder = builder.WithCondition(cond)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, expression.Expression{}, errors.NewStoreError("update", err)
	}
	return key, expr, nil
}

// mapWriteError converts conditional failures into the structured taxonomy;
// everything else passes through as an opaque store error.
func (s *EntityStore) mapWriteError(operation string, err error) error {
	var condFailed *types.ConditionalCheckFailedException
	if stderrors.As(err, &condFailed) {
		return errors.NewConditionalWriteError("write precondition failed", err)
	}

	var canceled *types.TransactionCanceledException
	if stderrors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return errors.NewConditionalWriteError("transaction precondition failed", err)
			}
		}
	}

	s.logger.Error("store write failed",
		zap.String("operation", operation),
		zap.Error(err),
	)
	return errors.NewStoreError(operation, err)
}
