package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mathsolver-backend/application/ports"
	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"
	pkgerrors "mathsolver-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ProblemRepository implements ports.ProblemRepository on a DynamoDB
// single-table layout. Records live under the owning user's partition,
// so every read and delete is scoped by construction:
//
//	PK     = USER#<user_id>      SK     = PROBLEM#<problem_id>
//	GSI1PK = USER#<user_id>      GSI1SK = CREATED#<RFC3339Nano>
//
// GSI1 serves the recency-ordered history listing.
type ProblemRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewProblemRepository creates a new ProblemRepository
func NewProblemRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) ports.ProblemRepository {
	return &ProblemRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// problemItem represents the DynamoDB item structure for a solved problem
type problemItem struct {
	PK          string     `dynamodbav:"PK"`
	SK          string     `dynamodbav:"SK"`
	GSI1PK      string     `dynamodbav:"GSI1PK"`
	GSI1SK      string     `dynamodbav:"GSI1SK"`
	EntityType  string     `dynamodbav:"EntityType"`
	ProblemID   string     `dynamodbav:"ProblemID"`
	UserID      string     `dynamodbav:"UserID"`
	Question    string     `dynamodbav:"Question"`
	Answer      answerItem `dynamodbav:"Answer"`
	FileName    string     `dynamodbav:"FileName"`
	ContentType string     `dynamodbav:"ContentType"`
	FileHash    string     `dynamodbav:"FileHash"`
	CreatedAt   string     `dynamodbav:"CreatedAt"`
}

type answerItem struct {
	Question    string     `dynamodbav:"Question"`
	AnswerLabel *string    `dynamodbav:"AnswerLabel"`
	AnswerValue string     `dynamodbav:"AnswerValue"`
	Explanation string     `dynamodbav:"Explanation"`
	Steps       []stepItem `dynamodbav:"Steps"`
	Confidence  float64    `dynamodbav:"Confidence"`
}

type stepItem struct {
	StepNumber  int     `dynamodbav:"StepNumber"`
	Description string  `dynamodbav:"Description"`
	Calculation *string `dynamodbav:"Calculation"`
}

func userKey(userID string) string       { return fmt.Sprintf("USER#%s", userID) }
func problemKey(problemID string) string { return fmt.Sprintf("PROBLEM#%s", problemID) }

// Save persists a solved-problem record
func (r *ProblemRepository) Save(ctx context.Context, problem *entities.MathProblem) error {
	item := toItem(problem)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("marshal problem: %w", err))
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save problem",
			zap.String("problemID", problem.ID().String()),
			zap.String("userID", problem.UserID()),
			zap.Error(err),
		)
		return pkgerrors.NewUpstreamError("dynamodb", err)
	}

	return nil
}

// GetByUserID retrieves a user's records, most recent first
func (r *ProblemRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entities.MathProblem, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(userKey(userID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("build expression: %w", err))
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false), // newest first
		Limit:                     aws.Int32(int32(limit)),
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		r.logger.Error("Failed to query history",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewUpstreamError("dynamodb", err)
	}

	problems := make([]*entities.MathProblem, 0, len(out.Items))
	for _, raw := range out.Items {
		var item problemItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("unmarshal problem: %w", err))
		}
		problem, err := fromItem(item)
		if err != nil {
			return nil, err
		}
		problems = append(problems, problem)
	}

	return problems, nil
}

// GetByID retrieves a single record owned by the given user
func (r *ProblemRepository) GetByID(ctx context.Context, userID, problemID string) (*entities.MathProblem, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": userKey(userID),
		"SK": problemKey(problemID),
	})
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("marshal key: %w", err))
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("dynamodb", err)
	}
	if len(out.Item) == 0 {
		return nil, pkgerrors.NewNotFoundError("problem")
	}

	var item problemItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("unmarshal problem: %w", err))
	}

	return fromItem(item)
}

// Delete removes a record owned by the given user. The key includes the
// caller's user id, so a record owned by someone else fails the existence
// condition exactly like an absent one.
func (r *ProblemRepository) Delete(ctx context.Context, userID, problemID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": userKey(userID),
		"SK": problemKey(problemID),
	})
	if err != nil {
		return pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("marshal key: %w", err))
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return pkgerrors.NewNotFoundError("problem")
		}
		r.logger.Error("Failed to delete problem",
			zap.String("userID", userID),
			zap.String("problemID", problemID),
			zap.Error(err),
		)
		return pkgerrors.NewUpstreamError("dynamodb", err)
	}

	return nil
}

func toItem(problem *entities.MathProblem) problemItem {
	answer := problem.Answer()
	steps := make([]stepItem, 0, len(answer.Steps))
	for _, s := range answer.Steps {
		steps = append(steps, stepItem{
			StepNumber:  s.StepNumber,
			Description: s.Description,
			Calculation: s.Calculation,
		})
	}

	createdAt := problem.CreatedAt().UTC()

	return problemItem{
		PK:         userKey(problem.UserID()),
		SK:         problemKey(problem.ID().String()),
		GSI1PK:     userKey(problem.UserID()),
		GSI1SK:     fmt.Sprintf("CREATED#%s", createdAt.Format(time.RFC3339Nano)),
		EntityType: "PROBLEM",
		ProblemID:  problem.ID().String(),
		UserID:     problem.UserID(),
		Question:   problem.Question(),
		Answer: answerItem{
			Question:    answer.Question,
			AnswerLabel: answer.AnswerLabel,
			AnswerValue: answer.AnswerValue,
			Explanation: answer.Explanation,
			Steps:       steps,
			Confidence:  answer.Confidence,
		},
		FileName:    problem.FileName(),
		ContentType: problem.ContentType(),
		FileHash:    problem.FileHash(),
		CreatedAt:   createdAt.Format(time.RFC3339Nano),
	}
}

func fromItem(item problemItem) (*entities.MathProblem, error) {
	id, err := valueobjects.NewProblemIDFromString(item.ProblemID)
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("corrupt problem id %q: %w", item.ProblemID, err))
	}

	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("dynamodb", fmt.Errorf("corrupt timestamp %q: %w", item.CreatedAt, err))
	}

	steps := make([]entities.SolutionStep, 0, len(item.Answer.Steps))
	for _, s := range item.Answer.Steps {
		steps = append(steps, entities.SolutionStep{
			StepNumber:  s.StepNumber,
			Description: s.Description,
			Calculation: s.Calculation,
		})
	}

	answer := entities.MathAnswer{
		Question:    item.Answer.Question,
		AnswerLabel: item.Answer.AnswerLabel,
		AnswerValue: item.Answer.AnswerValue,
		Explanation: item.Answer.Explanation,
		Steps:       steps,
		Confidence:  item.Answer.Confidence,
	}

	return entities.ReconstructMathProblem(
		id,
		item.UserID,
		item.Question,
		answer,
		item.FileName,
		item.ContentType,
		item.FileHash,
		createdAt,
	), nil
}
