package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuery struct {
	ID string
}

func (q testQuery) Validate() error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

func TestQueryBus_AskReturnsHandlerResult(t *testing.T) {
	b := NewQueryBus()

	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		return "result-" + q.(testQuery).ID, nil
	})))

	result, err := b.Ask(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "result-42", result)
}

func TestQueryBus_AskValidatesFirst(t *testing.T) {
	b := NewQueryBus()

	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		t.Fatal("handler should not run for an invalid query")
		return nil, nil
	})))

	_, err := b.Ask(context.Background(), testQuery{})
	assert.Error(t, err)
}

func TestQueryBus_AskUnregistered(t *testing.T) {
	b := NewQueryBus()

	_, err := b.Ask(context.Background(), testQuery{ID: "42"})
	assert.Error(t, err)
}
