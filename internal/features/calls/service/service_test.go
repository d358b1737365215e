package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"carrier-sales/internal/features/calls/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCallRepository is a mock implementation of ports.CallRepository
type MockCallRepository struct {
	mock.Mock
}

func (m *MockCallRepository) Insert(ctx context.Context, call *domain.Call) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

// MockInteractionRepository is a mock implementation of ports.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Insert(ctx context.Context, i *domain.Interaction) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListByMC(ctx context.Context, mcNumber string) ([]domain.Interaction, error) {
	args := m.Called(ctx, mcNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interaction), args.Error(1)
}

var testNow = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func newTestService(calls *MockCallRepository, interactions *MockInteractionRepository) *CallServiceImpl {
	svc := NewCallService(calls, interactions)
	svc.now = func() time.Time { return testNow }
	svc.newID = func(prefix string) string { return prefix + "test0001" }
	return svc
}

func TestLogCall(t *testing.T) {
	t.Run("Stored", func(t *testing.T) {
		calls := new(MockCallRepository)
		svc := newTestService(calls, new(MockInteractionRepository))

		calls.On("Insert", mock.Anything, mock.MatchedBy(func(c *domain.Call) bool {
			return c.ID == "CALL-test0001" && c.CallID == "hr-991" && c.MCNumber == "123456" &&
				c.Outcome == domain.OutcomeNegotiationFailed && c.CreatedAt.Equal(testNow)
		})).Return(nil).Once()

		receipt, err := svc.LogCall(context.Background(), domain.Call{
			CallID: "hr-991", MCNumber: "MC-123456", Outcome: "negotiation_failed", Sentiment: "frustrated",
		})
		require.NoError(t, err)
		assert.Equal(t, "CALL-test0001", receipt.ID)
		assert.Equal(t, domain.SentimentFrustrated, receipt.Sentiment)
		calls.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		calls := new(MockCallRepository)
		svc := newTestService(calls, new(MockInteractionRepository))

		_, err := svc.LogCall(context.Background(), domain.Call{CallID: "hr-1", Outcome: "maybe", Sentiment: "neutral"})
		assert.ErrorIs(t, err, domain.ErrInvalidCall)
		calls.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("StorageError", func(t *testing.T) {
		calls := new(MockCallRepository)
		svc := newTestService(calls, new(MockInteractionRepository))
		calls.On("Insert", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := svc.LogCall(context.Background(), domain.Call{CallID: "hr-1", Outcome: "booked", Sentiment: "neutral"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestLogInteraction(t *testing.T) {
	interactions := new(MockInteractionRepository)
	svc := newTestService(new(MockCallRepository), interactions)
	interactions.On("Insert", mock.Anything, mock.MatchedBy(func(i *domain.Interaction) bool {
		return i.ID == "CI-test0001" && i.MCNumber == "123456"
	})).Return(nil).Once()

	got, err := svc.LogInteraction(context.Background(), domain.Interaction{MCNumber: "MC 123456", Outcome: "booked"})
	require.NoError(t, err)
	assert.Equal(t, "CI-test0001", got.ID)
	assert.Equal(t, testNow, got.CreatedAt)

	_, err = svc.LogInteraction(context.Background(), domain.Interaction{MCNumber: "n/a"})
	assert.ErrorIs(t, err, domain.ErrInvalidInteraction)
}

func TestHistory(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		interactions := new(MockInteractionRepository)
		svc := newTestService(new(MockCallRepository), interactions)
		interactions.On("ListByMC", mock.Anything, "123456").
			Return([]domain.Interaction{{ID: "CI-2"}, {ID: "CI-1"}}, nil).Once()

		h, err := svc.History(context.Background(), "MC-123456")
		require.NoError(t, err)
		assert.Equal(t, "123456", h.MCNumber)
		assert.Equal(t, 2, h.TotalInteractions)
	})

	t.Run("NoDigits", func(t *testing.T) {
		svc := newTestService(new(MockCallRepository), new(MockInteractionRepository))
		_, err := svc.History(context.Background(), "abc")
		assert.ErrorIs(t, err, domain.ErrInvalidInteraction)
	})
}

func TestNewID(t *testing.T) {
	id := newID("CALL-")
	assert.True(t, strings.HasPrefix(id, "CALL-"))
	assert.Len(t, id, len("CALL-")+8)
}
