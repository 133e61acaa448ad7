package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
)

func TestActivateTrialUseCase_Execute_Success(t *testing.T) {
	var created *entitlement.Entitlement
	mockRepo := &mockEntitlementRepository{
		CreateWithTrialCapFunc: func(ctx context.Context, e *entitlement.Entitlement, maxConcurrentTrials int, trialDuration time.Duration) error {
			assert.Equal(t, 2, maxConcurrentTrials)
			assert.Equal(t, 48*time.Hour, trialDuration)
			created = e
			return e.SetID(1)
		},
	}

	useCase := NewActivateTrialUseCase(mockRepo, testPolicy(), testLogger())
	result, err := useCase.Execute(context.Background(), &dto.ActivateTrialRequest{
		UserID:      "user-1",
		ProductSlug: "summarizer",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.SID(), result.SID)
	assert.Equal(t, "trial", result.Acquisition)
	assert.Equal(t, entitlement.StateTrialActive.String(), result.State)
	assert.True(t, result.Enabled)
}

func TestActivateTrialUseCase_Execute_TrialAlreadyUsed(t *testing.T) {
	// A trial spent long ago still blocks reactivation for that product.
	spent := mustExpiredTrial(t, "user-1", "summarizer", time.Now().Add(-30*24*time.Hour))
	mockRepo := &mockEntitlementRepository{
		GetByUserFunc: func(ctx context.Context, userID string) ([]*entitlement.Entitlement, error) {
			return []*entitlement.Entitlement{spent}, nil
		},
		CreateWithTrialCapFunc: func(ctx context.Context, e *entitlement.Entitlement, maxConcurrentTrials int, trialDuration time.Duration) error {
			t.Fatal("insert must not be attempted after the policy rejects")
			return nil
		},
	}

	useCase := NewActivateTrialUseCase(mockRepo, testPolicy(), testLogger())
	_, err := useCase.Execute(context.Background(), &dto.ActivateTrialRequest{
		UserID:      "user-1",
		ProductSlug: "summarizer",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestActivateTrialUseCase_Execute_TrialLimitReached(t *testing.T) {
	mockRepo := &mockEntitlementRepository{
		GetByUserFunc: func(ctx context.Context, userID string) ([]*entitlement.Entitlement, error) {
			return []*entitlement.Entitlement{
				mustTrial(t, "user-1", "product-a"),
				mustTrial(t, "user-1", "product-b"),
			}, nil
		},
	}

	useCase := NewActivateTrialUseCase(mockRepo, testPolicy(), testLogger())
	_, err := useCase.Execute(context.Background(), &dto.ActivateTrialRequest{
		UserID:      "user-1",
		ProductSlug: "product-c",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestActivateTrialUseCase_Execute_ExpiredTrialFreesSlot(t *testing.T) {
	mockRepo := &mockEntitlementRepository{
		GetByUserFunc: func(ctx context.Context, userID string) ([]*entitlement.Entitlement, error) {
			return []*entitlement.Entitlement{
				mustExpiredTrial(t, "user-1", "product-a", time.Now().Add(-72*time.Hour)),
				mustTrial(t, "user-1", "product-b"),
			}, nil
		},
	}

	useCase := NewActivateTrialUseCase(mockRepo, testPolicy(), testLogger())
	result, err := useCase.Execute(context.Background(), &dto.ActivateTrialRequest{
		UserID:      "user-1",
		ProductSlug: "product-c",
	})

	require.NoError(t, err)
	assert.Equal(t, entitlement.StateTrialActive.String(), result.State)
}

func TestActivateTrialUseCase_Execute_StoreConflictSurfaces(t *testing.T) {
	// The transactional insert is the arbiter under concurrency; its
	// conflict passes through even when the pre-check saw a free slot.
	mockRepo := &mockEntitlementRepository{
		CreateWithTrialCapFunc: func(ctx context.Context, e *entitlement.Entitlement, maxConcurrentTrials int, trialDuration time.Duration) error {
			return errors.NewConflictError("active trial limit reached")
		},
	}

	useCase := NewActivateTrialUseCase(mockRepo, testPolicy(), testLogger())
	_, err := useCase.Execute(context.Background(), &dto.ActivateTrialRequest{
		UserID:      "user-1",
		ProductSlug: "summarizer",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
