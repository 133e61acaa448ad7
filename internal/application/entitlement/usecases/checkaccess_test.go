package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
)

func TestCheckAccessUseCase_Execute(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		grants func(t *testing.T) []*entitlement.Entitlement
		access bool
	}{
		{
			name: "purchase grants access",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return []*entitlement.Entitlement{mustPurchase(t, "user-1", "summarizer")}
			},
			access: true,
		},
		{
			name: "fresh trial grants access",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return []*entitlement.Entitlement{mustTrial(t, "user-1", "summarizer")}
			},
			access: true,
		},
		{
			name: "expired trial does not grant access",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return []*entitlement.Entitlement{
					mustExpiredTrial(t, "user-1", "summarizer", now.Add(-72*time.Hour)),
				}
			},
			access: false,
		},
		{
			name: "paid rental in window grants access",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return []*entitlement.Entitlement{
					mustRental(t, "user-1", "summarizer",
						now.Add(-time.Hour), now.Add(24*time.Hour),
						entitlement.PaymentStatusActive),
				}
			},
			access: true,
		},
		{
			name: "pending rental does not grant access",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return []*entitlement.Entitlement{
					mustRental(t, "user-1", "summarizer",
						now.Add(-time.Hour), now.Add(24*time.Hour),
						entitlement.PaymentStatusPending),
				}
			},
			access: false,
		},
		{
			name: "purchase outlives an expired trial for the same product",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return []*entitlement.Entitlement{
					mustExpiredTrial(t, "user-1", "summarizer", now.Add(-96*time.Hour)),
					mustPurchase(t, "user-1", "summarizer"),
				}
			},
			access: true,
		},
		{
			name: "disabled grant blocks access outright",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				disabled := mustPurchase(t, "user-1", "summarizer")
				disabled.Disable()
				return []*entitlement.Entitlement{disabled}
			},
			access: false,
		},
		{
			name: "no grants means no access",
			grants: func(t *testing.T) []*entitlement.Entitlement {
				return nil
			},
			access: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockEntitlementRepository{
				GetByUserAndProductFunc: func(ctx context.Context, userID, productSlug string) ([]*entitlement.Entitlement, error) {
					return tt.grants(t), nil
				},
			}

			useCase := NewCheckAccessUseCase(mockRepo, testPolicy(), testLogger())
			result, err := useCase.Execute(context.Background(), "user-1", "summarizer")

			require.NoError(t, err)
			assert.Equal(t, tt.access, result.HasAccess)
			assert.Equal(t, "user-1", result.UserID)
			assert.Equal(t, "summarizer", result.ProductSlug)
		})
	}
}

func TestCheckAccessUseCase_Execute_FailsClosed(t *testing.T) {
	mockRepo := &mockEntitlementRepository{
		GetByUserAndProductFunc: func(ctx context.Context, userID, productSlug string) ([]*entitlement.Entitlement, error) {
			return nil, errors.NewTransientError("store unavailable")
		},
	}

	useCase := NewCheckAccessUseCase(mockRepo, testPolicy(), testLogger())
	result, err := useCase.Execute(context.Background(), "user-1", "summarizer")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsTransientError(err))
}

func TestCheckAccessUseCase_Execute_Validation(t *testing.T) {
	useCase := NewCheckAccessUseCase(&mockEntitlementRepository{}, testPolicy(), testLogger())

	_, err := useCase.Execute(context.Background(), "", "summarizer")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), "user-1", "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
