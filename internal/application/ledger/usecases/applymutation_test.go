package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/domain/ledger"
	"storecore/internal/shared/errors"
)

func TestApplyMutationUseCase_Execute_Add(t *testing.T) {
	var inserted *ledger.Record
	mockRepo := &mockLedgerRepository{
		InsertFunc: func(ctx context.Context, r *ledger.Record) error {
			inserted = r
			return nil
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1", ledger.AddOperation{
		Kind:        ledger.KindExpense,
		Category:    "Combustível",
		AmountCents: 15000,
		OccurredOn:  time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Description: "posto da esquina",
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.OperationAdd, result.Operation)
	assert.Equal(t, 1, result.Affected)

	require.NotNil(t, inserted)
	assert.Equal(t, "owner-1", inserted.OwnerID())
	assert.Equal(t, int64(15000), inserted.AmountCents())
	assert.NotEmpty(t, inserted.SID())
}

func TestApplyMutationUseCase_Execute_Add_DefaultsDateToToday(t *testing.T) {
	var inserted *ledger.Record
	mockRepo := &mockLedgerRepository{
		InsertFunc: func(ctx context.Context, r *ledger.Record) error {
			inserted = r
			return nil
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	_, err := useCase.Execute(context.Background(), "owner-1", ledger.AddOperation{
		Kind:        ledger.KindIncome,
		Category:    "Salário",
		AmountCents: 500000,
	})

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.WithinDuration(t, time.Now(), inserted.OccurredOn(), time.Minute)
}

func TestApplyMutationUseCase_Execute_Replace(t *testing.T) {
	var replacement *ledger.Record
	mockRepo := &mockLedgerRepository{
		ReplaceCategoryFunc: func(ctx context.Context, ownerID, category string, r *ledger.Record) (int, error) {
			assert.Equal(t, "owner-1", ownerID)
			assert.Equal(t, "Internet", category)
			replacement = r
			return 3, nil
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1", ledger.ReplaceOperation{
		Kind:        ledger.KindExpense,
		Category:    "Internet",
		AmountCents: 9990,
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.OperationReplace, result.Operation)
	assert.Equal(t, 3, result.Affected)
	require.NotNil(t, replacement)
	assert.Equal(t, int64(9990), replacement.AmountCents())
}

func TestApplyMutationUseCase_Execute_Zero(t *testing.T) {
	mockRepo := &mockLedgerRepository{
		ZeroCategoryFunc: func(ctx context.Context, ownerID, category string) (int, error) {
			return 2, nil
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1", ledger.ZeroOperation{Category: "Lazer"})

	require.NoError(t, err)
	assert.Equal(t, ledger.OperationZero, result.Operation)
	assert.Equal(t, 2, result.Affected)
}

func TestApplyMutationUseCase_Execute_Zero_EmptyCategoryIsSuccess(t *testing.T) {
	mockRepo := &mockLedgerRepository{
		ZeroCategoryFunc: func(ctx context.Context, ownerID, category string) (int, error) {
			return 0, nil
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1", ledger.ZeroOperation{Category: "Lazer"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Affected)
}

func TestApplyMutationUseCase_Execute_DeleteByID(t *testing.T) {
	mockRepo := &mockLedgerRepository{
		DeleteBySIDFunc: func(ctx context.Context, ownerID, sid string) error {
			assert.Equal(t, "owner-1", ownerID)
			assert.Equal(t, "lr_abc123", sid)
			return nil
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1", ledger.DeleteByIDOperation{SID: "lr_abc123"})

	require.NoError(t, err)
	assert.Equal(t, ledger.OperationDeleteByID, result.Operation)
	assert.Equal(t, 1, result.Affected)
}

func TestApplyMutationUseCase_Execute_DeleteByID_NotFoundSurfaces(t *testing.T) {
	mockRepo := &mockLedgerRepository{
		DeleteBySIDFunc: func(ctx context.Context, ownerID, sid string) error {
			return errors.NewNotFoundError("record not found")
		},
	}

	useCase := NewApplyMutationUseCase(mockRepo, testLogger())
	_, err := useCase.Execute(context.Background(), "owner-1", ledger.DeleteByIDOperation{SID: "lr_missing"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestApplyMutationUseCase_Execute_InvalidOperation(t *testing.T) {
	useCase := NewApplyMutationUseCase(&mockLedgerRepository{}, testLogger())

	tests := []struct {
		name string
		op   ledger.Operation
	}{
		{"add without category", ledger.AddOperation{Kind: ledger.KindExpense}},
		{"add with invalid kind", ledger.AddOperation{Kind: "imposto", Category: "Outros"}},
		{"zero without category", ledger.ZeroOperation{}},
		{"delete without sid", ledger.DeleteByIDOperation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), "owner-1", tt.op)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestApplyMutationUseCase_Execute_MissingOwner(t *testing.T) {
	useCase := NewApplyMutationUseCase(&mockLedgerRepository{}, testLogger())

	_, err := useCase.Execute(context.Background(), "", ledger.ZeroOperation{Category: "Lazer"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
