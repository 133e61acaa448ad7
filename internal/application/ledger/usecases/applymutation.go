package usecases

import (
	"context"
	"fmt"
	"time"

	"storecore/internal/domain/ledger"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/id"
	"storecore/internal/shared/logger"
)

// ApplyMutationUseCase applies one typed ledger operation on behalf of an
// owner. Dispatch is an exhaustive switch over the operation types, so a
// new operation cannot be added without deciding its write path here.
type ApplyMutationUseCase struct {
	ledgerRepo ledger.Repository
	logger     logger.Interface
}

// NewApplyMutationUseCase creates a new apply mutation use case
func NewApplyMutationUseCase(
	ledgerRepo ledger.Repository,
	logger logger.Interface,
) *ApplyMutationUseCase {
	return &ApplyMutationUseCase{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Execute executes the apply mutation use case
func (uc *ApplyMutationUseCase) Execute(
	ctx context.Context,
	ownerID string,
	op ledger.Operation,
) (*ledger.MutationResult, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if err := op.Validate(); err != nil {
		uc.logger.Warnw("invalid ledger operation",
			"owner_id", ownerID,
			"operation", op.Type(),
			"error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	uc.logger.Infow("applying ledger mutation",
		"owner_id", ownerID,
		"operation", op.Type())

	switch o := op.(type) {
	case ledger.AddOperation:
		rec, err := uc.newRecord(ownerID, o.Kind, o.Category, o.AmountCents, o.OccurredOn, o.Description)
		if err != nil {
			return nil, err
		}
		if err := uc.ledgerRepo.Insert(ctx, rec); err != nil {
			return nil, err
		}
		return &ledger.MutationResult{Operation: ledger.OperationAdd, Affected: 1}, nil

	case ledger.ReplaceOperation:
		rec, err := uc.newRecord(ownerID, o.Kind, o.Category, o.AmountCents, o.OccurredOn, o.Description)
		if err != nil {
			return nil, err
		}
		removed, err := uc.ledgerRepo.ReplaceCategory(ctx, ownerID, o.Category, rec)
		if err != nil {
			return nil, err
		}
		return &ledger.MutationResult{Operation: ledger.OperationReplace, Affected: removed}, nil

	case ledger.ZeroOperation:
		removed, err := uc.ledgerRepo.ZeroCategory(ctx, ownerID, o.Category)
		if err != nil {
			return nil, err
		}
		return &ledger.MutationResult{Operation: ledger.OperationZero, Affected: removed}, nil

	case ledger.DeleteByIDOperation:
		if err := uc.ledgerRepo.DeleteBySID(ctx, ownerID, o.SID); err != nil {
			return nil, err
		}
		return &ledger.MutationResult{Operation: ledger.OperationDeleteByID, Affected: 1}, nil

	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported operation: %s", op.Type()))
	}
}

func (uc *ApplyMutationUseCase) newRecord(
	ownerID string,
	kind ledger.Kind,
	category string,
	amountCents int64,
	occurredOn time.Time,
	description string,
) (*ledger.Record, error) {
	sid, err := id.NewLedgerRecordID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record ID: %w", err)
	}
	rec, err := ledger.NewRecord(sid, ownerID, kind, category, amountCents, occurredOn, description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return rec, nil
}
