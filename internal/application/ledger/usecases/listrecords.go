package usecases

import (
	"context"

	"storecore/internal/application/ledger/dto"
	"storecore/internal/domain/ledger"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// ListRecordsUseCase handles listing an owner's ledger records with an
// optional kind filter
type ListRecordsUseCase struct {
	ledgerRepo ledger.Repository
	logger     logger.Interface
}

// NewListRecordsUseCase creates a new list records use case
func NewListRecordsUseCase(
	ledgerRepo ledger.Repository,
	logger logger.Interface,
) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Execute executes the list records use case
func (uc *ListRecordsUseCase) Execute(
	ctx context.Context,
	ownerID string,
	kind *ledger.Kind,
) (*dto.ListRecordsResponse, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("owner ID is required")
	}

	records, err := uc.ledgerRepo.ListByOwner(ctx, ownerID, kind)
	if err != nil {
		uc.logger.Errorw("failed to list ledger records", "owner_id", ownerID, "error", err)
		return nil, err
	}

	responses := make([]*dto.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, dto.FromRecord(rec))
	}

	return &dto.ListRecordsResponse{
		Records: responses,
		Total:   len(responses),
	}, nil
}
