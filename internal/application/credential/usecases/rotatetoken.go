package usecases

import (
	"context"
	"fmt"

	"storecore/internal/application/credential/dto"
	"storecore/internal/domain/credential"
	"storecore/internal/infrastructure/token"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// RotateTokenUseCase handles token rotation. The swap is a single store
// write, so at every instant exactly one token resolves for the owner;
// the old value stops verifying the moment the new one starts.
type RotateTokenUseCase struct {
	credentialRepo credential.Repository
	tokenGen       token.Generator
	logger         logger.Interface
}

// NewRotateTokenUseCase creates a new rotate token use case
func NewRotateTokenUseCase(
	credentialRepo credential.Repository,
	tokenGen token.Generator,
	logger logger.Interface,
) *RotateTokenUseCase {
	return &RotateTokenUseCase{
		credentialRepo: credentialRepo,
		tokenGen:       tokenGen,
		logger:         logger,
	}
}

// Execute executes the rotate token use case
func (uc *RotateTokenUseCase) Execute(
	ctx context.Context,
	ownerID string,
) (*dto.TokenResponse, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("owner ID is required")
	}

	cred, err := uc.credentialRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	value, err := uc.tokenGen.Generate(token.PrefixWebhook)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := cred.Rotate(value); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.credentialRepo.UpdateToken(ctx, cred); err != nil {
		return nil, err
	}

	uc.logger.Infow("webhook token rotated",
		"owner_id", ownerID,
		"token", utils.MaskToken(cred.Token()))

	return toTokenResponse(cred, false), nil
}
