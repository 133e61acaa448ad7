package usecases

import (
	"context"
	"fmt"

	"storecore/internal/application/credential/dto"
	"storecore/internal/domain/credential"
	"storecore/internal/infrastructure/token"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/id"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// EnsureTokenUseCase handles idempotent token provisioning for an owner.
// Calling it again for the same owner returns the live token unchanged;
// only rotation replaces a token.
type EnsureTokenUseCase struct {
	credentialRepo credential.Repository
	tokenGen       token.Generator
	logger         logger.Interface
}

// NewEnsureTokenUseCase creates a new ensure token use case
func NewEnsureTokenUseCase(
	credentialRepo credential.Repository,
	tokenGen token.Generator,
	logger logger.Interface,
) *EnsureTokenUseCase {
	return &EnsureTokenUseCase{
		credentialRepo: credentialRepo,
		tokenGen:       tokenGen,
		logger:         logger,
	}
}

// Execute executes the ensure token use case
func (uc *EnsureTokenUseCase) Execute(
	ctx context.Context,
	ownerID string,
) (*dto.TokenResponse, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("owner ID is required")
	}

	existing, err := uc.credentialRepo.GetByOwner(ctx, ownerID)
	if err == nil {
		uc.logger.Debugw("existing token returned",
			"owner_id", ownerID,
			"token", utils.MaskToken(existing.Token()))
		return toTokenResponse(existing, false), nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	value, err := uc.tokenGen.Generate(token.PrefixWebhook)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	sid, err := id.NewCredentialID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate credential ID: %w", err)
	}

	cred, err := credential.NewCredential(sid, ownerID, value)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.credentialRepo.Create(ctx, cred); err != nil {
		// Lost a provisioning race; the winner's token is the live one.
		if errors.IsConflictError(err) {
			winner, getErr := uc.credentialRepo.GetByOwner(ctx, ownerID)
			if getErr != nil {
				return nil, getErr
			}
			return toTokenResponse(winner, false), nil
		}
		return nil, err
	}

	uc.logger.Infow("webhook token provisioned",
		"owner_id", ownerID,
		"token", utils.MaskToken(cred.Token()))

	return toTokenResponse(cred, true), nil
}

func toTokenResponse(c *credential.Credential, created bool) *dto.TokenResponse {
	return &dto.TokenResponse{
		OwnerID:   c.OwnerID(),
		Token:     c.Token(),
		Created:   created,
		CreatedAt: c.CreatedAt(),
		RotatedAt: c.RotatedAt(),
	}
}
