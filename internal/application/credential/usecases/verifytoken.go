package usecases

import (
	"context"

	"storecore/internal/domain/credential"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// VerifyTokenUseCase resolves a presented webhook token to its owner.
// Every failure mode collapses into one unauthorized error, so callers
// cannot distinguish an unknown token from a rotated one.
type VerifyTokenUseCase struct {
	credentialRepo credential.Repository
	logger         logger.Interface
}

// NewVerifyTokenUseCase creates a new verify token use case
func NewVerifyTokenUseCase(
	credentialRepo credential.Repository,
	logger logger.Interface,
) *VerifyTokenUseCase {
	return &VerifyTokenUseCase{
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Execute resolves the token and returns the owning resource ID
func (uc *VerifyTokenUseCase) Execute(
	ctx context.Context,
	tokenValue string,
) (string, error) {
	if tokenValue == "" {
		return "", errors.NewUnauthorizedError("invalid token")
	}

	cred, err := uc.credentialRepo.GetByToken(ctx, tokenValue)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("token verification failed",
				"token", utils.MaskToken(tokenValue))
			return "", errors.NewUnauthorizedError("invalid token")
		}
		return "", err
	}

	return cred.OwnerID(), nil
}
