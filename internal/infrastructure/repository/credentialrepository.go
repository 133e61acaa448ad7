package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storecore/internal/domain/credential"
	"storecore/internal/infrastructure/persistence/mappers"
	"storecore/internal/infrastructure/persistence/models"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// CredentialRepositoryImpl implements the credential.Repository interface
type CredentialRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CredentialMapper
	logger logger.Interface
}

// NewCredentialRepository creates a new credential repository instance
func NewCredentialRepository(db *gorm.DB, logger logger.Interface) credential.Repository {
	return &CredentialRepositoryImpl{
		db:     db,
		mapper: mappers.NewCredentialMapper(),
		logger: logger,
	}
}

// Create creates a new credential
func (r *CredentialRepositoryImpl) Create(ctx context.Context, c *credential.Credential) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("credential already exists for this owner")
		}
		r.logger.Errorw("failed to create credential", "owner_id", c.OwnerID(), "error", err)
		return mapStoreError(err, "failed to create credential")
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set credential ID: %w", err)
	}

	r.logger.Infow("webhook credential created", "owner_id", c.OwnerID(), "sid", c.SID())
	return nil
}

// UpdateToken atomically replaces the token value of the owner's live
// credential. The single-row UPDATE commits or does not; there is no
// window in which both the old and new token resolve.
func (r *CredentialRepositoryImpl) UpdateToken(ctx context.Context, c *credential.Credential) error {
	result := r.db.WithContext(ctx).
		Model(&models.WebhookCredentialModel{}).
		Where("owner_id = ?", c.OwnerID()).
		Updates(map[string]interface{}{
			"token":      c.Token(),
			"rotated_at": c.RotatedAt(),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to rotate credential", "owner_id", c.OwnerID(), "error", result.Error)
		return mapStoreError(result.Error, "failed to rotate credential")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("credential not found")
	}

	r.logger.Infow("webhook credential rotated", "owner_id", c.OwnerID(), "sid", c.SID())
	return nil
}

// GetByOwner retrieves the live credential for an owner
func (r *CredentialRepositoryImpl) GetByOwner(ctx context.Context, ownerID string) (*credential.Credential, error) {
	var model models.WebhookCredentialModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("credential not found")
		}
		r.logger.Errorw("failed to get credential by owner", "owner_id", ownerID, "error", err)
		return nil, mapStoreError(err, "failed to get credential")
	}

	return r.mapper.ToEntity(&model)
}

// GetByToken resolves a presented token through the unique token index.
// The caller surfaces any failure as a generic unauthorized error.
func (r *CredentialRepositoryImpl) GetByToken(ctx context.Context, token string) (*credential.Credential, error) {
	var model models.WebhookCredentialModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("credential not found")
		}
		r.logger.Errorw("failed to resolve token", "error", err)
		return nil, mapStoreError(err, "failed to resolve token")
	}

	return r.mapper.ToEntity(&model)
}
