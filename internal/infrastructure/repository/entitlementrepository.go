package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storecore/internal/domain/entitlement"
	"storecore/internal/infrastructure/persistence/mappers"
	"storecore/internal/infrastructure/persistence/models"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// EntitlementRepositoryImpl implements the entitlement.Repository interface
type EntitlementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EntitlementMapper
	logger logger.Interface
}

// NewEntitlementRepository creates a new entitlement repository instance
func NewEntitlementRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &EntitlementRepositoryImpl{
		db:     db,
		mapper: mappers.NewEntitlementMapper(),
		logger: logger,
	}
}

// Create creates a new entitlement. The unique index on
// (user_id, product_slug, acquisition) turns a concurrent double insert
// into one winner and one conflict error.
func (r *EntitlementRepositoryImpl) Create(ctx context.Context, e *entitlement.Entitlement) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("grant already exists for this user and product")
		}
		r.logger.Errorw("failed to create entitlement",
			"user_id", e.UserID(),
			"product_slug", e.ProductSlug(),
			"acquisition", e.Acquisition(),
			"error", err)
		return mapStoreError(err, "failed to create entitlement")
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set entitlement ID: %w", err)
	}

	r.logger.Infow("entitlement created",
		"id", model.ID,
		"user_id", model.UserID,
		"product_slug", model.ProductSlug,
		"acquisition", model.Acquisition)

	return nil
}

// CreateWithTrialCap re-checks the concurrent-trial cap and inserts the
// trial row in one transaction. The user's trial rows are locked for the
// duration so two tabs activating trials at once serialize into one winner
// and one conflict.
func (r *EntitlementRepositoryImpl) CreateWithTrialCap(
	ctx context.Context,
	e *entitlement.Entitlement,
	maxConcurrentTrials int,
	trialDuration time.Duration,
) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activeTrials int64
		cutoff := time.Now().Add(-trialDuration)

		query := tx.Model(&models.EntitlementModel{})
		// sqlite serializes writers on its own and rejects FOR UPDATE
		if tx.Dialector.Name() == "mysql" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.
			Where("user_id = ? AND acquisition = ? AND enabled = ? AND granted_at > ?",
				e.UserID(), entitlement.AcquisitionTrial.String(), true, cutoff).
			Count(&activeTrials).Error; err != nil {
			return err
		}

		if activeTrials >= int64(maxConcurrentTrials) {
			return errors.NewConflictError("active trial limit reached")
		}

		return tx.Create(model).Error
	})
	if err != nil {
		if errors.IsConflictError(err) {
			return err
		}
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("trial already used for this product")
		}
		r.logger.Errorw("failed to activate trial",
			"user_id", e.UserID(),
			"product_slug", e.ProductSlug(),
			"error", err)
		return mapStoreError(err, "failed to activate trial")
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set entitlement ID: %w", err)
	}

	r.logger.Infow("trial activated",
		"id", model.ID,
		"user_id", model.UserID,
		"product_slug", model.ProductSlug)

	return nil
}

// Update persists mutated aggregate state. The version guard rejects
// writes racing against a newer version of the row.
func (r *EntitlementRepositoryImpl) Update(ctx context.Context, e *entitlement.Entitlement) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.EntitlementModel{}).
		Where("id = ? AND version < ?", e.ID(), e.Version()).
		Updates(map[string]interface{}{
			"expires_at":     model.ExpiresAt,
			"rental_start":   model.RentalStart,
			"rental_end":     model.RentalEnd,
			"payment_status": model.PaymentStatus,
			"enabled":        model.Enabled,
			"metadata":       model.Metadata,
			"version":        model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update entitlement", "id", e.ID(), "error", result.Error)
		return mapStoreError(result.Error, "failed to update entitlement")
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("entitlement was modified concurrently")
	}

	return nil
}

// GetBySID retrieves an entitlement by its short ID
func (r *EntitlementRepositoryImpl) GetBySID(ctx context.Context, sid string) (*entitlement.Entitlement, error) {
	var model models.EntitlementModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("entitlement not found")
		}
		r.logger.Errorw("failed to get entitlement", "sid", sid, "error", err)
		return nil, mapStoreError(err, "failed to get entitlement")
	}

	return r.mapper.ToEntity(&model)
}

// GetByUserAndProduct retrieves all grants for a user-product pair
func (r *EntitlementRepositoryImpl) GetByUserAndProduct(ctx context.Context, userID, productSlug string) ([]*entitlement.Entitlement, error) {
	var mods []*models.EntitlementModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_slug = ?", userID, productSlug).
		Find(&mods).Error; err != nil {
		r.logger.Errorw("failed to get grants",
			"user_id", userID,
			"product_slug", productSlug,
			"error", err)
		return nil, mapStoreError(err, "failed to get grants")
	}

	return r.mapper.ToEntities(mods)
}

// GetByUser retrieves all grants for a user across the catalog
func (r *EntitlementRepositoryImpl) GetByUser(ctx context.Context, userID string) ([]*entitlement.Entitlement, error) {
	var mods []*models.EntitlementModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&mods).Error; err != nil {
		r.logger.Errorw("failed to get user grants", "user_id", userID, "error", err)
		return nil, mapStoreError(err, "failed to get user grants")
	}

	return r.mapper.ToEntities(mods)
}
