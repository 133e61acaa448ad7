package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storecore/internal/domain/ledger"
	"storecore/internal/infrastructure/persistence/mappers"
	"storecore/internal/infrastructure/persistence/models"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// LedgerRepositoryImpl implements the ledger.Repository interface
type LedgerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LedgerRecordMapper
	logger logger.Interface
}

// NewLedgerRepository creates a new ledger repository instance
func NewLedgerRepository(db *gorm.DB, logger logger.Interface) ledger.Repository {
	return &LedgerRepositoryImpl{
		db:     db,
		mapper: mappers.NewLedgerRecordMapper(),
		logger: logger,
	}
}

// Insert inserts one new record
func (r *LedgerRepositoryImpl) Insert(ctx context.Context, record *ledger.Record) error {
	model := r.mapper.ToModel(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to insert ledger record",
			"owner_id", record.OwnerID(),
			"category", record.Category(),
			"error", err)
		return mapStoreError(err, "failed to insert ledger record")
	}

	if err := record.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ledger record ID: %w", err)
	}

	return nil
}

// ReplaceCategory removes all records in (ownerID, category) and inserts the
// replacement in one transaction. A concurrent reader sees either the old
// rows or exactly the one new row, never a mix.
func (r *LedgerRepositoryImpl) ReplaceCategory(ctx context.Context, ownerID, category string, replacement *ledger.Record) (int, error) {
	model := r.mapper.ToModel(replacement)
	removed := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("owner_id = ? AND category = ?", ownerID, category).
			Delete(&models.LedgerRecordModel{})
		if result.Error != nil {
			return result.Error
		}
		removed = int(result.RowsAffected)

		return tx.Create(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to replace ledger category",
			"owner_id", ownerID,
			"category", category,
			"error", err)
		return 0, mapStoreError(err, "failed to replace ledger category")
	}

	if err := replacement.SetID(model.ID); err != nil {
		return 0, fmt.Errorf("failed to set ledger record ID: %w", err)
	}

	return removed, nil
}

// ZeroCategory removes all records in (ownerID, category). Removing zero
// rows is a successful no-op.
func (r *LedgerRepositoryImpl) ZeroCategory(ctx context.Context, ownerID, category string) (int, error) {
	removed := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("owner_id = ? AND category = ?", ownerID, category).
			Delete(&models.LedgerRecordModel{})
		if result.Error != nil {
			return result.Error
		}
		removed = int(result.RowsAffected)
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to zero ledger category",
			"owner_id", ownerID,
			"category", category,
			"error", err)
		return 0, mapStoreError(err, "failed to zero ledger category")
	}

	return removed, nil
}

// DeleteBySID removes one record scoped to the owner. A record belonging to
// another tenant is indistinguishable from a missing one.
func (r *LedgerRepositoryImpl) DeleteBySID(ctx context.Context, ownerID, sid string) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND sid = ?", ownerID, sid).
		Delete(&models.LedgerRecordModel{})

	if result.Error != nil {
		r.logger.Errorw("failed to delete ledger record",
			"owner_id", ownerID,
			"sid", sid,
			"error", result.Error)
		return mapStoreError(result.Error, "failed to delete ledger record")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ledger record not found")
	}

	return nil
}

// ListByOwner returns all records for an owner, optionally filtered by kind
func (r *LedgerRepositoryImpl) ListByOwner(ctx context.Context, ownerID string, kind *ledger.Kind) ([]*ledger.Record, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if kind != nil {
		query = query.Where("kind = ?", kind.String())
	}

	var mods []*models.LedgerRecordModel
	if err := query.Order("occurred_on DESC, id DESC").Find(&mods).Error; err != nil {
		r.logger.Errorw("failed to list ledger records", "owner_id", ownerID, "error", err)
		return nil, mapStoreError(err, "failed to list ledger records")
	}

	return r.mapper.ToEntities(mods)
}

// ListByCategory returns all records in (ownerID, category)
func (r *LedgerRepositoryImpl) ListByCategory(ctx context.Context, ownerID, category string) ([]*ledger.Record, error) {
	var mods []*models.LedgerRecordModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND category = ?", ownerID, category).
		Order("occurred_on DESC, id DESC").
		Find(&mods).Error; err != nil {
		r.logger.Errorw("failed to list ledger category",
			"owner_id", ownerID,
			"category", category,
			"error", err)
		return nil, mapStoreError(err, "failed to list ledger category")
	}

	return r.mapper.ToEntities(mods)
}
