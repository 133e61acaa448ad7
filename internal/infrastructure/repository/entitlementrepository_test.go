package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storecore/internal/domain/entitlement"
	"storecore/internal/infrastructure/persistence/models"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/id"
)

func newTestPurchase(t *testing.T, userID, productSlug string) *entitlement.Entitlement {
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)

	e, err := entitlement.NewPurchase(sid, userID, productSlug)
	require.NoError(t, err)
	return e
}

func newTestTrial(t *testing.T, userID, productSlug string) *entitlement.Entitlement {
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)

	e, err := entitlement.NewTrial(sid, userID, productSlug)
	require.NoError(t, err)
	return e
}

// seedTrialRow inserts a trial row directly so tests can control granted_at.
func seedTrialRow(t *testing.T, db *gorm.DB, userID, productSlug string, grantedAt time.Time) {
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)

	model := &models.EntitlementModel{
		SID:         sid,
		UserID:      userID,
		ProductSlug: productSlug,
		Acquisition: entitlement.AcquisitionTrial.String(),
		GrantedAt:   grantedAt,
		Enabled:     true,
		Version:     1,
	}
	require.NoError(t, db.Create(model).Error)
}

func TestEntitlementRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntitlementRepository(db, testLogger())
	ctx := context.Background()

	t.Run("create purchase successfully", func(t *testing.T) {
		e := newTestPurchase(t, "user-1", "summarizer")
		err := repo.Create(ctx, e)
		require.NoError(t, err)
		assert.NotZero(t, e.ID())
	})

	t.Run("duplicate user product acquisition conflicts", func(t *testing.T) {
		e := newTestPurchase(t, "user-1", "summarizer")
		err := repo.Create(ctx, e)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("same product different acquisition coexists", func(t *testing.T) {
		e := newTestTrial(t, "user-1", "summarizer")
		err := repo.Create(ctx, e)
		require.NoError(t, err)
	})
}

func TestEntitlementRepository_CreateWithTrialCap(t *testing.T) {
	trialDuration := 48 * time.Hour
	maxConcurrent := 2

	t.Run("third concurrent trial is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntitlementRepository(db, testLogger())
		ctx := context.Background()

		require.NoError(t, repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-a"), maxConcurrent, trialDuration))
		require.NoError(t, repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-b"), maxConcurrent, trialDuration))

		err := repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-c"), maxConcurrent, trialDuration)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("expired trial frees a slot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntitlementRepository(db, testLogger())
		ctx := context.Background()

		seedTrialRow(t, db, "user-1", "product-a", time.Now().Add(-72*time.Hour))
		require.NoError(t, repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-b"), maxConcurrent, trialDuration))

		err := repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-c"), maxConcurrent, trialDuration)
		require.NoError(t, err)
	})

	t.Run("trial cannot be reused for the same product", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntitlementRepository(db, testLogger())
		ctx := context.Background()

		// Spent trial from months ago does not count against the cap but
		// still blocks a second trial for the same product.
		seedTrialRow(t, db, "user-1", "product-a", time.Now().Add(-30*24*time.Hour))

		err := repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-a"), maxConcurrent, trialDuration)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("cap is scoped per user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntitlementRepository(db, testLogger())
		ctx := context.Background()

		require.NoError(t, repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-a"), maxConcurrent, trialDuration))
		require.NoError(t, repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-1", "product-b"), maxConcurrent, trialDuration))

		err := repo.CreateWithTrialCap(ctx,
			newTestTrial(t, "user-2", "product-a"), maxConcurrent, trialDuration)
		require.NoError(t, err)
	})
}

func TestEntitlementRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntitlementRepository(db, testLogger())
	ctx := context.Background()

	e := newTestPurchase(t, "user-1", "summarizer")
	require.NoError(t, repo.Create(ctx, e))

	t.Run("persist disabled flag", func(t *testing.T) {
		e.Disable()
		require.NoError(t, repo.Update(ctx, e))

		found, err := repo.GetBySID(ctx, e.SID())
		require.NoError(t, err)
		assert.False(t, found.Enabled())
		assert.Equal(t, e.Version(), found.Version())
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		stale, err := repo.GetBySID(ctx, e.SID())
		require.NoError(t, err)

		// Another writer bumps the row first.
		e.Enable()
		require.NoError(t, repo.Update(ctx, e))

		stale.Enable()
		err = repo.Update(ctx, stale)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestEntitlementRepository_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntitlementRepository(db, testLogger())
	ctx := context.Background()

	purchase := newTestPurchase(t, "user-1", "summarizer")
	require.NoError(t, repo.Create(ctx, purchase))
	trial := newTestTrial(t, "user-1", "translator")
	require.NoError(t, repo.Create(ctx, trial))
	other := newTestPurchase(t, "user-2", "summarizer")
	require.NoError(t, repo.Create(ctx, other))

	t.Run("get by sid", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, purchase.SID())
		require.NoError(t, err)
		assert.Equal(t, "user-1", found.UserID())
		assert.Equal(t, entitlement.AcquisitionPurchase, found.Acquisition())
	})

	t.Run("get by sid not found", func(t *testing.T) {
		_, err := repo.GetBySID(ctx, "ent_missing")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("get by user and product", func(t *testing.T) {
		found, err := repo.GetByUserAndProduct(ctx, "user-1", "summarizer")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, purchase.SID(), found[0].SID())
	})

	t.Run("get by user returns only that user's grants", func(t *testing.T) {
		found, err := repo.GetByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, found, 2)
		for _, e := range found {
			assert.Equal(t, "user-1", e.UserID())
		}
	})
}
