package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/id"
	"storecore/internal/shared/logger"
)

type mockEntitlementRepository struct {
	CreateFunc              func(ctx context.Context, e *entitlement.Entitlement) error
	CreateWithTrialCapFunc  func(ctx context.Context, e *entitlement.Entitlement, maxConcurrentTrials int, trialDuration time.Duration) error
	UpdateFunc              func(ctx context.Context, e *entitlement.Entitlement) error
	GetBySIDFunc            func(ctx context.Context, sid string) (*entitlement.Entitlement, error)
	GetByUserAndProductFunc func(ctx context.Context, userID, productSlug string) ([]*entitlement.Entitlement, error)
	GetByUserFunc           func(ctx context.Context, userID string) ([]*entitlement.Entitlement, error)
}

func (m *mockEntitlementRepository) Create(ctx context.Context, e *entitlement.Entitlement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return e.SetID(1)
}

func (m *mockEntitlementRepository) CreateWithTrialCap(ctx context.Context, e *entitlement.Entitlement, maxConcurrentTrials int, trialDuration time.Duration) error {
	if m.CreateWithTrialCapFunc != nil {
		return m.CreateWithTrialCapFunc(ctx, e, maxConcurrentTrials, trialDuration)
	}
	return e.SetID(1)
}

func (m *mockEntitlementRepository) Update(ctx context.Context, e *entitlement.Entitlement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEntitlementRepository) GetBySID(ctx context.Context, sid string) (*entitlement.Entitlement, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockEntitlementRepository) GetByUserAndProduct(ctx context.Context, userID, productSlug string) ([]*entitlement.Entitlement, error) {
	if m.GetByUserAndProductFunc != nil {
		return m.GetByUserAndProductFunc(ctx, userID, productSlug)
	}
	return nil, nil
}

func (m *mockEntitlementRepository) GetByUser(ctx context.Context, userID string) ([]*entitlement.Entitlement, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, userID)
	}
	return nil, nil
}

func testPolicy() *entitlement.AccessPolicy {
	return entitlement.NewAccessPolicy(48*time.Hour, 2)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func mustPurchase(t *testing.T, userID, productSlug string) *entitlement.Entitlement {
	t.Helper()
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)
	e, err := entitlement.NewPurchase(sid, userID, productSlug)
	require.NoError(t, err)
	require.NoError(t, e.SetID(1))
	return e
}

func mustTrial(t *testing.T, userID, productSlug string) *entitlement.Entitlement {
	t.Helper()
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)
	e, err := entitlement.NewTrial(sid, userID, productSlug)
	require.NoError(t, err)
	require.NoError(t, e.SetID(1))
	return e
}

func mustRental(t *testing.T, userID, productSlug string, start, end time.Time, status entitlement.PaymentStatus) *entitlement.Entitlement {
	t.Helper()
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)
	e, err := entitlement.NewRental(sid, userID, productSlug, start, end, status)
	require.NoError(t, err)
	require.NoError(t, e.SetID(1))
	return e
}

// mustExpiredTrial builds a trial whose window closed in the past.
func mustExpiredTrial(t *testing.T, userID, productSlug string, grantedAt time.Time) *entitlement.Entitlement {
	t.Helper()
	sid, err := id.NewEntitlementID()
	require.NoError(t, err)
	e, err := entitlement.Reconstruct(entitlement.ReconstructParams{
		ID:          1,
		SID:         sid,
		UserID:      userID,
		ProductSlug: productSlug,
		Acquisition: entitlement.AcquisitionTrial,
		GrantedAt:   grantedAt,
		Enabled:     true,
		CreatedAt:   grantedAt,
		UpdatedAt:   grantedAt,
		Version:     1,
	})
	require.NoError(t, err)
	return e
}
