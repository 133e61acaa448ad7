package usecases

import (
	"context"

	"storecore/internal/domain/ledger"
	"storecore/internal/shared/logger"
)

type mockLedgerRepository struct {
	InsertFunc          func(ctx context.Context, r *ledger.Record) error
	ReplaceCategoryFunc func(ctx context.Context, ownerID, category string, replacement *ledger.Record) (int, error)
	ZeroCategoryFunc    func(ctx context.Context, ownerID, category string) (int, error)
	DeleteBySIDFunc     func(ctx context.Context, ownerID, sid string) error
	ListByOwnerFunc     func(ctx context.Context, ownerID string, kind *ledger.Kind) ([]*ledger.Record, error)
	ListByCategoryFunc  func(ctx context.Context, ownerID, category string) ([]*ledger.Record, error)
}

func (m *mockLedgerRepository) Insert(ctx context.Context, r *ledger.Record) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, r)
	}
	return nil
}

func (m *mockLedgerRepository) ReplaceCategory(ctx context.Context, ownerID, category string, replacement *ledger.Record) (int, error) {
	if m.ReplaceCategoryFunc != nil {
		return m.ReplaceCategoryFunc(ctx, ownerID, category, replacement)
	}
	return 0, nil
}

func (m *mockLedgerRepository) ZeroCategory(ctx context.Context, ownerID, category string) (int, error) {
	if m.ZeroCategoryFunc != nil {
		return m.ZeroCategoryFunc(ctx, ownerID, category)
	}
	return 0, nil
}

func (m *mockLedgerRepository) DeleteBySID(ctx context.Context, ownerID, sid string) error {
	if m.DeleteBySIDFunc != nil {
		return m.DeleteBySIDFunc(ctx, ownerID, sid)
	}
	return nil
}

func (m *mockLedgerRepository) ListByOwner(ctx context.Context, ownerID string, kind *ledger.Kind) ([]*ledger.Record, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, kind)
	}
	return nil, nil
}

func (m *mockLedgerRepository) ListByCategory(ctx context.Context, ownerID, category string) ([]*ledger.Record, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, ownerID, category)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
