package usecases

import (
	"context"

	"storecore/internal/domain/credential"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

type mockCredentialRepository struct {
	CreateFunc      func(ctx context.Context, c *credential.Credential) error
	UpdateTokenFunc func(ctx context.Context, c *credential.Credential) error
	GetByOwnerFunc  func(ctx context.Context, ownerID string) (*credential.Credential, error)
	GetByTokenFunc  func(ctx context.Context, token string) (*credential.Credential, error)
}

func (m *mockCredentialRepository) Create(ctx context.Context, c *credential.Credential) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCredentialRepository) UpdateToken(ctx context.Context, c *credential.Credential) error {
	if m.UpdateTokenFunc != nil {
		return m.UpdateTokenFunc(ctx, c)
	}
	return nil
}

func (m *mockCredentialRepository) GetByOwner(ctx context.Context, ownerID string) (*credential.Credential, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerID)
	}
	return nil, errors.NewNotFoundError("credential not found")
}

func (m *mockCredentialRepository) GetByToken(ctx context.Context, token string) (*credential.Credential, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, errors.NewNotFoundError("credential not found")
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
