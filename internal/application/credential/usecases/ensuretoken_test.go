package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/domain/credential"
	"storecore/internal/infrastructure/token"
	"storecore/internal/shared/errors"
)

func mustCredential(t *testing.T, ownerID, tokenValue string) *credential.Credential {
	t.Helper()
	cred, err := credential.NewCredential("whc_test1234", ownerID, tokenValue)
	require.NoError(t, err)
	require.NoError(t, cred.SetID(1))
	return cred
}

func TestEnsureTokenUseCase_Execute_ProvisionsNewToken(t *testing.T) {
	var created *credential.Credential
	mockRepo := &mockCredentialRepository{
		CreateFunc: func(ctx context.Context, c *credential.Credential) error {
			created = c
			return c.SetID(1)
		},
	}

	useCase := NewEnsureTokenUseCase(mockRepo, token.NewGenerator(), testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, result.Created)
	assert.Equal(t, "owner-1", result.OwnerID)
	assert.True(t, strings.HasPrefix(result.Token, token.PrefixWebhook))
	assert.Nil(t, result.RotatedAt)
}

func TestEnsureTokenUseCase_Execute_ReturnsExistingToken(t *testing.T) {
	existing := mustCredential(t, "owner-1", "whk_existingtoken")
	mockRepo := &mockCredentialRepository{
		GetByOwnerFunc: func(ctx context.Context, ownerID string) (*credential.Credential, error) {
			return existing, nil
		},
		CreateFunc: func(ctx context.Context, c *credential.Credential) error {
			t.Fatal("a second provisioning must not insert")
			return nil
		},
	}

	useCase := NewEnsureTokenUseCase(mockRepo, token.NewGenerator(), testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "whk_existingtoken", result.Token)
}

func TestEnsureTokenUseCase_Execute_LostRaceReturnsWinner(t *testing.T) {
	winner := mustCredential(t, "owner-1", "whk_winnertoken")
	calls := 0
	mockRepo := &mockCredentialRepository{
		GetByOwnerFunc: func(ctx context.Context, ownerID string) (*credential.Credential, error) {
			calls++
			if calls == 1 {
				return nil, errors.NewNotFoundError("credential not found")
			}
			return winner, nil
		},
		CreateFunc: func(ctx context.Context, c *credential.Credential) error {
			return errors.NewConflictError("credential already exists for owner")
		},
	}

	useCase := NewEnsureTokenUseCase(mockRepo, token.NewGenerator(), testLogger())
	result, err := useCase.Execute(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "whk_winnertoken", result.Token)
}

func TestEnsureTokenUseCase_Execute_MissingOwner(t *testing.T) {
	useCase := NewEnsureTokenUseCase(&mockCredentialRepository{}, token.NewGenerator(), testLogger())

	_, err := useCase.Execute(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
