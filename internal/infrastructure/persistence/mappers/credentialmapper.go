package mappers

import (
	"fmt"

	"storecore/internal/domain/credential"
	"storecore/internal/infrastructure/persistence/models"
)

// CredentialMapper handles the conversion between domain entities and persistence models
type CredentialMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.WebhookCredentialModel) (*credential.Credential, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *credential.Credential) *models.WebhookCredentialModel
}

type credentialMapper struct{}

// NewCredentialMapper creates a new credential mapper
func NewCredentialMapper() CredentialMapper {
	return &credentialMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *credentialMapper) ToEntity(model *models.WebhookCredentialModel) (*credential.Credential, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := credential.ReconstructCredential(
		model.ID,
		model.SID,
		model.OwnerID,
		model.Token,
		model.CreatedAt,
		model.RotatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct credential entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *credentialMapper) ToModel(entity *credential.Credential) *models.WebhookCredentialModel {
	if entity == nil {
		return nil
	}

	return &models.WebhookCredentialModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		OwnerID:   entity.OwnerID(),
		Token:     entity.Token(),
		CreatedAt: entity.CreatedAt(),
		RotatedAt: entity.RotatedAt(),
	}
}
