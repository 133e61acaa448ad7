package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"storecore/internal/domain/entitlement"
	"storecore/internal/infrastructure/persistence/models"
)

// EntitlementMapper handles the conversion between domain entities and persistence models
type EntitlementMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.EntitlementModel) (*entitlement.Entitlement, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *entitlement.Entitlement) (*models.EntitlementModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.EntitlementModel) ([]*entitlement.Entitlement, error)
}

type entitlementMapper struct{}

// NewEntitlementMapper creates a new entitlement mapper
func NewEntitlementMapper() EntitlementMapper {
	return &entitlementMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *entitlementMapper) ToEntity(model *models.EntitlementModel) (*entitlement.Entitlement, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entitlement metadata: %w", err)
		}
	}

	entity, err := entitlement.Reconstruct(entitlement.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		UserID:        model.UserID,
		ProductSlug:   model.ProductSlug,
		Acquisition:   entitlement.AcquisitionType(model.Acquisition),
		GrantedAt:     model.GrantedAt,
		ExpiresAt:     model.ExpiresAt,
		RentalStart:   model.RentalStart,
		RentalEnd:     model.RentalEnd,
		PaymentStatus: entitlement.PaymentStatus(model.PaymentStatus),
		Enabled:       model.Enabled,
		Metadata:      metadata,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		Version:       model.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct entitlement entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *entitlementMapper) ToModel(entity *entitlement.Entitlement) (*models.EntitlementModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(entity.Metadata()) > 0 {
		raw, err := json.Marshal(entity.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entitlement metadata: %w", err)
		}
		metadata = raw
	}

	return &models.EntitlementModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		UserID:        entity.UserID(),
		ProductSlug:   entity.ProductSlug(),
		Acquisition:   entity.Acquisition().String(),
		GrantedAt:     entity.GrantedAt(),
		ExpiresAt:     entity.ExpiresAt(),
		RentalStart:   entity.RentalStart(),
		RentalEnd:     entity.RentalEnd(),
		PaymentStatus: entity.PaymentStatus().String(),
		Enabled:       entity.Enabled(),
		Metadata:      metadata,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
		Version:       entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *entitlementMapper) ToEntities(mods []*models.EntitlementModel) ([]*entitlement.Entitlement, error) {
	entities := make([]*entitlement.Entitlement, 0, len(mods))
	for _, model := range mods {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
