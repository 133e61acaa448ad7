package mappers

import (
	"fmt"

	"storecore/internal/domain/ledger"
	"storecore/internal/infrastructure/persistence/models"
)

// LedgerRecordMapper handles the conversion between domain entities and persistence models
type LedgerRecordMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.LedgerRecordModel) (*ledger.Record, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *ledger.Record) *models.LedgerRecordModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.LedgerRecordModel) ([]*ledger.Record, error)
}

type ledgerRecordMapper struct{}

// NewLedgerRecordMapper creates a new ledger record mapper
func NewLedgerRecordMapper() LedgerRecordMapper {
	return &ledgerRecordMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ledgerRecordMapper) ToEntity(model *models.LedgerRecordModel) (*ledger.Record, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ledger.ReconstructRecord(
		model.ID,
		model.SID,
		model.OwnerID,
		ledger.Kind(model.Kind),
		model.Category,
		model.AmountCents,
		model.OccurredOn,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ledger record entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ledgerRecordMapper) ToModel(entity *ledger.Record) *models.LedgerRecordModel {
	if entity == nil {
		return nil
	}

	return &models.LedgerRecordModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		OwnerID:     entity.OwnerID(),
		Kind:        entity.Kind().String(),
		Category:    entity.Category(),
		AmountCents: entity.AmountCents(),
		OccurredOn:  entity.OccurredOn(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *ledgerRecordMapper) ToEntities(mods []*models.LedgerRecordModel) ([]*ledger.Record, error) {
	entities := make([]*ledger.Record, 0, len(mods))
	for _, model := range mods {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
