package migration

import (
	"storecore/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.EntitlementModel{},
		&models.LedgerRecordModel{},
		&models.WebhookCredentialModel{},
	}
}
