// Package constants defines shared constant values used across the application.
package constants

// Context keys for values carried through gin contexts
const (
	ContextKeyOwnerID   = "owner_id"
	ContextKeyToken     = "webhook_token"
	ContextKeyRequestID = "request_id"
)

// Environment names for migration strategy selection
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableEntitlements       = "entitlements"
	TableLedgerRecords      = "ledger_records"
	TableWebhookCredentials = "webhook_credentials"
)
