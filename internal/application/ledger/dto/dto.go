// Package dto carries the ledger webhook wire format. The field names are
// the Portuguese ones the external automations already send; they are
// translated to domain terms at this boundary and nowhere else.
package dto

import (
	"fmt"
	"math"
	"time"

	"storecore/internal/domain/ledger"
)

const wireDateLayout = "2006-01-02"

// MutationRequest is the webhook envelope for one ledger mutation.
// Required fields depend on the operation, which ToOperation enforces.
type MutationRequest struct {
	Tipo      string   `json:"tipo"`      // "receita" | "despesa"
	Valor     *float64 `json:"valor"`     // major units; required unless operacao = "zerar" or "apagar"
	Categoria string   `json:"categoria"` // required unless operacao = "apagar"
	Descricao string   `json:"descricao"`
	Data      string   `json:"data"` // "YYYY-MM-DD", defaults to today
	Operacao  string   `json:"operacao"`
	ID        string   `json:"id"` // required when operacao = "apagar"
}

// MutationResponse is the webhook success envelope
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RecordResponse represents one ledger record in list responses
type RecordResponse struct {
	ID          string    `json:"id"` // Prefixed short ID (lr_...)
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	OccurredOn  time.Time `json:"occurred_on"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListRecordsResponse represents the response for listing an owner's records
type ListRecordsResponse struct {
	Records []*RecordResponse `json:"records"`
	Total   int               `json:"total"`
}

// ToOperation translates the wire envelope into a typed ledger operation.
// All wire-level validation lives here; the returned operation is ready
// for the mutator.
func (r *MutationRequest) ToOperation() (ledger.Operation, error) {
	switch r.Operacao {
	case "adicionar":
		kind, err := parseKind(r.Tipo)
		if err != nil {
			return nil, err
		}
		if r.Valor == nil {
			return nil, fmt.Errorf("valor is required")
		}
		amountCents, err := toCents(*r.Valor)
		if err != nil {
			return nil, err
		}
		occurredOn, err := parseDate(r.Data)
		if err != nil {
			return nil, err
		}
		return ledger.AddOperation{
			Kind:        kind,
			Category:    r.Categoria,
			AmountCents: amountCents,
			OccurredOn:  occurredOn,
			Description: r.Descricao,
		}, nil

	case "substituir":
		kind, err := parseKind(r.Tipo)
		if err != nil {
			return nil, err
		}
		if r.Valor == nil {
			return nil, fmt.Errorf("valor is required")
		}
		amountCents, err := toCents(*r.Valor)
		if err != nil {
			return nil, err
		}
		occurredOn, err := parseDate(r.Data)
		if err != nil {
			return nil, err
		}
		return ledger.ReplaceOperation{
			Kind:        kind,
			Category:    r.Categoria,
			AmountCents: amountCents,
			OccurredOn:  occurredOn,
			Description: r.Descricao,
		}, nil

	case "zerar":
		return ledger.ZeroOperation{Category: r.Categoria}, nil

	case "apagar":
		if r.ID == "" {
			return nil, fmt.Errorf("id is required for operacao apagar")
		}
		return ledger.DeleteByIDOperation{SID: r.ID}, nil

	case "":
		return nil, fmt.Errorf("operacao is required")
	default:
		return nil, fmt.Errorf("unknown operacao: %s", r.Operacao)
	}
}

func parseKind(tipo string) (ledger.Kind, error) {
	switch tipo {
	case "receita":
		return ledger.KindIncome, nil
	case "despesa":
		return ledger.KindExpense, nil
	case "fatura":
		return ledger.KindInvoice, nil
	case "":
		return "", fmt.Errorf("tipo is required")
	default:
		return "", fmt.Errorf("unknown tipo: %s", tipo)
	}
}

// ParseKindFilter translates an optional tipo query value into a kind filter
func ParseKindFilter(tipo string) (*ledger.Kind, error) {
	if tipo == "" {
		return nil, nil
	}
	kind, err := parseKind(tipo)
	if err != nil {
		return nil, err
	}
	return &kind, nil
}

func parseDate(data string) (time.Time, error) {
	if data == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(wireDateLayout, data)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid data, expected YYYY-MM-DD: %s", data)
	}
	return t, nil
}

// toCents converts a major-unit amount to minor units, rounding half away
// from zero so 0.005 becomes one cent rather than disappearing. Amounts
// whose cent value does not fit in int64 are rejected rather than allowed
// to wrap.
func toCents(valor float64) (int64, error) {
	if math.IsNaN(valor) || math.IsInf(valor, 0) {
		return 0, fmt.Errorf("valor is not a finite number")
	}
	cents := math.Round(valor * 100)
	if cents >= float64(math.MaxInt64) || cents < float64(math.MinInt64) {
		return 0, fmt.Errorf("valor is out of range")
	}
	return int64(cents), nil
}

// FromRecord maps a domain record to its response form
func FromRecord(rec *ledger.Record) *RecordResponse {
	return &RecordResponse{
		ID:          rec.SID(),
		Kind:        rec.Kind().String(),
		Category:    rec.Category(),
		AmountCents: rec.AmountCents(),
		OccurredOn:  rec.OccurredOn(),
		Description: rec.Description(),
		CreatedAt:   rec.CreatedAt(),
	}
}
