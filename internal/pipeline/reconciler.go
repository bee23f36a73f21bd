// internal/pipeline/reconciler.go
package pipeline

import (
	"strings"

	"github.com/territoryiq/backend-go/internal/domain"
)

// Reconciler resolves free-text dealer names from a sales report to account
// numbers using a registry snapshot scoped to one rep. Matching is exact and
// case-sensitive after trimming surrounding whitespace; unmatched names are
// collected once each, in first-seen order.
type Reconciler struct {
	registry       map[string]string
	unmatched      map[string]struct{}
	unmatchedOrder []string
}

// NewReconciler builds a reconciler from a registry snapshot. Registry names
// are trimmed so a trailing space in the dealer list does not break every
// lookup.
func NewReconciler(entries []domain.RegistryEntry) *Reconciler {
	registry := make(map[string]string, len(entries))
	for _, e := range entries {
		registry[strings.TrimSpace(e.DealerName)] = e.AccountNumber
	}
	return &Reconciler{
		registry:  registry,
		unmatched: make(map[string]struct{}),
	}
}

// Resolve returns the account number for a dealer name, or false when the
// name is not in the registry. Unmatched names are recorded for reporting.
func (r *Reconciler) Resolve(dealerName string) (string, bool) {
	name := strings.TrimSpace(dealerName)
	if account, ok := r.registry[name]; ok {
		return account, true
	}
	if _, seen := r.unmatched[name]; !seen {
		r.unmatched[name] = struct{}{}
		r.unmatchedOrder = append(r.unmatchedOrder, name)
	}
	return "", false
}

// Unmatched returns the deduplicated unmatched names in first-seen order.
func (r *Reconciler) Unmatched() []string {
	return r.unmatchedOrder
}
