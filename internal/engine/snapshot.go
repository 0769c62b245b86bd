// Package engine implements the cash-flow and reconciliation computations.
//
// Everything in this package is a pure function over an immutable Snapshot:
// no I/O, no clock reads, no mutation of inputs. The reference day ("today")
// is always an explicit parameter, so concurrent callers and tests get
// deterministic results.
package engine

import (
	"github.com/fieldops/cashflow/internal/domain"
)

// Snapshot is a complete in-memory view of the data the engine computes
// over: accounts, ledger entries and recurring rules, as fetched by the
// caller. Canceled entries and entries lacking the date their status
// requires are dropped at construction; the latter are counted in
// SkippedEntries for diagnostics instead of disappearing silently.
type Snapshot struct {
	Accounts []*domain.Account
	Entries  []*domain.Entry
	Rules    []*domain.RecurringRule

	// SkippedEntries counts entries excluded for missing dates
	// (paid without paid-at, or unpaid without a due date).
	SkippedEntries int
}

// NewSnapshot builds a Snapshot from raw collections.
func NewSnapshot(accounts []*domain.Account, entries []*domain.Entry, rules []*domain.RecurringRule) *Snapshot {
	s := &Snapshot{
		Accounts: accounts,
		Rules:    rules,
		Entries:  make([]*domain.Entry, 0, len(entries)),
	}

	for _, e := range entries {
		switch {
		case e.Status == domain.StatusCanceled:
			continue
		case e.Status == domain.StatusPaid && e.PaidAt.IsZero():
			s.SkippedEntries++
		case e.Status != domain.StatusPaid && e.DueDate.IsZero():
			s.SkippedEntries++
		default:
			s.Entries = append(s.Entries, e)
		}
	}

	return s
}

// SelectAccounts resolves an account filter against the snapshot. An empty
// filter selects all active accounts; an explicit filter selects the named
// accounts that are active. Unknown ids are ignored.
func (s *Snapshot) SelectAccounts(ids []string) []*domain.Account {
	if len(ids) == 0 {
		selected := make([]*domain.Account, 0, len(s.Accounts))
		for _, a := range s.Accounts {
			if a.IsActive {
				selected = append(selected, a)
			}
		}
		return selected
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	selected := make([]*domain.Account, 0, len(ids))
	for _, a := range s.Accounts {
		if a.IsActive && wanted[a.ID] {
			selected = append(selected, a)
		}
	}
	return selected
}

// EntriesFor returns the snapshot entries assigned to one of the given
// accounts. Unassigned entries never appear in account-scoped views.
func (s *Snapshot) EntriesFor(accounts []*domain.Account) []*domain.Entry {
	ids := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		ids[a.ID] = true
	}

	entries := make([]*domain.Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.AccountID != "" && ids[e.AccountID] {
			entries = append(entries, e)
		}
	}
	return entries
}

// ActiveRules returns the snapshot's active recurring rules.
func (s *Snapshot) ActiveRules() []*domain.RecurringRule {
	rules := make([]*domain.RecurringRule, 0, len(s.Rules))
	for _, r := range s.Rules {
		if r.IsActive {
			rules = append(rules, r)
		}
	}
	return rules
}
