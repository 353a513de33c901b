/*
normalize.go - Defaulting and ordered access over partial records

PURPOSE:
  Agreement records arrive partially populated: missing payment block,
  nil item maps, nil parcel arrays. Rather than scattering nil checks
  through every builder, each entry point normalizes once and the
  builder logic assumes presence from then on.

  Item maps are keyed by decimal-string ids. Go map iteration order is
  random, but the source system emits integer-like keys in ascending
  numeric order, and first-seen order matters for the land table; the
  entry helpers therefore return items ordered by key (numeric keys
  ascending, then the rest lexicographically).

SEE ALSO:
  - types.go: The raw shapes being normalized
  - render/: The builders that consume entries
*/
package agreement

import (
	"sort"
	"strconv"
)

// =============================================================================
// NORMALIZATION
// =============================================================================

// Normalized returns a copy of the plan with every container non-nil.
func (p PaymentPlan) Normalized() PaymentPlan {
	out := p
	if out.ParcelItems == nil {
		out.ParcelItems = map[string]ParcelItem{}
	}
	if out.AgreementLevelItems == nil {
		out.AgreementLevelItems = map[string]AgreementLevelItem{}
	}
	if out.Payments == nil {
		out.Payments = []PaymentEvent{}
	}
	return out
}

// ParcelsOrEmpty returns the application's parcels, never nil.
func (a Application) ParcelsOrEmpty() []Parcel {
	if a.Parcels == nil {
		return []Parcel{}
	}
	return a.Parcels
}

// =============================================================================
// ORDERED ITEM ENTRIES
// =============================================================================

// ParcelItemEntry pairs a parcel item with its map key. ID is the
// numeric form of the key; HasID is false for non-numeric keys, which
// can never be referenced by a payment-event line item.
type ParcelItemEntry struct {
	Key   string
	ID    int64
	HasID bool
	Item  ParcelItem
}

// AgreementLevelItemEntry is the agreement-level counterpart of
// ParcelItemEntry.
type AgreementLevelItemEntry struct {
	Key   string
	ID    int64
	HasID bool
	Item  AgreementLevelItem
}

// ParcelItemEntries returns the parcel items in key order.
func (p PaymentPlan) ParcelItemEntries() []ParcelItemEntry {
	keys := sortedKeys(p.ParcelItems)
	entries := make([]ParcelItemEntry, 0, len(keys))
	for _, k := range keys {
		id, hasID := numericKey(k)
		entries = append(entries, ParcelItemEntry{Key: k, ID: id, HasID: hasID, Item: p.ParcelItems[k]})
	}
	return entries
}

// AgreementLevelItemEntries returns the agreement-level items in key order.
func (p PaymentPlan) AgreementLevelItemEntries() []AgreementLevelItemEntry {
	keys := sortedKeys(p.AgreementLevelItems)
	entries := make([]AgreementLevelItemEntry, 0, len(keys))
	for _, k := range keys {
		id, hasID := numericKey(k)
		entries = append(entries, AgreementLevelItemEntry{Key: k, ID: id, HasID: hasID, Item: p.AgreementLevelItems[k]})
	}
	return entries
}

// ParcelItemByID resolves a line item's parcel item reference.
func (p PaymentPlan) ParcelItemByID(id ItemID) (ParcelItem, bool) {
	if !id.Resolved() {
		return ParcelItem{}, false
	}
	item, ok := p.ParcelItems[strconv.FormatInt(id.Value(), 10)]
	return item, ok
}

// AgreementLevelItemByID resolves a line item's agreement-level reference.
func (p PaymentPlan) AgreementLevelItemByID(id ItemID) (AgreementLevelItem, bool) {
	if !id.Resolved() {
		return AgreementLevelItem{}, false
	}
	item, ok := p.AgreementLevelItems[strconv.FormatInt(id.Value(), 10)]
	return item, ok
}

// FirstPayment returns payments[0], the possibly prorated first payment.
func (p PaymentPlan) FirstPayment() *PaymentEvent {
	if len(p.Payments) == 0 {
		return nil
	}
	return &p.Payments[0]
}

// SubsequentPayment returns payments[1], representative of all later
// payments.
func (p PaymentPlan) SubsequentPayment() *PaymentEvent {
	if len(p.Payments) < 2 {
		return nil
	}
	return &p.Payments[1]
}

// LatestPayment returns the last payment event, used as this quarter's
// payment for display.
func (p PaymentPlan) LatestPayment() *PaymentEvent {
	if len(p.Payments) == 0 {
		return nil
	}
	return &p.Payments[len(p.Payments)-1]
}

// =============================================================================
// KEY ORDERING
// =============================================================================

func numericKey(k string) (int64, bool) {
	n, err := strconv.ParseInt(k, 10, 64)
	return n, err == nil
}

// sortedKeys orders numeric keys ascending and places the remainder
// after them lexicographically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iok := numericKey(keys[i])
		nj, jok := numericKey(keys[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok:
			return true
		case jok:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
