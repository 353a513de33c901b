/*
descriptions.go - Code-to-description resolution

PURPOSE:
  Item descriptions arrive as "CMOR1: Assess moorland..." with the code
  redundantly prefixed. This resolver builds a code -> clean description
  map across both item kinds. Codes are not unique across items (the
  same action can appear on several parcels), so resolution is per-code:
  parcel items register first, then agreement-level items overwrite on
  collision. Agreement-level wins.

SEE ALSO:
  - actions.go: Looks up action rows' descriptions by code
  - annual.go: Strips the same prefix for one-off payment listings
*/
package render

import (
	"strings"

	"github.com/warp/agreement-engine/agreement"
)

// StripCodePrefix removes a redundant "<code>: " prefix from a
// description. Descriptions without the prefix pass through verbatim.
func StripCodePrefix(code, description string) string {
	if code == "" {
		return description
	}
	return strings.Replace(description, code+": ", "", 1)
}

// BuildCodeDescriptions maps each item code to its display description.
// Items without a description still register their code with "".
func BuildCodeDescriptions(plan agreement.PaymentPlan) map[string]string {
	descriptions := map[string]string{}

	register := func(code, description string) {
		if code == "" {
			return
		}
		descriptions[code] = StripCodePrefix(code, description)
	}

	for _, entry := range plan.ParcelItemEntries() {
		register(entry.Item.Code, entry.Item.Description)
	}
	// Explicit override pass: agreement-level wins on shared codes.
	for _, entry := range plan.AgreementLevelItemEntries() {
		register(entry.Item.Code, entry.Item.Description)
	}

	return descriptions
}
