/*
Package render is the agreement presentation calculation engine.

PURPOSE:
  Pure, synchronous derivation of display tables from a raw agreement
  record: action summaries, payment summaries with totals, the
  multi-year annual payment schedule pivot, one-off annual payment
  listings, and the status-dependent redaction applied before an
  agreement is binding. No I/O, no shared state; safe to call
  concurrently with distinct inputs.

KEY CONCEPTS IN THIS FILE (table.go):
  - Cell: One table cell; Text is a string or a number (quantities and
    year headings render as numbers), Attributes is an optional style
    hint passed verbatim to the renderer
  - Table: Headings plus rows of cells, the shape every table-building
    function returns

DESIGN PRINCIPLES:
  1. Total functions: Builders accept possibly-partial records and
     degrade to empty tables with correct headings, never errors
  2. Pence all the way: Totals are summed in integer pence, never by
     re-reading formatted strings
  3. Explicit ordering: Every sort is explicit; nothing relies on map
     iteration order

SEE ALSO:
  - model.go: Assemblers that combine the builders into view models
  - payments.go, schedule.go: The heavier table builders
*/
package render

// BoldClass is the GOV.UK utility class applied to totals cells.
const BoldClass = "govuk-!-font-weight-bold"

// NoWrapStyle keeps parcel references on one line.
const NoWrapStyle = "white-space: nowrap"

// CellAttributes is an optional style/class hint consumed verbatim by
// the renderer.
type CellAttributes struct {
	Class string `json:"class,omitempty"`
	Style string `json:"style,omitempty"`
}

// Cell is a single table cell. Text is either a string or a number.
type Cell struct {
	Text       any             `json:"text"`
	Attributes *CellAttributes `json:"attributes,omitempty"`
}

// Table is the {headings, data} structure every table builder returns.
type Table struct {
	Headings []Cell   `json:"headings"`
	Data     [][]Cell `json:"data"`
}

func textCell(s string) Cell { return Cell{Text: s} }

func numCell(v any) Cell { return Cell{Text: v} }

func boldCell(s string) Cell {
	return Cell{Text: s, Attributes: &CellAttributes{Class: BoldClass}}
}

func noWrapCell(s string) Cell {
	return Cell{Text: s, Attributes: &CellAttributes{Style: NoWrapStyle}}
}

func headings(titles ...string) []Cell {
	cells := make([]Cell, len(titles))
	for i, t := range titles {
		cells[i] = textCell(t)
	}
	return cells
}
