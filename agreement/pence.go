/*
pence.go - Tolerant decoding for monetary and numeric wire fields

PURPOSE:
  Monetary fields in agreement payloads are integer pence, but upstream
  systems have been observed sending null, omitting the field entirely,
  or sending a pre-formatted string. PenceValue preserves all three
  cases so the presentation layer can decide how to render each one
  instead of the decoder guessing.

  The same tolerance applies to item ids (numbers or numeric strings)
  and action durations (numbers or numeric strings), so ItemID and
  Years live here too.

SEE ALSO:
  - render/currency.go: The formatter that consumes PenceValue
  - render/allocate.go: Line-item matching by ItemID
*/
package agreement

import (
	"bytes"
	"strconv"
)

// =============================================================================
// PENCE VALUE
// =============================================================================

// PenceValue is a monetary amount in integer pence that may be unset
// (null or absent) or carry a non-numeric raw payload.
type PenceValue struct {
	set     bool
	numeric bool
	pence   int64
	raw     string
}

// Pence returns a set, numeric PenceValue. Used by tests and fixtures.
func Pence(p int64) PenceValue {
	return PenceValue{set: true, numeric: true, pence: p}
}

// RawPence returns a set, non-numeric PenceValue carrying the raw
// payload verbatim.
func RawPence(s string) PenceValue {
	return PenceValue{set: true, raw: s}
}

func (v *PenceValue) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*v = PenceValue{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*v = PenceValue{set: true, raw: s}
		return nil
	}
	if n, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*v = PenceValue{set: true, numeric: true, pence: n}
		return nil
	}
	// Fractional pence should not happen, but tolerate it by truncation
	// rather than rejecting the whole record.
	if f, err := strconv.ParseFloat(string(b), 64); err == nil {
		*v = PenceValue{set: true, numeric: true, pence: int64(f)}
		return nil
	}
	*v = PenceValue{set: true, raw: string(b)}
	return nil
}

func (v PenceValue) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.numeric:
		return []byte(strconv.FormatInt(v.pence, 10)), nil
	default:
		return []byte(strconv.Quote(v.raw)), nil
	}
}

// IsSet reports whether the field was present and non-null.
func (v PenceValue) IsSet() bool { return v.set }

// IsNumeric reports whether the field carried an actual number.
func (v PenceValue) IsNumeric() bool { return v.set && v.numeric }

// Pence returns the amount in pence, or 0 when unset or non-numeric.
func (v PenceValue) Pence() int64 {
	if v.numeric {
		return v.pence
	}
	return 0
}

// Raw returns the raw non-numeric payload, or "" for numeric values.
func (v PenceValue) Raw() string { return v.raw }

// =============================================================================
// ITEM ID - Numeric foreign key into the item maps
// =============================================================================

// ItemID references a parcelItems/agreementLevelItems key. The wire
// sends numbers, but ids have also arrived as strings; a non-numeric
// id stays unresolved and never matches anything.
type ItemID struct {
	n  int64
	ok bool
}

// ID returns a resolved ItemID. Used by tests and fixtures.
func ID(n int64) ItemID { return ItemID{n: n, ok: true} }

func (id *ItemID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ItemID{}
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = u
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*id = ItemID{n: n, ok: true}
	} else {
		*id = ItemID{}
	}
	return nil
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	if !id.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(id.n, 10)), nil
}

// Resolved reports whether the id parsed to a number.
func (id ItemID) Resolved() bool { return id.ok }

// Value returns the numeric id; only meaningful when Resolved.
func (id ItemID) Value() int64 { return id.n }

// Matches reports whether this id resolves to n.
func (id ItemID) Matches(n int64) bool { return id.ok && id.n == n }

// =============================================================================
// YEARS - Action duration
// =============================================================================

// Years holds an action duration that arrives as a number or a numeric
// string. Anything unparseable counts as zero.
type Years struct {
	value float64
	ok    bool
}

// YearsOf returns a set Years value. Used by tests and fixtures.
func YearsOf(v float64) Years { return Years{value: v, ok: true} }

func (y *Years) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*y = Years{}
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*y = Years{value: f, ok: true}
	} else {
		*y = Years{}
	}
	return nil
}

func (y Years) MarshalJSON() ([]byte, error) {
	if !y.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(y.value, 'f', -1, 64)), nil
}

// Value returns the duration in years, or 0 when missing or invalid.
func (y Years) Value() float64 {
	if !y.ok {
		return 0
	}
	return y.value
}
