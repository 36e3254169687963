package iso8583

// IsoType is the closed set of ISO 8583 field kinds. Behavior for each kind
// is dispatched from the kindSpecs table below rather than through virtual
// method dispatch on a parser hierarchy — the set is closed, so a tagged
// variant is the more direct translation than polymorphism (see DESIGN.md).
type IsoType int

const (
	NUMERIC IsoType = iota
	ALPHA
	LLVAR
	LLLVAR
	DATE10
	DATE4
	DATEEXP
	TIME
	AMOUNT
	BINARY
	LLBIN
	LLLBIN

	numIsoTypes
)

func (k IsoType) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return kindSpecs[k].name
}

// kindSpec answers, for a kind, whether its length is fixed, the ASCII
// width of its length prefix (0 for fixed kinds), whether its payload is
// textual or binary, and its maximum length when that is intrinsic to the
// kind rather than supplied by a schema/template field.
type kindSpec struct {
	name        string
	fixed       bool
	prefixWidth int // ASCII digits in the length prefix; 0 for fixed kinds
	binary      bool
	maxLen      int // meaningful for variable kinds only
}

var kindSpecs = [numIsoTypes]kindSpec{
	NUMERIC: {name: "NUMERIC", fixed: true},
	ALPHA:   {name: "ALPHA", fixed: true},
	LLVAR:   {name: "LLVAR", prefixWidth: 2, maxLen: 99},
	LLLVAR:  {name: "LLLVAR", prefixWidth: 3, maxLen: 999},
	DATE10:  {name: "DATE10", fixed: true},
	DATE4:   {name: "DATE4", fixed: true},
	DATEEXP: {name: "DATEEXP", fixed: true},
	TIME:    {name: "TIME", fixed: true},
	AMOUNT:  {name: "AMOUNT", fixed: true},
	BINARY:  {name: "BINARY", fixed: true, binary: true},
	LLBIN:   {name: "LLBIN", prefixWidth: 2, maxLen: 99, binary: true},
	LLLBIN:  {name: "LLLBIN", prefixWidth: 3, maxLen: 999, binary: true},
}

// intrinsicLen returns the wire length for kinds whose length is fixed by
// the ISO 8583 standard regardless of schema (dates, time, amount).
func (k IsoType) intrinsicLen() (int, bool) {
	switch k {
	case DATE10:
		return 10, true
	case DATE4:
		return 4, true
	case DATEEXP:
		return 4, true
	case TIME:
		return 6, true
	case AMOUNT:
		return 12, true
	default:
		return 0, false
	}
}

// IsFixed reports whether the kind's wire length is fixed, as opposed to
// length-prefixed.
func (k IsoType) IsFixed() bool {
	return k.Valid() && kindSpecs[k].fixed
}

// MaxLength returns the maximum payload length for a variable kind, or the
// intrinsic length for a kind that carries one (DATE10, DATE4, DATEEXP,
// TIME, AMOUNT). For NUMERIC, ALPHA, and BINARY it returns 0: their length
// is a per-field declaration, not a property of the kind.
func (k IsoType) MaxLength() int {
	if n, ok := k.intrinsicLen(); ok {
		return n
	}
	if !k.Valid() {
		return 0
	}
	return kindSpecs[k].maxLen
}

// PrefixWidth returns the number of ASCII digits in the kind's length
// prefix: 0 for fixed kinds, 2 for LL-prefixed, 3 for LLL-prefixed.
func (k IsoType) PrefixWidth() int {
	if !k.Valid() {
		return 0
	}
	return kindSpecs[k].prefixWidth
}

// IsBinary reports whether the kind's payload is raw bytes rather than
// character-encoded text.
func (k IsoType) IsBinary() bool {
	return k.Valid() && kindSpecs[k].binary
}

// Valid reports whether k is a member of the closed IsoType set.
func (k IsoType) Valid() bool {
	return k >= 0 && k < numIsoTypes
}

// MaxFieldNumber is the highest addressable data element index.
const MaxFieldNumber = 128
