package data

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"qcert/camp/pkg/camp/ast"
	camperrors "qcert/camp/pkg/camp/errors"
)

// Data is a CAMP literal value.
type Data interface {
	ast.Node
	isData()
}

// Unit is the dunit constant.
type Unit struct{}

// NewUnit returns the unit value.
func NewUnit() *Unit { return &Unit{} }

func (*Unit) isData()         {}
func (*Unit) Kind() ast.Kind  { return ast.KindDUnit }
func (*Unit) Tag() string     { return ast.KindDUnit.String() }
func (*Unit) Operands() []any { return nil }
func (*Unit) String() string  { return "unit" }

// Nat is a natural-number (integer) literal.
type Nat struct {
	value int64
}

// NewNat returns a dnat literal.
func NewNat(v int64) *Nat { return &Nat{value: v} }

// Value returns the wrapped integer.
func (n *Nat) Value() int64 { return n.value }

func (*Nat) isData()           {}
func (*Nat) Kind() ast.Kind    { return ast.KindDNat }
func (*Nat) Tag() string       { return ast.KindDNat.String() }
func (n *Nat) Operands() []any { return []any{n.value} }
func (n *Nat) String() string  { return strconv.FormatInt(n.value, 10) }

// Bool is the dbool constructor.
// At most two instances need exist; see factory.Factory.Bool.
type Bool struct {
	value bool
}

// NewBool returns a plain, uninterned boolean. Producers must use
// factory.Factory.Bool, which hands out the canonical instance for each truth
// value; NewBool is the allocation that method interns.
func NewBool(v bool) *Bool { return &Bool{value: v} }

// IsTrue returns the wrapped truth value.
func (b *Bool) IsTrue() bool { return b.value }

func (*Bool) isData()           {}
func (*Bool) Kind() ast.Kind    { return ast.KindDBool }
func (*Bool) Tag() string       { return ast.KindDBool.String() }
func (b *Bool) Operands() []any { return []any{b.value} }
func (b *Bool) String() string  { return strconv.FormatBool(b.value) }

// String is a string literal.
type String struct {
	value string
}

// NewString returns a dstring literal.
func NewString(s string) *String { return &String{value: s} }

// Value returns the wrapped string.
func (s *String) Value() string { return s.value }

func (*String) isData()           {}
func (*String) Kind() ast.Kind    { return ast.KindDString }
func (*String) Tag() string       { return ast.KindDString.String() }
func (s *String) Operands() []any { return []any{s.value} }
func (s *String) String() string  { return strconv.Quote(s.value) }

// Coll is a collection (bag) of data values, kept in construction order.
type Coll struct {
	elements []Data
}

// NewColl returns a dcoll of the given elements. Nil elements are rejected.
func NewColl(elements ...Data) (*Coll, error) {
	for i, e := range elements {
		if e == nil {
			return nil, camperrors.InvalidArgument(ast.KindDColl, "element %d is nil", i)
		}
	}
	return &Coll{elements: append([]Data(nil), elements...)}, nil
}

// Elements returns a copy of the collection's elements.
func (c *Coll) Elements() []Data { return append([]Data(nil), c.elements...) }

// Len returns the number of elements.
func (c *Coll) Len() int { return len(c.elements) }

func (*Coll) isData()        {}
func (*Coll) Kind() ast.Kind { return ast.KindDColl }
func (*Coll) Tag() string    { return ast.KindDColl.String() }

func (c *Coll) Operands() []any {
	ops := make([]any, len(c.elements))
	for i, e := range c.elements {
		ops[i] = e
	}
	return ops
}

func (c *Coll) String() string {
	parts := make([]string, len(c.elements))
	for i, e := range c.elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Field is a named record component.
type Field struct {
	Name  string
	Value Data
}

// String renders the field as name: value.
func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Value)
}

// Rec is a record. Fields are kept sorted by name so equal records have
// identical operands.
type Rec struct {
	fields []Field
}

// NewRec returns a drec of the given fields.
// Duplicate names and nil values are rejected.
func NewRec(fields ...Field) (*Rec, error) {
	sorted := append([]Field(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for i, f := range sorted {
		if f.Value == nil {
			return nil, camperrors.InvalidArgument(ast.KindDRec, "field %q has no value", f.Name)
		}
		if i > 0 && sorted[i-1].Name == f.Name {
			return nil, camperrors.InvalidArgument(ast.KindDRec, "duplicate field %q", f.Name)
		}
	}
	return &Rec{fields: sorted}, nil
}

// Fields returns a copy of the record's fields in name order.
func (r *Rec) Fields() []Field { return append([]Field(nil), r.fields...) }

// Get returns the value of the named field.
func (r *Rec) Get(name string) (Data, bool) {
	i := sort.Search(len(r.fields), func(i int) bool { return r.fields[i].Name >= name })
	if i < len(r.fields) && r.fields[i].Name == name {
		return r.fields[i].Value, true
	}
	return nil, false
}

func (*Rec) isData()        {}
func (*Rec) Kind() ast.Kind { return ast.KindDRec }
func (*Rec) Tag() string    { return ast.KindDRec.String() }

// Operands returns name, value pairs flattened in name order.
func (r *Rec) Operands() []any {
	ops := make([]any, 0, 2*len(r.fields))
	for _, f := range r.fields {
		ops = append(ops, f.Name, f.Value)
	}
	return ops
}

func (r *Rec) String() string {
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Left is the left injection of a sum value.
type Left struct {
	value Data
}

// NewLeft returns a dleft wrapping d.
func NewLeft(d Data) (*Left, error) {
	if d == nil {
		return nil, camperrors.InvalidArgument(ast.KindDLeft, "operand is nil")
	}
	return &Left{value: d}, nil
}

// Value returns the injected value.
func (l *Left) Value() Data { return l.value }

func (*Left) isData()           {}
func (*Left) Kind() ast.Kind    { return ast.KindDLeft }
func (*Left) Tag() string       { return ast.KindDLeft.String() }
func (l *Left) Operands() []any { return []any{l.value} }
func (l *Left) String() string  { return "left(" + l.value.String() + ")" }

// Right is the right injection of a sum value.
type Right struct {
	value Data
}

// NewRight returns a dright wrapping d.
func NewRight(d Data) (*Right, error) {
	if d == nil {
		return nil, camperrors.InvalidArgument(ast.KindDRight, "operand is nil")
	}
	return &Right{value: d}, nil
}

// Value returns the injected value.
func (r *Right) Value() Data { return r.value }

func (*Right) isData()           {}
func (*Right) Kind() ast.Kind    { return ast.KindDRight }
func (*Right) Tag() string       { return ast.KindDRight.String() }
func (r *Right) Operands() []any { return []any{r.value} }
func (r *Right) String() string  { return "right(" + r.value.String() + ")" }

// Brand is a value tagged with one or more brand names.
type Brand struct {
	brands []string
	value  Data
}

// NewBrand returns a dbrand. At least one brand is required.
func NewBrand(brands []string, d Data) (*Brand, error) {
	if len(brands) == 0 {
		return nil, camperrors.InvalidArgument(ast.KindDBrand, "at least one brand is required")
	}
	if d == nil {
		return nil, camperrors.InvalidArgument(ast.KindDBrand, "operand is nil")
	}
	return &Brand{brands: append([]string(nil), brands...), value: d}, nil
}

// Brands returns a copy of the brand names.
func (b *Brand) Brands() []string { return append([]string(nil), b.brands...) }

// Value returns the branded value.
func (b *Brand) Value() Data { return b.value }

func (*Brand) isData()           {}
func (*Brand) Kind() ast.Kind    { return ast.KindDBrand }
func (*Brand) Tag() string       { return ast.KindDBrand.String() }
func (b *Brand) Operands() []any { return []any{b.Brands(), b.value} }

func (b *Brand) String() string {
	return "brand " + ast.FormatStringList(b.brands) + " (" + b.value.String() + ")"
}
