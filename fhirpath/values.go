package fhirpath

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Value is the result of evaluating an expression.
//
// The set of implementations is closed: Empty, Boolean, Integer, Integer64,
// Decimal, String, Date, DateTime, Time, Quantity, Object and Collection.
type Value interface {
	fmt.Stringer
	value()
}

// Namespaces used in type tags.
const (
	NamespaceSystem = "System"
	NamespaceFHIR   = "FHIR"
)

// TypeSpecifier names a type, e.g. System.String or FHIR.Patient.
//
// As a tag on a value the zero TypeSpecifier means untagged; TypeOf derives
// the default from the value kind.
type TypeSpecifier struct {
	Namespace string
	Name      string
}

// ParseTypeSpecifier splits a possibly qualified type name.
func ParseTypeSpecifier(s string) TypeSpecifier {
	if ns, name, ok := strings.Cut(s, "."); ok {
		return TypeSpecifier{Namespace: ns, Name: name}
	}
	return TypeSpecifier{Name: s}
}

func (t TypeSpecifier) IsZero() bool {
	return t.Namespace == "" && t.Name == ""
}

func (t TypeSpecifier) String() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

func systemType(name string) TypeSpecifier {
	return TypeSpecifier{Namespace: NamespaceSystem, Name: name}
}

func fhirType(name string) TypeSpecifier {
	return TypeSpecifier{Namespace: NamespaceFHIR, Name: name}
}

// Empty is the empty collection.
type Empty struct{}

type Boolean struct {
	Value bool
	Type  TypeSpecifier
}

type Integer struct {
	Value int64
	Type  TypeSpecifier
}

// Integer64 is the System.Long type. It is only produced for models that
// support integer64.
type Integer64 struct {
	Value int64
	Type  TypeSpecifier
}

type Decimal struct {
	Value *apd.Decimal
	Type  TypeSpecifier
}

type String struct {
	Value string
	Type  TypeSpecifier
}

// Quantity is a decimal value with a unit. Calendar duration units are kept
// as written (`day`, `years`), UCUM units without the surrounding quotes.
type Quantity struct {
	Value *apd.Decimal
	Unit  string
	Type  TypeSpecifier
}

// Field is a named member of an Object.
type Field struct {
	Name  string
	Value Value
}

// Object is a structured value with ordered fields, typically a resource or
// one of its complex elements.
type Object struct {
	Type   TypeSpecifier
	Fields []Field
}

// Get returns the value of the named field.
func (o Object) Get(name string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// ResourceType returns the value of the resourceType field, if any.
func (o Object) ResourceType() (string, bool) {
	v, ok := o.Get("resourceType")
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return s.Value, ok
}

// Collection holds zero or more values. Evaluation results never contain
// empty or single-item collections; those are normalized to Empty and the
// bare item respectively.
type Collection struct {
	Items []Value
	// Unordered is set when the order of Items carries no meaning.
	Unordered bool
	Type      TypeSpecifier
}

func (Empty) value()      {}
func (Boolean) value()    {}
func (Integer) value()    {}
func (Integer64) value()  {}
func (Decimal) value()    {}
func (String) value()     {}
func (Date) value()       {}
func (DateTime) value()   {}
func (Time) value()       {}
func (Quantity) value()   {}
func (Object) value()     {}
func (Collection) value() {}

func (Empty) String() string { return "{}" }

func (b Boolean) String() string { return strconv.FormatBool(b.Value) }

func (i Integer) String() string { return strconv.FormatInt(i.Value, 10) }

func (i Integer64) String() string { return strconv.FormatInt(i.Value, 10) }

func (d Decimal) String() string { return d.Value.Text('f') }

func (s String) String() string { return s.Value }

func (q Quantity) String() string {
	value := q.Value.Text('f')
	if isCalendarUnit(q.Unit) {
		return value + " " + q.Unit
	}
	return value + " '" + q.Unit + "'"
}

func (o Object) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		return fmt.Sprintf("<%s>", TypeOf(o))
	}
	return string(b)
}

func (c Collection) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range c.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := item.(String); ok {
			b.WriteString(strconv.Quote(s.Value))
			continue
		}
		b.WriteString(item.String())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON renders values the way they appear in FHIR JSON.
func (Empty) MarshalJSON() ([]byte, error) { return []byte("[]"), nil }

func (b Boolean) MarshalJSON() ([]byte, error) { return json.Marshal(b.Value) }

func (i Integer) MarshalJSON() ([]byte, error) { return json.Marshal(i.Value) }

func (i Integer64) MarshalJSON() ([]byte, error) { return json.Marshal(strconv.FormatInt(i.Value, 10)) }

func (d Decimal) MarshalJSON() ([]byte, error) { return []byte(d.Value.Text('f')), nil }

func (s String) MarshalJSON() ([]byte, error) { return json.Marshal(s.Value) }

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (dt DateTime) MarshalJSON() ([]byte, error) { return json.Marshal(dt.String()) }

func (t Time) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value json.RawMessage `json:"value"`
		Unit  string          `json:"unit"`
	}{json.RawMessage(q.Value.Text('f')), q.Unit})
}

func (o Object) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range o.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func (c Collection) MarshalJSON() ([]byte, error) {
	if c.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Items)
}

// Items returns the members of v: none for Empty, the items of a
// Collection, otherwise v itself.
func Items(v Value) []Value {
	switch t := v.(type) {
	case nil, Empty:
		return nil
	case Collection:
		return t.Items
	default:
		return []Value{v}
	}
}

// IsEmpty reports whether v holds no items.
func IsEmpty(v Value) bool {
	return len(Items(v)) == 0
}

func isUnordered(v Value) bool {
	c, ok := v.(Collection)
	return ok && c.Unordered
}

// NewCollection builds a normalized value from items: nested collections are
// flattened, empty members dropped, a single item is returned bare and no
// items yield Empty.
func NewCollection(items ...Value) Value {
	return collect(items, false)
}

func collect(items []Value, unordered bool) Value {
	flat := make([]Value, 0, len(items))
	flat, unordered = appendFlat(flat, items, unordered)
	switch len(flat) {
	case 0:
		return Empty{}
	case 1:
		return flat[0]
	}
	return Collection{Items: flat, Unordered: unordered}
}

func appendFlat(dst []Value, items []Value, unordered bool) ([]Value, bool) {
	for _, item := range items {
		switch t := item.(type) {
		case nil, Empty:
		case Collection:
			unordered = unordered || t.Unordered
			dst, unordered = appendFlat(dst, t.Items, unordered)
		default:
			dst = append(dst, item)
		}
	}
	return dst, unordered
}

// singleton returns the only item of v. ok is false for Empty; more than one
// item is a SingletonEvaluationError.
func singleton(v Value, what string) (Value, bool, error) {
	items := Items(v)
	switch len(items) {
	case 0:
		return nil, false, nil
	case 1:
		return items[0], true, nil
	}
	return nil, false, newError(SingletonEvaluationError, "%s expects a single item, got %d", what, len(items))
}

// Boolean, Integer, String and Decimal constructors for the common untagged
// cases.

func NewBoolean(b bool) Boolean { return Boolean{Value: b} }

func NewInteger(i int64) Integer { return Integer{Value: i} }

func NewString(s string) String { return String{Value: s} }

func NewDecimal(d *apd.Decimal) Decimal { return Decimal{Value: d} }

// ParseDecimal parses a decimal literal.
func ParseDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Decimal{Value: d}, nil
}

// MustDecimal is ParseDecimal for constants.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewQuantity builds an untagged quantity from a decimal text.
func NewQuantity(value string, unit string) (Quantity, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: d.Value, Unit: unit}, nil
}
