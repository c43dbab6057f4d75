package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-apimo/catalog"
)

// Kind tags a Field with the decoding rule applied to its raw value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindTime
	KindCatalog
	KindList
	KindNested
	KindIntCSV
	KindURL
	KindUndocumented
	KindRaw
)

var kindNames = map[Kind]string{
	KindInt:          "int",
	KindFloat:        "float",
	KindString:       "string",
	KindBool:         "bool",
	KindTime:         "time",
	KindCatalog:      "catalog",
	KindList:         "list",
	KindNested:       "nested",
	KindIntCSV:       "int_csv",
	KindURL:          "url",
	KindUndocumented: "undocumented",
	KindRaw:          "raw",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Field describes how one key of a raw record becomes one field of a domain struct.
// Fields are values: modifiers return a copy.
type Field struct {
	Key string

	kind     Kind
	catalog  catalog.Name
	record   *Record
	elem     *Field
	prefix   string
	coerce   bool
	nullable bool
	optional bool
	lower    bool
	rules    []validation.Rule
}

// Kind reports the decoding rule of the field.
func (f Field) Kind() Kind { return f.kind }

// Catalog reports the catalog a KindCatalog field resolves against.
func (f Field) Catalog() catalog.Name { return f.catalog }

// Int coerces numbers, numeric strings, booleans and null into an integer.
func Int(key string) Field {
	return Field{Key: key, kind: KindInt, coerce: true}
}

// Float coerces like Int into a float64.
func Float(key string) Field {
	return Field{Key: key, kind: KindFloat, coerce: true}
}

// String requires a JSON string.
func String(key string) Field {
	return Field{Key: key, kind: KindString}
}

// Bool requires a JSON boolean.
func Bool(key string) Field {
	return Field{Key: key, kind: KindBool}
}

// Time parses a date string.
func Time(key string) Field {
	return Field{Key: key, kind: KindTime}
}

// Catalog coerces the value into an id and resolves it against the named catalog.
// A zero or null id resolves to nil without a lookup.
func Catalog(key string, name catalog.Name) Field {
	return Field{Key: key, kind: KindCatalog, catalog: name, coerce: true}
}

// List applies elem to every item of a JSON array. The key of elem is ignored.
func List(key string, elem Field) Field {
	elem.Key = ""
	return Field{Key: key, kind: KindList, elem: &elem}
}

// Nested decodes a JSON object with its own record description.
func Nested(key string, record *Record) Field {
	return Field{Key: key, kind: KindNested, record: record}
}

// IntCSV turns a comma separated string of integers into a slice.
func IntCSV(key string) Field {
	return Field{Key: key, kind: KindIntCSV, coerce: true}
}

// URL resolves a relative path against the configured base URL and prefix.
func URL(key, prefix string) Field {
	return Field{Key: key, kind: KindURL, prefix: prefix}
}

// Undocumented passes the value through and logs a warning when it is not null.
// NonNullable makes it warn on null as well.
func Undocumented(key string) Field {
	return Field{Key: key, kind: KindUndocumented, nullable: true, optional: true}
}

// Raw passes the value through untouched.
func Raw(key string) Field {
	return Field{Key: key, kind: KindRaw, nullable: true, optional: true}
}

// Nullable accepts an explicit null. The destination keeps its zero value.
func (f Field) Nullable() Field {
	f.nullable = true
	return f
}

// NonNullable undoes Nullable so a null goes through the field kind. Undocumented fields
// then log it.
func (f Field) NonNullable() Field {
	f.nullable = false
	return f
}

// Optional accepts a missing key.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

// Strict disables coercion: numeric kinds then only accept JSON numbers.
func (f Field) Strict() Field {
	f.coerce = false
	return f
}

// Coerce enables coercion for strings (numbers are rendered) and booleans (truthiness).
func (f Field) Coerce() Field {
	f.coerce = true
	return f
}

// Lower lower-cases a string value.
func (f Field) Lower() Field {
	f.lower = true
	return f
}

// Check validates the decoded value with ozzo-validation rules.
func (f Field) Check(rules ...validation.Rule) Field {
	f.rules = append(append([]validation.Rule(nil), f.rules...), rules...)
	return f
}

// Record is the declarative description of one entity shape.
type Record struct {
	Name   string
	Fields []Field
}

// NewRecord describes an entity named name.
func NewRecord(name string, fields ...Field) *Record {
	return &Record{Name: name, Fields: fields}
}

// CatalogFields lists the catalog-coded fields of the record and of its nested records,
// keyed by dotted path.
func (r *Record) CatalogFields() map[string]catalog.Name {
	out := make(map[string]catalog.Name)
	r.collectCatalogFields("", out)
	return out
}

func (r *Record) collectCatalogFields(prefix string, out map[string]catalog.Name) {
	for _, f := range r.Fields {
		collectField(joinPath(prefix, f.Key), f, out)
	}
}

func collectField(path string, f Field, out map[string]catalog.Name) {
	switch f.kind {
	case KindCatalog:
		out[path] = f.catalog
	case KindNested:
		f.record.collectCatalogFields(path, out)
	case KindList:
		collectField(path+"[]", *f.elem, out)
	}
}
