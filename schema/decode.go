package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-errors"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	intsType     = reflect.TypeOf([]int(nil))
	entryType    = reflect.TypeOf(catalog.EntryName{})
	entryPtrType = reflect.TypeOf((*catalog.EntryName)(nil))
)

// Options tune a decode pass.
type Options struct {
	// BaseURL is the root KindURL fields are resolved against.
	BaseURL string
	// Location is used for date strings without an offset. Defaults to UTC.
	Location *time.Location
	// Logger receives undocumented field warnings. Defaults to slog.Default().
	Logger *slog.Logger
	// Path prefixes every reported field path.
	Path string
}

type Option func(*Options)

func WithBaseURL(base string) Option {
	return func(o *Options) { o.BaseURL = base }
}

func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc != nil {
			o.Location = loc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func WithPath(path string) Option {
	return func(o *Options) { o.Path = path }
}

// Decode applies record to raw and returns the populated T.
//
// Field level problems are collected and reported together as a validation error
// whose ValidationErrors carry the dotted path of every offending field. Errors
// returned by lookup abort the pass and are returned unchanged. A nil lookup renders
// catalog ids as names.
func Decode[T any](ctx context.Context, record *Record, raw any, lookup catalog.LookupFunc, opts ...Option) (T, error) {
	var out T
	err := Into(ctx, record, raw, &out, lookup, opts...)
	return out, err
}

// DecodeJSON is Decode over an encoded payload.
func DecodeJSON[T any](ctx context.Context, record *Record, data []byte, lookup catalog.LookupFunc, opts ...Option) (T, error) {
	raw, err := ParseJSON(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](ctx, record, raw, lookup, opts...)
}

// ParseJSON decodes data keeping numbers as json.Number.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "payload is not valid JSON")
	}
	return v, nil
}

// Into applies record to raw, writing into the struct dst points to.
func Into(ctx context.Context, record *Record, raw any, dst any, lookup catalog.LookupFunc, opts ...Option) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New(fmt.Sprintf("schema %s: destination must be a non-nil pointer, got %T", record.Name, dst), errors.CategoryInternal)
	}

	d, err := newDecoder(ctx, lookup, opts)
	if err != nil {
		return err
	}
	if err := d.record(d.opts.Path, record, raw, rv.Elem()); err != nil {
		return err
	}
	if len(d.issues) > 0 {
		return errors.NewValidation(fmt.Sprintf("%s failed validation", record.Name), d.issues...).
			WithMetadata(map[string]any{"record": record.Name})
	}
	return nil
}

type decoder struct {
	ctx    context.Context
	lookup catalog.LookupFunc
	opts   Options
	base   *url.URL
	issues errors.ValidationErrors
}

func newDecoder(ctx context.Context, lookup catalog.LookupFunc, opts []Option) (*decoder, error) {
	o := Options{Location: time.UTC, Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	d := &decoder{ctx: ctx, lookup: lookup, opts: o}
	if o.BaseURL != "" {
		base, err := url.Parse(o.BaseURL)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "invalid base URL")
		}
		d.base = base
	}
	return d, nil
}

func (d *decoder) issue(path, message string, value any) {
	fe := errors.FieldError{Field: path, Message: message}
	switch value.(type) {
	case []any, map[string]any:
	default:
		fe.Value = value
	}
	d.issues = append(d.issues, fe)
}

func (d *decoder) mismatch(path string, f Field, t reflect.Type) error {
	return errors.New(fmt.Sprintf("schema: %s field %q cannot be stored in %s", f.kind, path, t), errors.CategoryInternal)
}

func (d *decoder) record(path string, rec *Record, raw any, dst reflect.Value) error {
	if dst.Kind() != reflect.Struct {
		return errors.New(fmt.Sprintf("schema %s: %q must decode into a struct, got %s", rec.Name, path, dst.Type()), errors.CategoryInternal)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		d.issue(path, "expected object, received "+typeName(raw), raw)
		return nil
	}

	idx := structFields(dst.Type())
	for _, f := range rec.Fields {
		fi, ok := idx[f.Key]
		if !ok {
			return errors.New(fmt.Sprintf("schema %s: %s has no field tagged %q", rec.Name, dst.Type(), f.Key), errors.CategoryInternal)
		}
		v, present := obj[f.Key]
		if err := d.field(joinPath(path, f.Key), f, v, present, dst.FieldByIndex(fi)); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) field(path string, f Field, v any, present bool, dst reflect.Value) error {
	if !present {
		if !f.optional {
			d.issue(path, "required", nil)
		}
		return nil
	}
	if v == nil && f.nullable {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	switch f.kind {
	case KindUndocumented:
		d.opts.Logger.WarnContext(d.ctx, "undocumented field",
			slog.String("path", path),
			slog.Any("value", v),
		)
		return d.passthrough(path, f, v, dst)
	case KindRaw:
		return d.passthrough(path, f, v, dst)
	case KindCatalog:
		return d.catalog(path, f, v, dst)
	}

	before := len(d.issues)
	if dst.Kind() == reflect.Pointer {
		elem := reflect.New(dst.Type().Elem())
		if err := d.value(path, f, v, elem.Elem()); err != nil {
			return err
		}
		if len(d.issues) > before || (f.kind == KindTime && elem.Elem().IsZero()) {
			return nil
		}
		dst.Set(elem)
	} else if err := d.value(path, f, v, dst); err != nil {
		return err
	}

	if len(f.rules) > 0 && len(d.issues) == before {
		if err := validation.Validate(dst.Interface(), f.rules...); err != nil {
			d.issue(path, err.Error(), v)
		}
	}
	return nil
}

func (d *decoder) passthrough(path string, f Field, v any, dst reflect.Value) error {
	if dst.Kind() != reflect.Interface {
		return d.mismatch(path, f, dst.Type())
	}
	if v != nil {
		dst.Set(reflect.ValueOf(v))
	}
	return nil
}

func (d *decoder) catalog(path string, f Field, v any, dst reflect.Value) error {
	if dst.Type() != entryPtrType && dst.Type() != entryType {
		return d.mismatch(path, f, dst.Type())
	}

	id, ok := toInt(v, f.coerce)
	if !ok {
		d.issue(path, "expected catalog id, received "+typeName(v), v)
		return nil
	}
	if id == 0 {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	entry, err := d.resolve(f.catalog, int(id))
	if err != nil {
		return err
	}
	switch {
	case dst.Type() == entryPtrType:
		dst.Set(reflect.ValueOf(entry))
	case entry != nil:
		dst.Set(reflect.ValueOf(*entry))
	default:
		dst.Set(reflect.Zero(dst.Type()))
	}
	return nil
}

func (d *decoder) resolve(name catalog.Name, id int) (*catalog.EntryName, error) {
	if d.lookup == nil {
		return &catalog.EntryName{Name: strconv.Itoa(id)}, nil
	}
	return d.lookup(d.ctx, name, id)
}

func (d *decoder) value(path string, f Field, v any, dst reflect.Value) error {
	switch f.kind {
	case KindInt:
		n, ok := toInt(v, f.coerce)
		if !ok {
			d.issue(path, "expected integer, received "+typeName(v), v)
			return nil
		}
		return d.setInt(path, f, n, dst)

	case KindFloat:
		n, ok := toNumber(v, f.coerce)
		if !ok {
			d.issue(path, "expected number, received "+typeName(v), v)
			return nil
		}
		return d.setNumber(path, f, n, dst)

	case KindString:
		if dst.Kind() != reflect.String {
			return d.mismatch(path, f, dst.Type())
		}
		s, ok := toString(v, f.coerce)
		if !ok {
			d.issue(path, "expected string, received "+typeName(v), v)
			return nil
		}
		if f.lower {
			s = strings.ToLower(s)
		}
		dst.SetString(s)

	case KindBool:
		if dst.Kind() != reflect.Bool {
			return d.mismatch(path, f, dst.Type())
		}
		b, ok := toBool(v, f.coerce)
		if !ok {
			d.issue(path, "expected boolean, received "+typeName(v), v)
			return nil
		}
		dst.SetBool(b)

	case KindTime:
		if dst.Type() != timeType {
			return d.mismatch(path, f, dst.Type())
		}
		s, ok := toString(v, f.coerce)
		if !ok {
			d.issue(path, "expected date string, received "+typeName(v), v)
			return nil
		}
		t, ok := parseDate(s, d.opts.Location)
		if !ok {
			d.issue(path, "invalid date", v)
			return nil
		}
		dst.Set(reflect.ValueOf(t))

	case KindIntCSV:
		if dst.Type() != intsType {
			return d.mismatch(path, f, dst.Type())
		}
		s, ok := toString(v, f.coerce)
		if !ok {
			d.issue(path, "expected comma separated integers, received "+typeName(v), v)
			return nil
		}
		ints, ok := splitInts(s)
		if !ok {
			d.issue(path, "expected comma separated integers", v)
			return nil
		}
		dst.Set(reflect.ValueOf(ints))

	case KindURL:
		if dst.Kind() != reflect.String {
			return d.mismatch(path, f, dst.Type())
		}
		s, ok := toString(v, false)
		if !ok {
			d.issue(path, "expected string, received "+typeName(v), v)
			return nil
		}
		u, err := d.joinURL(f.prefix, s)
		if err != nil {
			d.issue(path, "invalid URL", v)
			return nil
		}
		dst.SetString(u)

	case KindList:
		if dst.Kind() != reflect.Slice {
			return d.mismatch(path, f, dst.Type())
		}
		items, ok := v.([]any)
		if !ok {
			d.issue(path, "expected array, received "+typeName(v), v)
			return nil
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := d.field(fmt.Sprintf("%s[%d]", path, i), *f.elem, item, true, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)

	case KindNested:
		return d.record(path, f.record, v, dst)

	default:
		return d.mismatch(path, f, dst.Type())
	}
	return nil
}

func (d *decoder) setInt(path string, f Field, n int64, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if dst.OverflowInt(n) {
			d.issue(path, "number out of range", n)
			return nil
		}
		dst.SetInt(n)
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(float64(n))
	default:
		return d.mismatch(path, f, dst.Type())
	}
	return nil
}

func (d *decoder) setNumber(path string, f Field, n float64, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if dst.OverflowInt(int64(n)) {
			d.issue(path, "number out of range", n)
			return nil
		}
		dst.SetInt(int64(n))
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(n)
	default:
		return d.mismatch(path, f, dst.Type())
	}
	return nil
}

// joinURL resolves prefix+value against the base URL. Absolute values are kept.
func (d *decoder) joinURL(prefix, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if u, err := url.Parse(value); err == nil && u.IsAbs() {
		return value, nil
	}
	ref, err := url.Parse(prefix + value)
	if err != nil {
		return "", err
	}
	if d.base == nil {
		return ref.String(), nil
	}
	return d.base.ResolveReference(ref).String(), nil
}

func joinPath(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	}
	return prefix + "." + key
}
