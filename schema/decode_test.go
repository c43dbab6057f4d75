package schema_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/schema"
	goerrors "github.com/goliatone/go-errors"
)

type floor struct {
	Type  *catalog.EntryName `json:"type"`
	Value int                `json:"value"`
}

type listing struct {
	ID          int                  `json:"id"`
	Reference   int64                `json:"reference"`
	Price       float64              `json:"price"`
	Currency    string               `json:"currency"`
	Email       string               `json:"email"`
	Name        *string              `json:"name"`
	Published   bool                 `json:"published"`
	Active      bool                 `json:"active"`
	Type        *catalog.EntryName   `json:"type"`
	Status      *catalog.EntryName   `json:"status"`
	Tags        []*catalog.EntryName `json:"tags"`
	Floor       floor                `json:"floor"`
	Parking     *floor               `json:"parking"`
	Floors      []floor              `json:"floors"`
	Values      []int                `json:"values"`
	Providers   string               `json:"providers"`
	CreatedAt   time.Time            `json:"created_at"`
	DeliveredAt *time.Time           `json:"delivered_at"`
	Brand       any                  `json:"brand"`
	Rates       []any                `json:"rates"`
	Sleeps      *int                 `json:"sleeps"`
}

var floorRecord = schema.NewRecord("floor",
	schema.Catalog("type", catalog.PropertyFloor),
	schema.Int("value"),
)

var listingRecord = schema.NewRecord("listing",
	schema.Int("id"),
	schema.Int("reference").Strict(),
	schema.Float("price"),
	schema.String("currency").Lower(),
	schema.String("email").Check(is.EmailFormat),
	schema.String("name").Nullable(),
	schema.Bool("published").Coerce(),
	schema.Bool("active"),
	schema.Catalog("type", catalog.PropertyType),
	schema.Catalog("status", catalog.PropertyStatus).Strict(),
	schema.List("tags", schema.Catalog("", catalog.Tags)),
	schema.Nested("floor", floorRecord),
	schema.Nested("parking", floorRecord).Nullable(),
	schema.List("floors", schema.Nested("", floorRecord)),
	schema.IntCSV("values"),
	schema.URL("providers", "agencies"),
	schema.Time("created_at"),
	schema.Time("delivered_at").Nullable(),
	schema.Undocumented("brand"),
	schema.List("rates", schema.Raw("")),
	schema.Int("sleeps").Optional(),
)

const listingJSON = `{
	"id": "42",
	"reference": 1001,
	"price": "250000.50",
	"currency": "EUR",
	"email": "agent@example.com",
	"name": null,
	"published": 1,
	"active": true,
	"type": 1,
	"status": 3,
	"tags": [5, "6"],
	"floor": {"type": 2, "value": 3},
	"parking": null,
	"floors": [{"type": 0, "value": 1}, {"type": "2", "value": "4"}],
	"values": "1,2, 3",
	"providers": "/7/providers",
	"created_at": "2024-03-01 10:30:00",
	"delivered_at": "",
	"brand": "acme",
	"rates": [{"any": "thing"}],
	"unknown_key": "ignored"
}`

type lookupRecorder struct {
	calls atomic.Int32
	seen  []string
}

func (l *lookupRecorder) lookup(ctx context.Context, name catalog.Name, id int) (*catalog.EntryName, error) {
	l.calls.Add(1)
	l.seen = append(l.seen, name.String())
	return &catalog.EntryName{Name: name.String() + "#" + strconv.Itoa(id)}, nil
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestDecodeJSON_FullRecord(t *testing.T) {
	rec := &lookupRecorder{}
	logger, logs := captureLogger()

	got, err := schema.DecodeJSON[listing](context.Background(), listingRecord, []byte(listingJSON), rec.lookup,
		schema.WithBaseURL("https://api.apimo.pro"),
		schema.WithLogger(logger),
	)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if got.ID != 42 || got.Reference != 1001 {
		t.Errorf("expected id 42 and reference 1001, got %d and %d", got.ID, got.Reference)
	}
	if got.Price != 250000.50 {
		t.Errorf("expected price 250000.50, got %v", got.Price)
	}
	if got.Currency != "eur" {
		t.Errorf("expected lower-cased currency, got %q", got.Currency)
	}
	if got.Name != nil {
		t.Errorf("expected nil name, got %q", *got.Name)
	}
	if !got.Published || !got.Active {
		t.Errorf("expected published and active, got %v and %v", got.Published, got.Active)
	}
	if got.Type == nil || got.Type.Name != "property_type#1" {
		t.Errorf("expected resolved type, got %+v", got.Type)
	}
	if got.Status == nil || got.Status.Name != "property_status#3" {
		t.Errorf("expected resolved status, got %+v", got.Status)
	}
	if len(got.Tags) != 2 || got.Tags[1].Name != "tags#6" {
		t.Errorf("expected two resolved tags, got %+v", got.Tags)
	}
	if got.Floor.Type == nil || got.Floor.Value != 3 {
		t.Errorf("unexpected floor: %+v", got.Floor)
	}
	if got.Parking != nil {
		t.Errorf("expected nil parking, got %+v", got.Parking)
	}
	if len(got.Floors) != 2 || got.Floors[0].Type != nil || got.Floors[1].Value != 4 {
		t.Errorf("unexpected floors: %+v", got.Floors)
	}
	if len(got.Values) != 3 || got.Values[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got.Values)
	}
	if got.Providers != "https://api.apimo.pro/agencies/7/providers" {
		t.Errorf("unexpected providers URL: %s", got.Providers)
	}
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Errorf("expected %v, got %v", want, got.CreatedAt)
	}
	if got.DeliveredAt != nil {
		t.Errorf("expected nil delivered_at for an empty date, got %v", got.DeliveredAt)
	}
	if got.Brand != "acme" {
		t.Errorf("expected undocumented value to pass through, got %v", got.Brand)
	}
	if len(got.Rates) != 1 {
		t.Errorf("expected raw rates to pass through, got %v", got.Rates)
	}
	if got.Sleeps != nil {
		t.Errorf("expected missing optional field to stay nil, got %v", *got.Sleeps)
	}

	// type, status, two tags, floor.type and floors[1].type
	if rec.calls.Load() != 6 {
		t.Errorf("expected 6 lookups, got %d (%v)", rec.calls.Load(), rec.seen)
	}
	if !strings.Contains(logs.String(), "undocumented field") || !strings.Contains(logs.String(), "path=brand") {
		t.Errorf("expected an undocumented field warning, got %q", logs.String())
	}
}

func TestDecode_UndocumentedNulls(t *testing.T) {
	rec := schema.NewRecord("lot",
		schema.Undocumented("rank"),
		schema.List("name", schema.Undocumented("").NonNullable()),
	)
	type lot struct {
		Rank any   `json:"rank"`
		Name []any `json:"name"`
	}
	logger, logs := captureLogger()

	got, err := schema.DecodeJSON[lot](context.Background(), rec, []byte(`{"rank": null, "name": [null, "A"]}`), nil, schema.WithLogger(logger))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if got.Rank != nil || len(got.Name) != 2 || got.Name[0] != nil || got.Name[1] != "A" {
		t.Errorf("expected values to pass through, got %+v", got)
	}
	if strings.Contains(logs.String(), "path=rank") {
		t.Errorf("expected a nullable null to stay quiet, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), "path=name[0]") || !strings.Contains(logs.String(), "path=name[1]") {
		t.Errorf("expected warnings for every name item, got %q", logs.String())
	}
}

func TestDecode_ZeroCatalogIDSkipsLookup(t *testing.T) {
	rec := schema.NewRecord("coded",
		schema.Catalog("type", catalog.PropertyType),
		schema.Catalog("subtype", catalog.PropertySubtype),
		schema.Catalog("condition", catalog.PropertyCondition).Nullable(),
		schema.List("tags", schema.Catalog("", catalog.Tags)),
	)
	type coded struct {
		Type      *catalog.EntryName   `json:"type"`
		Subtype   *catalog.EntryName   `json:"subtype"`
		Condition *catalog.EntryName   `json:"condition"`
		Tags      []*catalog.EntryName `json:"tags"`
	}

	var calls atomic.Int32
	lookup := func(ctx context.Context, name catalog.Name, id int) (*catalog.EntryName, error) {
		calls.Add(1)
		return &catalog.EntryName{Name: "unexpected"}, nil
	}

	raw := map[string]any{"type": 0, "subtype": nil, "condition": nil, "tags": []any{0, "0", nil}}
	got, err := schema.Decode[coded](context.Background(), rec, normalize(t, raw), lookup)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Type != nil || got.Subtype != nil || got.Condition != nil {
		t.Errorf("expected nil resolutions, got %+v", got)
	}
	for i, tag := range got.Tags {
		if tag != nil {
			t.Errorf("expected tags[%d] to be nil, got %+v", i, tag)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero lookups for sentinel ids, got %d", calls.Load())
	}
}

func TestDecode_LookupMissYieldsNil(t *testing.T) {
	rec := schema.NewRecord("coded", schema.Catalog("type", catalog.PropertyType))
	type coded struct {
		Type *catalog.EntryName `json:"type"`
	}
	lookup := func(ctx context.Context, name catalog.Name, id int) (*catalog.EntryName, error) {
		return nil, nil
	}

	got, err := schema.DecodeJSON[coded](context.Background(), rec, []byte(`{"type": 99}`), lookup)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if got.Type != nil {
		t.Errorf("expected nil for an unknown code, got %+v", got.Type)
	}
}

func TestDecode_NilLookupRendersIDs(t *testing.T) {
	rec := schema.NewRecord("coded", schema.Catalog("type", catalog.PropertyType))
	type coded struct {
		Type *catalog.EntryName `json:"type"`
	}

	got, err := schema.DecodeJSON[coded](context.Background(), rec, []byte(`{"type": 12}`), nil)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if got.Type == nil || got.Type.Name != "12" {
		t.Errorf("expected the id rendered as the name, got %+v", got.Type)
	}
}

func TestDecode_ValidationErrors(t *testing.T) {
	payload := `{
		"id": "forty-two",
		"reference": "1001",
		"price": 10,
		"currency": 5,
		"email": "not-an-email",
		"name": null,
		"published": 0,
		"active": "yes",
		"type": 1,
		"status": null,
		"tags": 5,
		"floor": {"type": 1},
		"parking": null,
		"floors": [{"type": 1, "value": 1}, {"type": {}, "value": 2}],
		"values": "1,a",
		"providers": "/7",
		"created_at": "yesterday",
		"delivered_at": null,
		"rates": []
	}`

	_, err := schema.DecodeJSON[listing](context.Background(), listingRecord, []byte(payload), nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	fieldErrs, ok := goerrors.GetValidationErrors(err)
	if !ok {
		t.Fatal("expected field errors")
	}
	paths := make(map[string]string)
	for _, fe := range fieldErrs {
		paths[fe.Field] = fe.Message
	}

	for _, path := range []string{
		"id", "reference", "currency", "email", "active", "status", "tags",
		"floor.value", "floors[1].type", "values", "created_at",
	} {
		if _, ok := paths[path]; !ok {
			t.Errorf("expected an error for %s, got %v", path, paths)
		}
	}
	if msg := paths["floor.value"]; msg != "required" {
		t.Errorf("expected floor.value to be required, got %q", msg)
	}
	if _, ok := paths["price"]; ok {
		t.Errorf("expected no error for a valid price, got %q", paths["price"])
	}
	if len(paths) != 11 {
		t.Errorf("expected 11 field errors, got %d: %v", len(paths), paths)
	}
}

func TestDecode_LookupErrorAborts(t *testing.T) {
	rec := schema.NewRecord("coded",
		schema.Catalog("type", catalog.PropertyType),
		schema.Int("rooms"),
	)
	type coded struct {
		Type  *catalog.EntryName `json:"type"`
		Rooms int                `json:"rooms"`
	}
	boom := errors.New("network down")
	lookup := func(ctx context.Context, name catalog.Name, id int) (*catalog.EntryName, error) {
		return nil, boom
	}

	_, err := schema.DecodeJSON[coded](context.Background(), rec, []byte(`{"type": 1, "rooms": "x"}`), lookup)
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error to propagate unchanged, got %v", err)
	}
}

func TestDecode_StructMismatchIsInternal(t *testing.T) {
	rec := schema.NewRecord("broken", schema.Int("missing"))
	type broken struct {
		Present int `json:"present"`
	}

	_, err := schema.DecodeJSON[broken](context.Background(), rec, []byte(`{"missing": 1}`), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if goerrors.IsValidation(err) {
		t.Errorf("expected a programming error, not a validation error: %v", err)
	}
	if !goerrors.IsInternal(err) {
		t.Errorf("expected an internal error, got %v", err)
	}
}

func TestDecode_NotAnObject(t *testing.T) {
	_, err := schema.DecodeJSON[listing](context.Background(), listingRecord, []byte(`[1, 2]`), nil)
	if !goerrors.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestDecode_PathPrefix(t *testing.T) {
	rec := schema.NewRecord("coded", schema.Int("rooms"))
	type coded struct {
		Rooms int `json:"rooms"`
	}

	_, err := schema.DecodeJSON[coded](context.Background(), rec, []byte(`{}`), nil, schema.WithPath("properties[3]"))
	fieldErrs, _ := goerrors.GetValidationErrors(err)
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "properties[3].rooms" {
		t.Errorf("expected a prefixed path, got %v", fieldErrs)
	}
}

func TestDecode_LargeIntegers(t *testing.T) {
	rec := schema.NewRecord("counted", schema.Int("id"), schema.Int("small"))
	type counted struct {
		ID    int64 `json:"id"`
		Small int8  `json:"small"`
	}

	got, err := schema.DecodeJSON[counted](context.Background(), rec, []byte(`{"id": 9007199254740993, "small": 1}`), nil)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if got.ID != 9007199254740993 {
		t.Errorf("expected 9007199254740993, got %d", got.ID)
	}

	_, err = schema.DecodeJSON[counted](context.Background(), rec, []byte(`{"id": 9223372036854775808, "small": 300}`), nil)
	fieldErrs, _ := goerrors.GetValidationErrors(err)
	if len(fieldErrs) != 2 || fieldErrs[0].Field != "id" || fieldErrs[1].Field != "small" {
		t.Errorf("expected id and small to be rejected, got %v", fieldErrs)
	}
}

func TestDecode_Location(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	rec := schema.NewRecord("dated", schema.Time("at"))
	type dated struct {
		At time.Time `json:"at"`
	}

	got, err := schema.DecodeJSON[dated](context.Background(), rec, []byte(`{"at": "2024-07-01 12:00:00"}`), nil, schema.WithLocation(paris))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if got.At.UTC().Hour() != 10 {
		t.Errorf("expected 10:00 UTC, got %v", got.At.UTC())
	}
}

func TestRecord_CatalogFields(t *testing.T) {
	fields := listingRecord.CatalogFields()

	want := map[string]catalog.Name{
		"type":          catalog.PropertyType,
		"status":        catalog.PropertyStatus,
		"tags[]":        catalog.Tags,
		"floor.type":    catalog.PropertyFloor,
		"parking.type":  catalog.PropertyFloor,
		"floors[].type": catalog.PropertyFloor,
	}
	if len(fields) != len(want) {
		t.Errorf("expected %d catalog fields, got %d: %v", len(want), len(fields), fields)
	}
	for path, name := range want {
		if fields[path] != name {
			t.Errorf("expected %s to resolve against %s, got %s", path, name, fields[path])
		}
	}
}

// normalize runs a Go literal through the JSON parser so numbers become json.Number.
func normalize(t *testing.T, v map[string]any) any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	raw, err := schema.ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	return raw
}
