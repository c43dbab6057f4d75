package catalog

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-errors"
)

// Entry is one row of a reference table as served by the API.
type Entry struct {
	ID         int    `json:"id"`
	Culture    string `json:"culture,omitempty"`
	Name       string `json:"name"`
	NamePlural string `json:"name_plurial,omitempty"`
}

// EntryName is the value a catalog-coded field resolves to.
// NamePlural is empty when the API does not provide a plural form.
type EntryName struct {
	Name       string `json:"name"`
	NamePlural string `json:"namePlural,omitempty"`
}

// EntryName projects the entry onto its externally visible name pair.
func (e Entry) EntryName() EntryName {
	return EntryName{Name: e.Name, NamePlural: e.NamePlural}
}

// Definition describes one catalog in the catalogs listing.
type Definition struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Private bool   `json:"private"`
}

// wireEntry keeps presence information so required keys can be told apart from zero values.
type wireEntry struct {
	ID         *int    `json:"id"`
	Culture    *string `json:"culture"`
	Name       *string `json:"name"`
	NamePlural *string `json:"name_plurial"`
}

func (w wireEntry) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ID, validation.NotNil),
		validation.Field(&w.Name, validation.NotNil),
	)
}

type wireDefinition struct {
	Name    *string `json:"name"`
	Path    *string `json:"path"`
	Private *bool   `json:"private"`
}

func (w wireDefinition) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Name, validation.NotNil),
		validation.Field(&w.Path, validation.NotNil, is.URL),
		validation.Field(&w.Private, validation.NotNil),
	)
}

// DecodeEntries parses a catalog entries payload, rejecting rows that do not carry
// a numeric id and a string name.
func DecodeEntries(data []byte) ([]Entry, error) {
	var rows []wireEntry
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "catalog entries payload is not a list of entries")
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, errors.FromOzzoValidation(err, fmt.Sprintf("catalog entry %d is invalid", i))
		}
		entry := Entry{ID: *row.ID, Name: *row.Name}
		if row.Culture != nil {
			entry.Culture = *row.Culture
		}
		if row.NamePlural != nil {
			entry.NamePlural = *row.NamePlural
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DecodeDefinitions parses the catalogs listing payload.
func DecodeDefinitions(data []byte) ([]Definition, error) {
	var rows []wireDefinition
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "catalogs payload is not a list of definitions")
	}

	defs := make([]Definition, 0, len(rows))
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, errors.FromOzzoValidation(err, fmt.Sprintf("catalog definition %d is invalid", i))
		}
		defs = append(defs, Definition{Name: *row.Name, Path: *row.Path, Private: *row.Private})
	}
	return defs, nil
}
