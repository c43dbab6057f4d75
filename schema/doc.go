// Package schema decodes loosely typed JSON records into Go structs from declarative
// field tables.
//
// A Record lists Fields, each tagged with a Kind: plain values with optional coercion,
// dates, catalog-coded ids, lists, nested records and pass-through values. A single
// engine walks the table, writes into struct fields matched by json tag, resolves
// catalog ids through a catalog.LookupFunc and reports every field level problem in
// one validation error:
//
//	var priceRecord = schema.NewRecord("price",
//		schema.Float("value"),
//		schema.Catalog("period", catalog.PropertyPeriod),
//		schema.String("currency").Lower(),
//	)
//
//	price, err := schema.DecodeJSON[Price](ctx, priceRecord, payload, lookup)
//
// A catalog id of zero or null never reaches the lookup and decodes to nil.
package schema
