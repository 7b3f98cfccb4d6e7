// Package tabconv converts flat tabular data between text formats.
//
// Every conversion parses the source text into a [Table], a list of rows
// mapping column names to string values, and serializes the table in the
// target format. The central entry point is [Convert]:
//
//	out, err := tabconv.Convert(text, tabconv.CSV, tabconv.JSON)
//
// When source and target are the same format the text is returned unchanged
// without being parsed.
//
// # Tables
//
// A table's [Table.Header] is the sorted union of every column name in every
// row. It fixes column order in all output, regardless of the order columns
// had in the source. A row lacking a column reads as "" for it.
//
// All values are strings. JSON numbers, booleans, null and nested values are
// flattened to text when parsed (see [Value.String]) and are not recovered by
// a later conversion.
//
// # Sources
//
// CSV, TSV, JSON, NDJSON, YAML, Markdown, XML and XLSX can be parsed. The
// text formats are read heuristically, not by their full grammars:
//
//   - CSV and TSV split lines on the delimiter. Quoted fields are not
//     recognized.
//   - JSON must be an array of objects; NDJSON one object per line.
//   - YAML is a flat sequence of "key: value" blocks introduced by "-".
//   - Markdown needs a header row, a separator row and data rows.
//   - XML rows are "item" or "row" elements, or the singular of their
//     parent ("user" inside "users"); their child elements are columns.
//
// # Targets
//
// Every source format can also be written, plus [TextTable] (a bordered
// terminal table), [HTML], the code shapes [Swift], [TypeScript] and
// [GoStruct], and [GoTemplate]. CSV output quotes fields containing commas,
// quotes or line breaks; TSV output is not escaped.
//
// # Options
//
// A [Converter] carries options such as the XML element names, the emitted
// type name and the text table [BorderStyle]. Its zero value is used by the
// package-level functions.
//
// # Detection and linting
//
// [Detect] guesses the format of raw input, and [Mismatch] turns a wrong
// guess into a warning. [Lint] checks input without converting it, for
// example that every CSV line has the same number of fields.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrFormat]: input is malformed for the source format
//   - [ErrEncoding]: input is not valid UTF-8 text
//   - [ErrUnsupportedConversion]: format cannot be used as source or target
//   - [ErrUnsupportedFormat]: unknown format name
//   - [ErrInvalidTemplate]: invalid go-template syntax
//
// Error messages describe the expected input shape and are suitable for
// showing to users.
package tabconv
