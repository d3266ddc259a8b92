package order

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Coercion describes how a raw cell becomes a field value.
type Coercion int

const (
	// CoerceText keeps the cell text; blank cells take Default.
	CoerceText Coercion = iota
	// CoerceNullable keeps the cell text; blank cells become null.
	CoerceNullable
	// CoerceAmount parses a non-negative finite number; anything else is 0.
	CoerceAmount
	// CoercePlaceholder keeps the cell text; blank cells get Default
	// formatted with the record position.
	CoercePlaceholder
)

func (c Coercion) String() string {
	switch c {
	case CoerceText:
		return "text"
	case CoerceNullable:
		return "nullable"
	case CoerceAmount:
		return "amount"
	case CoercePlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("coercion(%d)", int(c))
	}
}

// Default values for blank cells.
const (
	DefaultCategory = CategoryPrime
	DefaultScale    = "50 nmol"
	PlaceholderName = "Imported Product %d"
)

// Value is a coerced cell.
type Value struct {
	Text   string
	Null   bool
	Number float64
}

// Column binds one worksheet column to one OrderLineRecord field.
type Column struct {
	Index    int // 1-based worksheet column
	Header   string
	Field    string
	Default  string
	Coercion Coercion

	set func(*OrderLineRecord, Value)
	get func(OrderLineRecord) any
}

// Columns is the fixed row schema shared by the importer, the exporter's
// record conversion and the template generator. Order matters.
var Columns = []Column{
	{
		Index: 1, Header: "Kategori", Field: "category",
		Default: DefaultCategory, Coercion: CoerceText,
		set: func(r *OrderLineRecord, v Value) { r.Category = v.Text },
		get: func(r OrderLineRecord) any { return r.Category },
	},
	{
		Index: 2, Header: "5' Modifikasyon", Field: "modifications.fivePrime",
		Coercion: CoerceText,
		set:      func(r *OrderLineRecord, v Value) { r.Modifications.FivePrime = v.Text },
		get:      func(r OrderLineRecord) any { return r.Modifications.FivePrime },
	},
	{
		Index: 3, Header: "3' Modifikasyon", Field: "modifications.threePrime",
		Coercion: CoerceText,
		set:      func(r *OrderLineRecord, v Value) { r.Modifications.ThreePrime = v.Text },
		get:      func(r OrderLineRecord) any { return r.Modifications.ThreePrime },
	},
	{
		Index: 4, Header: "Saflaştırma", Field: "purification",
		Coercion: CoerceNullable,
		set: func(r *OrderLineRecord, v Value) {
			if v.Null {
				r.Purification = nil
				return
			}
			r.Purification = StringPtr(v.Text)
		},
		get: func(r OrderLineRecord) any {
			if r.Purification == nil {
				return nil
			}
			return *r.Purification
		},
	},
	{
		Index: 5, Header: "Skala", Field: "scale",
		Default: DefaultScale, Coercion: CoerceText,
		set: func(r *OrderLineRecord, v Value) { r.Scale = v.Text },
		get: func(r OrderLineRecord) any { return r.Scale },
	},
	{
		Index: 6, Header: "Toplam Fiyat", Field: "totalPrice",
		Default: "0", Coercion: CoerceAmount,
		set: func(r *OrderLineRecord, v Value) { r.TotalPrice = v.Number },
		get: func(r OrderLineRecord) any { return r.TotalPrice },
	},
	{
		Index: 7, Header: "Oligo Adı", Field: "name",
		Default: PlaceholderName, Coercion: CoercePlaceholder,
		set: func(r *OrderLineRecord, v Value) { r.Name = v.Text },
		get: func(r OrderLineRecord) any { return r.Name },
	},
}

// Headers returns the header row in column order.
func Headers() []string {
	headers := make([]string, len(Columns))
	for i, col := range Columns {
		headers[i] = col.Header
	}
	return headers
}

// Resolve coerces a raw cell. position is the 1-based record position and is
// only consulted by placeholder columns.
func (c Column) Resolve(raw string, position int) Value {
	blank := IsBlank(raw)
	switch c.Coercion {
	case CoerceNullable:
		if blank {
			return Value{Null: true}
		}
		return Value{Text: raw}
	case CoerceAmount:
		return Value{Number: ParseAmount(raw)}
	case CoercePlaceholder:
		if blank {
			return Value{Text: fmt.Sprintf(c.Default, position)}
		}
		return Value{Text: raw}
	default:
		if blank {
			return Value{Text: c.Default}
		}
		return Value{Text: raw}
	}
}

// MapRow maps one data row onto a record. Missing trailing cells count as
// blank and extra cells are ignored. Purification is taken verbatim; the
// prime-only rule is an export concern.
func MapRow(position int, cells []string) OrderLineRecord {
	var rec OrderLineRecord
	for _, col := range Columns {
		col.set(&rec, col.Resolve(cellAt(cells, col.Index), position))
	}
	return rec
}

// RecordRow turns a record into raw template row values, applying the
// export-side purification rule.
func RecordRow(rec OrderLineRecord) []any {
	rec = rec.ForExport()
	row := make([]any, len(Columns))
	for i, col := range Columns {
		row[i] = col.get(rec)
	}
	return row
}

// IsBlank reports whether a cell counts as absent.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func cellAt(cells []string, index int) string {
	if index < 1 || index > len(cells) {
		return ""
	}
	return cells[index-1]
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseAmount reads the leading decimal number of a cell, so "12.50" and
// "12.50 TL" are both 12.5. Non-numeric, negative and non-finite input is 0.
func ParseAmount(raw string) float64 {
	s := leadingNumber.FindString(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return f
}
