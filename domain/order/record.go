package order

// CategoryPrime is the only category that carries a purification on export.
const CategoryPrime = "prime"

// Modifications holds the 5' and 3' end modifications of an oligo.
type Modifications struct {
	FivePrime  string `json:"fivePrime"`
	ThreePrime string `json:"threePrime"`
}

// OrderLineRecord is the normalized unit exchanged between the workbook
// importer/exporter and the order collaborators.
type OrderLineRecord struct {
	Category      string        `json:"category"`
	Modifications Modifications `json:"modifications"`
	Purification  *string       `json:"purification"`
	Scale         string        `json:"scale"`
	TotalPrice    float64       `json:"totalPrice"`
	Name          string        `json:"name"`
}

// IsPrime reports whether the record belongs to the prime category.
func (r OrderLineRecord) IsPrime() bool {
	return r.Category == CategoryPrime
}

// ForExport returns a copy with the export-side purification rule applied:
// purification only survives on prime records.
//
// Import does not apply this rule; see MapRow.
func (r OrderLineRecord) ForExport() OrderLineRecord {
	out := r
	if !r.IsPrime() {
		out.Purification = nil
	} else if r.Purification != nil {
		p := *r.Purification
		out.Purification = &p
	}
	return out
}

// TemplateRequest is the exporter input: a template key plus raw row values
// in the template's column order.
type TemplateRequest struct {
	TemplateID string
	Rows       [][]any
}

// RecordsRequest builds a TemplateRequest from records using the shared schema.
func RecordsRequest(templateID string, records []OrderLineRecord) TemplateRequest {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, RecordRow(rec))
	}
	return TemplateRequest{TemplateID: templateID, Rows: rows}
}

// StringPtr is a small helper for building records with a purification.
func StringPtr(s string) *string {
	return &s
}
