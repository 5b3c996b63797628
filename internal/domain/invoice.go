package domain

// InvoiceLine is one purchase line as delivered by the upstream invoice
// feed. Corresponds to the invoice_lines table.
//
// Date is kept in its raw feed form (ISO or DD/MM/YYYY); parsing and the
// rejection of malformed rows happen at the series boundary, not here.
// Numeric fields are nullable because the feed emits partial rows.
type InvoiceLine struct {
	LineID     string
	InvoiceID  string
	SupplierID string
	ProductID  string
	Label      string // free-text designation printed on the invoice
	Date       string // raw feed date, possibly localized
	Quantity   *float64
	UnitPrice  *float64
	Amount     *float64
	Basis      PriceBasis // basis of UnitPrice and Amount
	VATRate    *float64   // percent scale, e.g. 5.5
}

// Supplier is a catalog entry. The engine treats SupplierID as opaque.
type Supplier struct {
	SupplierID string
	Name       string
}

// Product is a catalog entry for a purchasable ingredient.
type Product struct {
	ProductID  string
	Name       string
	CategoryID string
	Unit       string // kg, L, piece — informational only
}
