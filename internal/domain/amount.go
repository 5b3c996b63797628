package domain

// AmountHT returns the line total net of VAT. TTC amounts are divided by
// (1 + rate); a TTC line with an unknown VAT rate yields nil because
// guessing a rate would silently mix bases across a report.
func (l InvoiceLine) AmountHT() *float64 {
	return l.toHT(l.Amount)
}

// UnitPriceHT returns the unit price net of VAT, same rules as AmountHT.
func (l InvoiceLine) UnitPriceHT() *float64 {
	return l.toHT(l.UnitPrice)
}

func (l InvoiceLine) toHT(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if l.Basis != BasisTTC {
		c := *v
		return &c
	}
	if l.VATRate == nil {
		return nil
	}
	ht := *v / (1 + PercentToRatio(*l.VATRate))
	return &ht
}
