package domain

import "testing"

func TestPercentRatioConversions(t *testing.T) {
	if got := RatioToPercent(0.25); got != 25 {
		t.Errorf("RatioToPercent(0.25) = %v, want 25", got)
	}
	if got := PercentToRatio(25); got != 0.25 {
		t.Errorf("PercentToRatio(25) = %v, want 0.25", got)
	}
	if got := RatioToPercent(PercentToRatio(5.5)); got != 5.5 {
		t.Errorf("round trip of 5.5 = %v", got)
	}
}

func TestInvoiceLineToHT(t *testing.T) {
	tcs := []struct {
		name string
		line InvoiceLine
		want *float64
	}{
		{
			name: "HT amount passes through",
			line: InvoiceLine{Amount: Float(100), Basis: BasisHT},
			want: Float(100),
		},
		{
			name: "TTC amount divided by 1 plus rate",
			line: InvoiceLine{Amount: Float(121), Basis: BasisTTC, VATRate: Float(21)},
			want: Float(100),
		},
		{
			name: "TTC with unknown rate yields nil",
			line: InvoiceLine{Amount: Float(121), Basis: BasisTTC},
			want: nil,
		},
		{
			name: "nil amount yields nil",
			line: InvoiceLine{Basis: BasisHT},
			want: nil,
		},
	}
	for _, tc := range tcs {
		got := tc.line.AmountHT()
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s: AmountHT = %v, want nil", tc.name, *got)
		case tc.want != nil && got == nil:
			t.Errorf("%s: AmountHT = nil, want %v", tc.name, *tc.want)
		case tc.want != nil && got != nil:
			diff := *got - *tc.want
			if diff < -1e-9 || diff > 1e-9 {
				t.Errorf("%s: AmountHT = %v, want %v", tc.name, *got, *tc.want)
			}
		}
	}
}
