package reporting

import (
	"fmt"
	"strings"

	"resto-cost-lab/internal/analytics"
)

// RenderConsumptionCSV renders the product consumption ranking as CSV.
func RenderConsumptionCSV(view analytics.ProductConsumptionView) string {
	var sb strings.Builder

	sb.WriteString("product_id,name,total_qty,total_spend_ht,avg_unit_price,gap_percent,potential_saving,tier\n")

	for _, p := range view.Products {
		tier := ""
		if p.Tier != nil {
			tier = fmt.Sprintf("%d", int(*p.Tier))
		}
		sb.WriteString(fmt.Sprintf("%s,%s,%.4f,%.4f,%s,%s,%s,%s\n",
			p.ProductID,
			csvEscape(p.Name),
			p.TotalQty,
			p.TotalSpend,
			csvOptional(p.AvgUnitPrice),
			csvOptional(p.GapPercent),
			csvOptional(p.Saving),
			tier,
		))
	}
	return sb.String()
}

// RenderSupplierCSV renders the supplier spend ranking as CSV.
func RenderSupplierCSV(view analytics.SupplierSpendView) string {
	var sb strings.Builder

	sb.WriteString("supplier_id,name,total_ht,line_count,share_pct\n")

	for _, s := range view.Suppliers {
		sb.WriteString(fmt.Sprintf("%s,%s,%.4f,%d,%.4f\n",
			s.SupplierID, csvEscape(s.Name), s.Total, s.LineCount, s.SharePct))
	}
	return sb.String()
}

func csvOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.4f", *v)
}

func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
