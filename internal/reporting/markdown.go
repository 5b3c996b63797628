package reporting

import (
	"fmt"
	"strings"
	"time"

	"resto-cost-lab/internal/domain"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Rapport coûts & marges\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Period: %s → %s | Interval: %s\n\n",
		r.From.Format("2006-01-02"), r.To.Format("2006-01-02"), r.Interval))

	// Supplier spend
	sb.WriteString("## Dépenses par fournisseur\n\n")
	sb.WriteString(fmt.Sprintf("Total HT: %.2f\n\n", r.SupplierSpend.TotalSpend))
	if len(r.SupplierSpend.Suppliers) > 0 {
		sb.WriteString("| Fournisseur | Total HT | Lignes | Part |\n")
		sb.WriteString("|-------------|----------|--------|------|\n")
		for _, s := range r.SupplierSpend.Suppliers {
			sb.WriteString(fmt.Sprintf("| %s | %.2f | %d | %.1f%% |\n",
				s.Name, s.Total, s.LineCount, s.SharePct))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Aucune dépense sur la période.\n\n")
	}
	if len(r.SupplierSpend.Trend) > 0 {
		sb.WriteString("### Évolution\n\n")
		sb.WriteString("| Période | Total HT |\n")
		sb.WriteString("|---------|----------|\n")
		for _, b := range r.SupplierSpend.Trend {
			sb.WriteString(fmt.Sprintf("| %s | %.2f |\n", b.BucketStart.Format("2006-01-02"), b.Value))
		}
		sb.WriteString(fmt.Sprintf("\nVariation: %s (%s)\n\n",
			fmtOptional(r.SupplierSpend.Change.Absolute, "%.2f"),
			fmtOptionalPct(r.SupplierSpend.Change.Relative)))
	}

	// Product consumption
	sb.WriteString("## Consommation par produit\n\n")
	if len(r.Consumption.Products) > 0 {
		sb.WriteString("| Produit | Quantité | Total HT | PU moyen | Écart marché | Économie | Badge |\n")
		sb.WriteString("|---------|----------|----------|----------|--------------|----------|-------|\n")
		for _, p := range r.Consumption.Products {
			badge := "-"
			if p.Tier != nil {
				badge = p.Tier.String()
			}
			sb.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %s | %s | %s | %s |\n",
				p.Name, p.TotalQty, p.TotalSpend,
				fmtOptional(p.AvgUnitPrice, "%.2f"),
				fmtOptional(p.GapPercent, "%.1f%%"),
				fmtOptional(p.Saving, "%.2f"),
				badge))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Aucun produit sur la période.\n\n")
	}

	// Market comparison
	sb.WriteString("## Comparaison marché\n\n")
	if len(r.Market.Products) > 0 {
		sb.WriteString("| Produit | PU moyen | Marché | Écart | Volatilité | Dernier achat | Recommandation |\n")
		sb.WriteString("|---------|----------|--------|-------|------------|---------------|----------------|\n")
		for _, p := range r.Market.Products {
			label := "-"
			if p.Label != nil {
				label = string(*p.Label)
			}
			staleness := "-"
			if p.DaysSinceLast != nil {
				staleness = fmt.Sprintf("il y a %d j", *p.DaysSinceLast)
			}
			marketRange := "-"
			if p.Comparison.MarketMin != nil && p.Comparison.MarketMax != nil {
				marketRange = fmt.Sprintf("%.2f–%.2f", *p.Comparison.MarketMin, *p.Comparison.MarketMax)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
				p.Name,
				fmtOptional(p.UserAvgPrice, "%.2f"),
				marketRange,
				fmtOptional(p.Comparison.GapPercent, "%.1f%%"),
				fmtOptional(p.Volatility, "%.2f"),
				staleness,
				label))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Aucune donnée marché sur la période.\n\n")
	}

	// Margin trends
	sb.WriteString("## Marges par recette\n\n")
	if len(r.MarginTrends) > 0 {
		sb.WriteString("| Recette | Marge min | Marge max | Marge moyenne | Dernière | Variation |\n")
		sb.WriteString("|---------|-----------|-----------|---------------|----------|----------|\n")
		for _, t := range r.MarginTrends {
			sb.WriteString(fmt.Sprintf("| %s | %.1f%% | %.1f%% | %.1f%% | %s | %s |\n",
				t.Name, t.Summary.Min, t.Summary.Max, t.Summary.Avg,
				fmtOptional(t.Summary.Last, "%.1f%%"),
				fmtOptional(t.Change.Absolute, "%+.1f pt")))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Aucune marge suivie sur la période.\n")
	}

	return sb.String()
}

// fmtOptional renders a nullable float, "-" when absent.
func fmtOptional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// fmtOptionalPct renders a nullable ratio as a percentage.
func fmtOptionalPct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", domain.RatioToPercent(*v))
}
