package pipeline

import (
	"context"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// LoadFixtures populates stores with demo data for fixtures mode.
// Dates deliberately mix ISO and DD/MM/YYYY forms, the way real invoice
// feeds do.
func LoadFixtures(
	ctx context.Context,
	lines storage.InvoiceLineStore,
	prices storage.MarketPriceStore,
	snapshots storage.MarginSnapshotStore,
	suppliers storage.SupplierStore,
	products storage.ProductStore,
	recipes storage.RecipeStore,
) error {
	if err := loadCatalogs(ctx, suppliers, products, recipes); err != nil {
		return err
	}
	if err := loadInvoiceLines(ctx, lines); err != nil {
		return err
	}
	if err := loadMarketPrices(ctx, prices); err != nil {
		return err
	}
	return loadMarginSnapshots(ctx, snapshots)
}

func loadCatalogs(
	ctx context.Context,
	supplierStore storage.SupplierStore,
	productStore storage.ProductStore,
	recipeStore storage.RecipeStore,
) error {
	for _, s := range []*domain.Supplier{
		{SupplierID: "sup_metro", Name: "Metro"},
		{SupplierID: "sup_pomona", Name: "Pomona"},
		{SupplierID: "sup_transgourmet", Name: "Transgourmet"},
	} {
		if err := supplierStore.Insert(ctx, s); err != nil {
			return err
		}
	}

	for _, p := range []*domain.Product{
		{ProductID: "prod_beurre", Name: "Beurre doux 82%", CategoryID: "cat_cremerie", Unit: "kg"},
		{ProductID: "prod_farine", Name: "Farine T55", CategoryID: "cat_epicerie", Unit: "kg"},
		{ProductID: "prod_boeuf", Name: "Bœuf haché 15% MG", CategoryID: "cat_boucherie", Unit: "kg"},
		{ProductID: "prod_tomate", Name: "Tomate grappe", CategoryID: "cat_primeur", Unit: "kg"},
	} {
		if err := productStore.Insert(ctx, p); err != nil {
			return err
		}
	}

	for _, r := range []*domain.Recipe{
		{RecipeID: "rec_burger", Name: "Burger maison"},
		{RecipeID: "rec_tatin", Name: "Tarte tatin"},
	} {
		if err := recipeStore.Insert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func loadInvoiceLines(ctx context.Context, store storage.InvoiceLineStore) error {
	lines := []*domain.InvoiceLine{
		{
			LineID: "line_001", InvoiceID: "inv_001", SupplierID: "sup_metro",
			ProductID: "prod_beurre", Label: "Beurre doux plaquette 82%",
			Date: "2024-01-08", Quantity: domain.Float(10),
			UnitPrice: domain.Float(8.20), Amount: domain.Float(82.0), Basis: domain.BasisHT,
			VATRate: domain.Float(5.5),
		},
		{
			LineID: "line_002", InvoiceID: "inv_001", SupplierID: "sup_metro",
			ProductID: "prod_farine", Label: "Farine de blé T55 sac 25kg",
			Date: "2024-01-08", Quantity: domain.Float(25),
			UnitPrice: domain.Float(0.95), Amount: domain.Float(23.75), Basis: domain.BasisHT,
			VATRate: domain.Float(5.5),
		},
		{
			// Localized feed date
			LineID: "line_003", InvoiceID: "inv_002", SupplierID: "sup_pomona",
			ProductID: "prod_boeuf", Label: "Steak haché VBF 15%",
			Date: "22/01/2024", Quantity: domain.Float(12),
			UnitPrice: domain.Float(11.40), Amount: domain.Float(136.80), Basis: domain.BasisHT,
			VATRate: domain.Float(5.5),
		},
		{
			LineID: "line_004", InvoiceID: "inv_003", SupplierID: "sup_pomona",
			ProductID: "prod_beurre", Label: "Beurre doux plaquette",
			Date: "2024-02-05", Quantity: domain.Float(10),
			UnitPrice: domain.Float(8.55), Amount: domain.Float(85.50), Basis: domain.BasisHT,
			VATRate: domain.Float(5.5),
		},
		{
			// TTC line, normalized by the engine
			LineID: "line_005", InvoiceID: "inv_004", SupplierID: "sup_transgourmet",
			ProductID: "prod_tomate", Label: "Tomate grappe cat.1",
			Date: "12/02/2024", Quantity: domain.Float(8),
			UnitPrice: domain.Float(2.95), Amount: domain.Float(23.60), Basis: domain.BasisTTC,
			VATRate: domain.Float(5.5),
		},
		{
			LineID: "line_006", InvoiceID: "inv_005", SupplierID: "sup_metro",
			ProductID: "prod_boeuf", Label: "Steak haché VBF 15%",
			Date: "2024-02-19", Quantity: domain.Float(15),
			UnitPrice: domain.Float(11.80), Amount: domain.Float(177.0), Basis: domain.BasisHT,
			VATRate: domain.Float(5.5),
		},
		{
			LineID: "line_007", InvoiceID: "inv_006", SupplierID: "sup_metro",
			ProductID: "prod_beurre", Label: "Beurre doux plaquette 82%",
			Date: "2024-03-04", Quantity: domain.Float(10),
			UnitPrice: domain.Float(8.90), Amount: domain.Float(89.0), Basis: domain.BasisHT,
			VATRate: domain.Float(5.5),
		},
		{
			// Malformed feed row: no parseable date, dropped by the engine
			LineID: "line_008", InvoiceID: "inv_006", SupplierID: "sup_metro",
			ProductID: "prod_farine", Label: "Farine T55",
			Date: "", Quantity: domain.Float(25),
			UnitPrice: domain.Float(0.98), Amount: domain.Float(24.50), Basis: domain.BasisHT,
		},
	}
	return store.InsertBulk(ctx, lines)
}

func loadMarketPrices(ctx context.Context, store storage.MarketPriceStore) error {
	points := []*domain.MarketPricePoint{
		{ProductID: "prod_beurre", Date: "2024-01-01", Price: domain.Float(7.90), Source: "mercuriale"},
		{ProductID: "prod_beurre", Date: "2024-02-01", Price: domain.Float(8.05), Source: "mercuriale"},
		{ProductID: "prod_beurre", Date: "2024-03-01", Price: domain.Float(8.10), Source: "mercuriale"},
		{ProductID: "prod_farine", Date: "2024-01-01", Price: domain.Float(0.92), Source: "mercuriale"},
		{ProductID: "prod_farine", Date: "2024-03-01", Price: domain.Float(0.94), Source: "mercuriale"},
		{ProductID: "prod_boeuf", Date: "2024-01-01", Price: domain.Float(10.80), Source: "mercuriale"},
		{ProductID: "prod_boeuf", Date: "2024-02-01", Price: domain.Float(11.20), Source: "mercuriale"},
		{ProductID: "prod_boeuf", Date: "2024-03-01", Price: domain.Float(11.95), Source: "mercuriale"},
		{ProductID: "prod_tomate", Date: "2024-02-01", Price: domain.Float(2.70), Source: "mercuriale"},
	}
	return store.InsertBulk(ctx, points)
}

func loadMarginSnapshots(ctx context.Context, store storage.MarginSnapshotStore) error {
	snaps := []*domain.RecipeMarginSnapshot{
		{RecipeID: "rec_burger", Date: "2024-01-08", MarginPct: domain.Float(71.5), FoodCost: domain.Float(3.42), SellPriceTTC: domain.Float(14.50)},
		{RecipeID: "rec_burger", Date: "2024-02-05", MarginPct: domain.Float(69.8), FoodCost: domain.Float(3.65), SellPriceTTC: domain.Float(14.50)},
		{RecipeID: "rec_burger", Date: "2024-03-04", MarginPct: domain.Float(68.2), FoodCost: domain.Float(3.84), SellPriceTTC: domain.Float(14.50)},
		{RecipeID: "rec_tatin", Date: "2024-01-15", MarginPct: domain.Float(78.0), FoodCost: domain.Float(1.76), SellPriceTTC: domain.Float(9.50)},
		{RecipeID: "rec_tatin", Date: "2024-03-11", MarginPct: domain.Float(76.4), FoodCost: domain.Float(1.89), SellPriceTTC: domain.Float(9.50)},
	}
	return store.InsertBulk(ctx, snaps)
}
