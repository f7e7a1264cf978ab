package storagetesting

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/table"
	"github.com/go-jet/jet/v2/qrm"

	pgmodels "github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/model"
	pg "github.com/go-jet/jet/v2/postgres"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. Test is skipped if DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertRetailers is a helper test function to insert retailers.
func InsertRetailers(t *testing.T, exc qrm.Executable, retailers ...pgmodels.Retailers) {
	t.Helper()

	if len(retailers) == 0 {
		return
	}

	_, err := table.Retailers.INSERT(table.Retailers.AllColumns).MODELS(retailers).Exec(exc)
	if err != nil {
		t.Fatal("can't insert retailers", err)
	}
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Categories) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.Categories.INSERT(table.Categories.AllColumns).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// InsertRetailerCategories is a helper test function to insert retailer categories.
func InsertRetailerCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.RetailerCategories) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.RetailerCategories.INSERT(table.RetailerCategories.AllColumns).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert retailer categories", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Runs) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.Runs.INSERT(table.Runs.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertProducts is a helper test function to insert products.
// Products with zero ID get IDs assigned by database.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Products) {
	t.Helper()

	for ix := range products {
		columns := table.Products.AllColumns
		if products[ix].ID == 0 {
			columns = table.Products.MutableColumns
		}

		_, err := table.Products.INSERT(columns).MODEL(products[ix]).Exec(exc)
		if err != nil {
			t.Fatal("can't insert products", err)
		}
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.Runs {
	t.Helper()

	runs := []pgmodels.Runs{}
	err := table.Runs.SELECT(table.Runs.AllColumns).
		WHERE(table.Runs.ID.IS_NOT_NULL()).
		ORDER_BY(table.Runs.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetProducts is a helper test function to get all products ordered by id.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Products {
	t.Helper()

	products := []pgmodels.Products{}
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(table.Products.ID.IS_NOT_NULL()).
		ORDER_BY(table.Products.ID.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProductByURL is a helper test function to get product by URL.
func GetProductByURL(t *testing.T, queryable qrm.Queryable, url string) pgmodels.Products {
	t.Helper()

	var product pgmodels.Products
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(table.Products.URL.EQ(pg.String(url))).
		Query(queryable, &product)
	if err != nil {
		t.Fatal("can't get product", err)
	}

	return product
}

// GetHistoricalPrices is a helper test function to get price history of product in chronological order.
func GetHistoricalPrices(t *testing.T, queryable qrm.Queryable, productID int32) []pgmodels.HistoricalPrices {
	t.Helper()

	history := []pgmodels.HistoricalPrices{}
	err := table.HistoricalPrices.SELECT(table.HistoricalPrices.AllColumns).
		WHERE(table.HistoricalPrices.ProductID.EQ(pg.Int32(productID))).
		ORDER_BY(table.HistoricalPrices.ID.ASC()).
		Query(queryable, &history)
	if err != nil {
		t.Fatal("can't get historical prices", err)
	}

	return history
}

// GetRetailerCategories is a helper test function to get all retailer categories.
func GetRetailerCategories(t *testing.T, queryable qrm.Queryable) []pgmodels.RetailerCategories {
	t.Helper()

	categories := []pgmodels.RetailerCategories{}
	err := table.RetailerCategories.SELECT(table.RetailerCategories.AllColumns).
		WHERE(table.RetailerCategories.ID.IS_NOT_NULL()).
		ORDER_BY(table.RetailerCategories.ID.ASC()).
		Query(queryable, &categories)
	if err != nil {
		t.Fatal("can't get retailer categories", err)
	}

	return categories
}

// CleanupData is a helper test function to delete all data and reset ids.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := exc.ExecContext(context.Background(), `TRUNCATE historical_prices, products, runs, retailer_categories, categories, retailers RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatal("can't delete data", err)
	}
}
