package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/table"
	"github.com/MichalMitros/price-tracker/internal/tracker"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const maxUpsertAttempts = 3

// errProductConflict is returned when product was inserted concurrently by another transaction.
var errProductConflict = errors.New("product inserted concurrently")

var _ tracker.Storage = Postgres{}

// UpsertProduct locks product stored under url, passes it to decide and persists returned change
// together with price history entry in single transaction.
// If another transaction inserts the same url first, decision is repeated against the inserted product.
func (p Postgres) UpsertProduct(ctx context.Context, url string, decide tracker.ChangeFunc) error {
	var err error
	for attempt := 0; attempt < maxUpsertAttempts; attempt++ {
		err = runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
			return upsertProduct(ctx, tx, url, decide)
		})
		if !errors.Is(err, errProductConflict) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("can't upsert product %q: %w", url, err)
	}

	return nil
}

func upsertProduct(ctx context.Context, tx *sql.Tx, url string, decide tracker.ChangeFunc) error {
	stored, err := lockProduct(ctx, tx, url)
	if err != nil {
		return fmt.Errorf("can't get stored product: %w", err)
	}

	change, err := decide(stored)
	if err != nil {
		return err
	}

	if err = resolveCategory(ctx, tx, &change.Product); err != nil {
		return fmt.Errorf("can't resolve product category: %w", err)
	}

	if stored == nil {
		return insertProduct(ctx, tx, &change.Product)
	}

	change.Product.ID = stored.ID
	if err = updateProduct(ctx, tx, &change.Product); err != nil {
		return err
	}

	if change.History != nil {
		if err = insertHistoricalPrice(ctx, tx, change.History); err != nil {
			return err
		}
	}

	return nil
}

func lockProduct(ctx context.Context, db qrm.DB, url string) (*models.Product, error) {
	var product pgmodels.Products
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(table.Products.URL.EQ(pg.String(url))).
		FOR(pg.UPDATE()).
		QueryContext(ctx, db, &product)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ToProduct(&product), nil
}

func insertProduct(ctx context.Context, db qrm.DB, product *models.Product) error {
	var inserted pgmodels.Products
	err := table.Products.INSERT(table.Products.MutableColumns).
		MODEL(ToDBProduct(product)).
		ON_CONFLICT(table.Products.URL).
		DO_NOTHING().
		RETURNING(table.Products.ID).
		QueryContext(ctx, db, &inserted)
	if errors.Is(err, qrm.ErrNoRows) {
		return errProductConflict
	}
	if err != nil {
		return fmt.Errorf("can't insert product into database: %w", err)
	}

	product.ID = int(inserted.ID)

	return nil
}

func updateProduct(ctx context.Context, db qrm.DB, product *models.Product) error {
	columnList := table.Products.MutableColumns.Except(table.Products.URL, table.Products.AddedAt)

	_, err := table.Products.UPDATE(columnList).
		MODEL(ToDBProduct(product)).
		WHERE(table.Products.ID.EQ(pg.Int32(int32(product.ID)))).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't update product in database: %w", err)
	}

	return nil
}

func insertHistoricalPrice(ctx context.Context, db qrm.DB, history *models.HistoricalPrice) error {
	_, err := table.HistoricalPrices.INSERT(table.HistoricalPrices.MutableColumns).
		MODEL(toDBHistoricalPrice(history)).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert historical price into database: %w", err)
	}

	return nil
}

// resolveCategory registers product's retail category label and assigns its mapped category.
// Unmapped labels keep product's current category.
func resolveCategory(ctx context.Context, db qrm.DB, product *models.Product) error {
	if product.RetailCategory == nil || *product.RetailCategory == "" {
		return nil
	}

	retailerCategory, err := getOrCreateRetailerCategory(ctx, db, product.RetailerID, *product.RetailCategory)
	if err != nil {
		return err
	}

	if retailerCategory.CategoryID != nil {
		product.CategoryID = lo.ToPtr(int(*retailerCategory.CategoryID))
	}

	return nil
}

func getOrCreateRetailerCategory(ctx context.Context, db qrm.DB, retailerID int, name string) (*pgmodels.RetailerCategories, error) {
	_, err := table.RetailerCategories.INSERT(table.RetailerCategories.RetailerID, table.RetailerCategories.Name).
		MODEL(pgmodels.RetailerCategories{
			RetailerID: int32(retailerID),
			Name:       name,
		}).
		ON_CONFLICT(table.RetailerCategories.RetailerID, table.RetailerCategories.Name).
		DO_NOTHING().
		ExecContext(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("can't add retailer category: %w", err)
	}

	var category pgmodels.RetailerCategories
	err = table.RetailerCategories.SELECT(table.RetailerCategories.AllColumns).
		WHERE(pg.AND(
			table.RetailerCategories.RetailerID.EQ(pg.Int32(int32(retailerID))),
			table.RetailerCategories.Name.EQ(pg.String(name)),
		)).
		QueryContext(ctx, db, &category)
	if err != nil {
		return nil, fmt.Errorf("can't get retailer category: %w", err)
	}

	return &category, nil
}
