package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/price-tracker/internal/platform"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// ListCategories returns all normalized categories ordered by name.
func (p Postgres) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []pgmodels.Categories
	err := table.Categories.SELECT(table.Categories.AllColumns).
		ORDER_BY(table.Categories.Name.ASC()).
		QueryContext(ctx, p.db, &categories)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get categories: %w", err)
	}

	return lo.Map(categories, func(_ pgmodels.Categories, ix int) models.Category {
		return *toCategory(&categories[ix])
	}), nil
}

// CreateCategory creates normalized category. Existing category with the same name is returned as is.
func (p Postgres) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var category pgmodels.Categories
	err := table.Categories.INSERT(table.Categories.Name).
		MODEL(pgmodels.Categories{Name: strings.TrimSpace(name)}).
		ON_CONFLICT(table.Categories.Name).
		DO_UPDATE(pg.SET(
			table.Categories.Name.SET(table.Categories.EXCLUDED.Name),
		)).
		RETURNING(table.Categories.AllColumns).
		QueryContext(ctx, p.db, &category)
	if err != nil {
		return nil, fmt.Errorf("can't create category: %w", err)
	}

	return toCategory(&category), nil
}

// UnmappedRetailerCategories returns retailer category labels without normalized category.
func (p Postgres) UnmappedRetailerCategories(ctx context.Context) ([]models.RetailerCategory, error) {
	var categories []pgmodels.RetailerCategories
	err := table.RetailerCategories.SELECT(table.RetailerCategories.AllColumns).
		WHERE(table.RetailerCategories.CategoryID.IS_NULL()).
		ORDER_BY(table.RetailerCategories.RetailerID.ASC(), table.RetailerCategories.Name.ASC()).
		QueryContext(ctx, p.db, &categories)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get unmapped retailer categories: %w", err)
	}

	return lo.Map(categories, func(_ pgmodels.RetailerCategories, ix int) models.RetailerCategory {
		return *toRetailerCategory(&categories[ix])
	}), nil
}

// MapRetailerCategory maps retailer category label to normalized category and assigns the category
// to all retailer's products labeled with it. Returns number of updated products.
// It returns ErrNotFound if retailer category or category doesn't exist.
func (p Postgres) MapRetailerCategory(ctx context.Context, retailerCategoryID, categoryID int) (int64, error) {
	var updatedProducts int64

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if err := categoryExists(ctx, tx, categoryID); err != nil {
			return err
		}

		var retailerCategory pgmodels.RetailerCategories
		err := table.RetailerCategories.UPDATE().
			SET(table.RetailerCategories.CategoryID.SET(pg.Int32(int32(categoryID)))).
			WHERE(table.RetailerCategories.ID.EQ(pg.Int32(int32(retailerCategoryID)))).
			RETURNING(table.RetailerCategories.AllColumns).
			QueryContext(ctx, tx, &retailerCategory)
		if errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get retailer category %d: %w", retailerCategoryID, platform.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("can't map retailer category: %w", err)
		}

		result, err := table.Products.UPDATE().
			SET(table.Products.CategoryID.SET(pg.Int32(int32(categoryID)))).
			WHERE(pg.AND(
				table.Products.RetailerID.EQ(pg.Int32(retailerCategory.RetailerID)),
				table.Products.RetailCategory.EQ(pg.String(retailerCategory.Name)),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't assign category to products: %w", err)
		}

		updatedProducts, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	return updatedProducts, nil
}

// AssignProductCategory sets normalized category of single product.
// It returns ErrNotFound if product or category doesn't exist.
func (p Postgres) AssignProductCategory(ctx context.Context, productID, categoryID int) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if err := categoryExists(ctx, tx, categoryID); err != nil {
			return err
		}

		result, err := table.Products.UPDATE().
			SET(table.Products.CategoryID.SET(pg.Int32(int32(categoryID)))).
			WHERE(table.Products.ID.EQ(pg.Int32(int32(productID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't assign category to product: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("can't assign category to product: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("can't get product %d: %w", productID, platform.ErrNotFound)
		}

		return nil
	})
}

func categoryExists(ctx context.Context, db qrm.DB, id int) error {
	var category pgmodels.Categories
	err := table.Categories.SELECT(table.Categories.ID).
		WHERE(table.Categories.ID.EQ(pg.Int32(int32(id)))).
		FOR(pg.SHARE()).
		QueryContext(ctx, db, &category)
	if errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("can't get category %d: %w", id, platform.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("can't get category %d: %w", id, err)
	}

	return nil
}
