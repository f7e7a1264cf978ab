package storage

import (
	"context"
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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchProducts returns single page of products matching filter and total number of matching products.
func (p Postgres) SearchProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error) {
	condition := productsCondition(&filter)

	var total struct {
		Count int64 `alias:"count"`
	}
	err := pg.SELECT(pg.COUNT(pg.STAR).AS("count")).
		FROM(productsJoin()).
		WHERE(condition).
		QueryContext(ctx, p.db, &total)
	if err != nil {
		return nil, fmt.Errorf("can't count products: %w", err)
	}

	page := &models.ProductPage{
		Products: []models.ProductView{},
		Total:    total.Count,
	}
	if total.Count == 0 {
		return page, nil
	}

	var rows []productRow
	err = pg.SELECT(
		table.Products.AllColumns,
		table.Retailers.AllColumns,
		table.Categories.AllColumns,
	).
		FROM(productsJoin()).
		WHERE(condition).
		ORDER_BY(productsOrder(filter.Sort)...).
		LIMIT(int64(filter.Limit)).
		OFFSET(int64(filter.Offset)).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't search products: %w", err)
	}

	page.Products = lo.Map(rows, func(_ productRow, ix int) models.ProductView {
		return toProductView(&rows[ix])
	})

	return page, nil
}

// GetProduct returns product with its retailer and category names.
// It returns ErrNotFound if there is no product with provided id.
func (p Postgres) GetProduct(ctx context.Context, id int) (*models.ProductView, error) {
	var row productRow
	err := pg.SELECT(
		table.Products.AllColumns,
		table.Retailers.AllColumns,
		table.Categories.AllColumns,
	).
		FROM(productsJoin()).
		WHERE(table.Products.ID.EQ(pg.Int32(int32(id)))).
		QueryContext(ctx, p.db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get product %d: %w", id, platform.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get product %d: %w", id, err)
	}

	return lo.ToPtr(toProductView(&row)), nil
}

// PriceHistory returns archived prices of product in chronological order.
// It returns ErrNotFound if there is no product with provided id.
func (p Postgres) PriceHistory(ctx context.Context, productID int) ([]models.HistoricalPrice, error) {
	if err := p.productExists(ctx, productID); err != nil {
		return nil, err
	}

	var history []pgmodels.HistoricalPrices
	err := table.HistoricalPrices.SELECT(table.HistoricalPrices.AllColumns).
		WHERE(table.HistoricalPrices.ProductID.EQ(pg.Int32(int32(productID)))).
		ORDER_BY(table.HistoricalPrices.RecordedAt.ASC(), table.HistoricalPrices.ID.ASC()).
		QueryContext(ctx, p.db, &history)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get price history of product %d: %w", productID, err)
	}

	return lo.Map(history, func(_ pgmodels.HistoricalPrices, ix int) models.HistoricalPrice {
		return toHistoricalPrice(&history[ix])
	}), nil
}

// UncategorizedProducts returns products without normalized category, newest first.
func (p Postgres) UncategorizedProducts(ctx context.Context, offset, limit int) ([]models.ProductView, error) {
	var rows []productRow
	err := pg.SELECT(
		table.Products.AllColumns,
		table.Retailers.AllColumns,
		table.Categories.AllColumns,
	).
		FROM(productsJoin()).
		WHERE(table.Products.CategoryID.IS_NULL()).
		ORDER_BY(table.Products.ID.DESC()).
		LIMIT(int64(limit)).
		OFFSET(int64(offset)).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get uncategorized products: %w", err)
	}

	return lo.Map(rows, func(_ productRow, ix int) models.ProductView {
		return toProductView(&rows[ix])
	}), nil
}

// CountUncategorizedProducts returns number of products without normalized category.
func (p Postgres) CountUncategorizedProducts(ctx context.Context) (int, error) {
	var result struct {
		Count int64 `alias:"count"`
	}
	err := table.Products.SELECT(pg.COUNT(pg.STAR).AS("count")).
		WHERE(table.Products.CategoryID.IS_NULL()).
		QueryContext(ctx, p.db, &result)
	if err != nil {
		return 0, fmt.Errorf("can't count uncategorized products: %w", err)
	}

	return int(result.Count), nil
}

// ListRetailers returns all retailers ordered by name.
func (p Postgres) ListRetailers(ctx context.Context) ([]models.Retailer, error) {
	var retailers []pgmodels.Retailers
	err := table.Retailers.SELECT(table.Retailers.AllColumns).
		ORDER_BY(table.Retailers.Name.ASC()).
		QueryContext(ctx, p.db, &retailers)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get retailers: %w", err)
	}

	return lo.Map(retailers, func(_ pgmodels.Retailers, ix int) models.Retailer {
		return *toRetailer(&retailers[ix])
	}), nil
}

func (p Postgres) productExists(ctx context.Context, id int) error {
	var product pgmodels.Products
	err := table.Products.SELECT(table.Products.ID).
		WHERE(table.Products.ID.EQ(pg.Int32(int32(id)))).
		QueryContext(ctx, p.db, &product)
	if errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("can't get product %d: %w", id, platform.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("can't get product %d: %w", id, err)
	}

	return nil
}

func productsJoin() pg.ReadableTable {
	return table.Products.
		INNER_JOIN(table.Retailers, table.Retailers.ID.EQ(table.Products.RetailerID)).
		LEFT_JOIN(table.Categories, table.Categories.ID.EQ(table.Products.CategoryID))
}

func productsCondition(filter *models.ProductFilter) pg.BoolExpression {
	conditions := []pg.BoolExpression{pg.Bool(true)}

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		conditions = append(conditions, pg.LOWER(table.Products.Title).LIKE(pg.String(pattern)))
	}

	if len(filter.Retailers) > 0 {
		conditions = append(conditions, pg.LOWER(table.Retailers.Name).IN(lowerStrings(filter.Retailers)...))
	}

	if len(filter.Categories) > 0 {
		conditions = append(conditions, pg.LOWER(table.Categories.Name).IN(lowerStrings(filter.Categories)...))
	}

	if filter.MinPrice.Valid {
		conditions = append(conditions, table.Products.FinalPrice.GT_EQ(pg.Decimal(filter.MinPrice.Decimal.String())))
	}

	if filter.MaxPrice.Valid {
		conditions = append(conditions, table.Products.FinalPrice.LT_EQ(pg.Decimal(filter.MaxPrice.Decimal.String())))
	}

	if filter.InStock != nil {
		conditions = append(conditions, table.Products.InStock.EQ(pg.Bool(*filter.InStock)))
	}

	return pg.AND(conditions...)
}

func productsOrder(sort models.ProductSort) []pg.OrderByClause {
	tieBreaker := table.Products.ID.DESC()

	switch sort {
	case models.SortPriceAsc:
		return []pg.OrderByClause{table.Products.FinalPrice.ASC().NULLS_LAST(), tieBreaker}
	case models.SortPriceDesc:
		return []pg.OrderByClause{table.Products.FinalPrice.DESC().NULLS_LAST(), tieBreaker}
	case models.SortNameAsc:
		return []pg.OrderByClause{pg.LOWER(table.Products.Title).ASC(), tieBreaker}
	case models.SortNameDesc:
		return []pg.OrderByClause{pg.LOWER(table.Products.Title).DESC(), tieBreaker}
	case models.SortRetailerAsc:
		return []pg.OrderByClause{table.Retailers.Name.ASC(), tieBreaker}
	case models.SortRetailerDesc:
		return []pg.OrderByClause{table.Retailers.Name.DESC(), tieBreaker}
	case models.SortDateAsc:
		return []pg.OrderByClause{table.Products.AddedAt.ASC(), table.Products.ID.ASC()}
	case models.SortDateDesc:
		return []pg.OrderByClause{table.Products.AddedAt.DESC(), tieBreaker}
	default:
		return []pg.OrderByClause{table.Products.UpdatedAt.DESC(), tieBreaker}
	}
}

func lowerStrings(values []string) []pg.Expression {
	return lo.Map(values, func(value string, _ int) pg.Expression {
		return pg.String(strings.ToLower(strings.TrimSpace(value)))
	})
}
