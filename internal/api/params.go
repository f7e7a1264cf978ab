package api

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	// offsets of every listing stay within Postgres integer range
	maxOffset = math.MaxInt32
	maxPage   = maxOffset / maxLimit

	defaultUncategorizedLimit = 50
	maxUncategorizedLimit     = 200
)

var sorts = []models.ProductSort{
	models.SortPriceAsc,
	models.SortPriceDesc,
	models.SortNameAsc,
	models.SortNameDesc,
	models.SortRetailerAsc,
	models.SortRetailerDesc,
	models.SortDateAsc,
	models.SortDateDesc,
}

var (
	errInvalidID     = errors.New("invalid id")
	errInvalidPrices = errors.New("minPrice can't be greater than maxPrice")
)

// productsQuery is products search query string.
type productsQuery struct {
	filter models.ProductFilter
	page   int
	limit  int
}

func parseProductsQuery(c *gin.Context) (*productsQuery, error) {
	page, err := intParam(c, "page", 1, 1, maxPage)
	if err != nil {
		return nil, err
	}

	limit, err := intParam(c, "limit", defaultLimit, 1, maxLimit)
	if err != nil {
		return nil, err
	}

	minPrice, err := priceParam(c, "minPrice")
	if err != nil {
		return nil, err
	}

	maxPrice, err := priceParam(c, "maxPrice")
	if err != nil {
		return nil, err
	}

	if minPrice.Valid && maxPrice.Valid && minPrice.Decimal.GreaterThan(maxPrice.Decimal) {
		return nil, errInvalidPrices
	}

	var inStock *bool
	if raw := c.Query("inStock"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid inStock %q", raw)
		}
		inStock = &value
	}

	sort := models.ProductSort(c.Query("sort"))
	if sort != models.SortDefault && !lo.Contains(sorts, sort) {
		return nil, fmt.Errorf("invalid sort %q", sort)
	}

	return &productsQuery{
		filter: models.ProductFilter{
			Query:      strings.TrimSpace(c.Query("query")),
			Retailers:  listParam(c, "retailers"),
			Categories: listParam(c, "categories"),
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			InStock:    inStock,
			Sort:       sort,
			Offset:     (page - 1) * limit,
			Limit:      limit,
		},
		page:  page,
		limit: limit,
	}, nil
}

// intParam returns integer query param within [lower, upper]. Zero upper means no upper bound.
func intParam(c *gin.Context, name string, def, lower, upper int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < lower || (upper > 0 && value > upper) {
		if upper > 0 {
			return 0, fmt.Errorf("%s must be integer between %d and %d", name, lower, upper)
		}
		return 0, fmt.Errorf("%s must be integer not lower than %d", name, lower)
	}

	return value, nil
}

func priceParam(c *gin.Context, name string) (decimal.NullDecimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%s must be non-negative number", name)
	}

	return decimal.NewNullDecimal(value), nil
}

// listParam returns values of repeated and comma separated query param.
func listParam(c *gin.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryArray(name) {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}

	return values
}

func idParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, errInvalidID
	}

	return id, nil
}
