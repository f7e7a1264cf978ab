package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/price-tracker/internal/api"
	"github.com/MichalMitros/price-tracker/internal/api/mocks"
	"github.com/MichalMitros/price-tracker/internal/platform"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/models/modelstesting"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	addedAt   = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	updatedAt = time.Date(2024, time.March, 5, 12, 30, 0, 0, time.UTC)
	product   = models.ProductView{
		Product: models.Product{
			ID:             7,
			URL:            "https://www.acme.test/p/phone-x",
			Title:          "Phone X",
			OriginalPrice:  modelstesting.Price("1299.99"),
			FinalPrice:     modelstesting.Price("999.5"),
			ImageURL:       lo.ToPtr("https://www.acme.test/img/phone-x.jpg"),
			RetailCategory: lo.ToPtr("celulares"),
			CategoryID:     lo.ToPtr(3),
			RetailerID:     2,
			InStock:        true,
			AddedAt:        addedAt,
			UpdatedAt:      updatedAt,
		},
		RetailerName: "Acme",
		CategoryName: lo.ToPtr("Phones"),
	}
	productJSON = `{
		"id": 7,
		"url": "https://www.acme.test/p/phone-x",
		"title": "Phone X",
		"originalPrice": "1299.99",
		"finalPrice": "999.5",
		"imageUrl": "https://www.acme.test/img/phone-x.jpg",
		"retailCategory": "celulares",
		"categoryId": 3,
		"category": "Phones",
		"retailerId": 2,
		"retailer": "Acme",
		"inStock": true,
		"addedAt": "2024-03-01T10:00:00Z",
		"updatedAt": "2024-03-05T12:30:00Z"
	}`
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestUnitPing(t *testing.T) {
	rec := serve(mocks.NewStore(t), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String(), "should return pong")
}

func TestUnitSearchProducts(t *testing.T) {
	tests := map[string]struct {
		query      string
		wantFilter models.ProductFilter
		wantPage   int
		wantLimit  int
	}{
		"defaults": {
			wantFilter: models.ProductFilter{Limit: 20},
			wantPage:   1,
			wantLimit:  20,
		},
		"all filters": {
			query: "?query=%20phone%20&retailers=Acme,Bolt&retailers=Cetrogar&categories=Phones" +
				"&minPrice=100&maxPrice=2000.50&inStock=true&sort=price_asc&page=3&limit=10",
			wantFilter: models.ProductFilter{
				Query:      "phone",
				Retailers:  []string{"Acme", "Bolt", "Cetrogar"},
				Categories: []string{"Phones"},
				MinPrice:   modelstesting.Price("100"),
				MaxPrice:   modelstesting.Price("2000.50"),
				InStock:    lo.ToPtr(true),
				Sort:       models.SortPriceAsc,
				Offset:     20,
				Limit:      10,
			},
			wantPage:  3,
			wantLimit: 10,
		},
		"out of stock sorted by date": {
			query: "?inStock=false&sort=date_desc&limit=100",
			wantFilter: models.ProductFilter{
				InStock: lo.ToPtr(false),
				Sort:    models.SortDateDesc,
				Limit:   100,
			},
			wantPage:  1,
			wantLimit: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)
			store.On("SearchProducts", mock.Anything, tt.wantFilter).
				Return(&models.ProductPage{Products: []models.ProductView{product}, Total: 41}, nil)

			rec := serve(store, http.MethodGet, "/products"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
			assert.JSONEq(t,
				fmt.Sprintf(`{"data":[%s],"total":41,"page":%d,"limit":%d}`, productJSON, tt.wantPage, tt.wantLimit),
				rec.Body.String(),
				"should return products page",
			)
		})
	}
}

func TestUnitSearchProductsInvalidQuery(t *testing.T) {
	tests := map[string]string{
		"page zero":          "?page=0",
		"page not a number":  "?page=two",
		"limit zero":         "?limit=0",
		"limit too big":      "?limit=101",
		"page too big":       "?page=9223372036854775807",
		"page overflowing":   "?page=21474837",
		"negative price":     "?minPrice=-1",
		"malformed price":    "?maxPrice=cheap",
		"inverted prices":    "?minPrice=200&maxPrice=100",
		"malformed in stock": "?inStock=maybe",
		"unknown sort":       "?sort=popularity",
	}

	for name, query := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)

			rec := serve(store, http.MethodGet, "/products"+query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code, "should return bad request status")
			assert.Contains(t, rec.Body.String(), `"error"`, "should return error message")
			store.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything)
		})
	}
}

func TestUnitSearchProductsStoreError(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("SearchProducts", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := serve(store, http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code, "should return internal error status")
	assert.JSONEq(t, `{"error":"can't search products"}`, rec.Body.String(), "shouldn't leak storage error")
}

func TestUnitGetProduct(t *testing.T) {
	tests := map[string]struct {
		target     string
		mock       func(store *mocks.Store)
		wantStatus int
		wantBody   string
	}{
		"ok": {
			target: "/products/7",
			mock: func(store *mocks.Store) {
				store.On("GetProduct", mock.Anything, 7).Return(&product, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   productJSON,
		},
		"not found": {
			target: "/products/8",
			mock: func(store *mocks.Store) {
				store.On("GetProduct", mock.Anything, 8).Return(nil, fmt.Errorf("can't get product: %w", platform.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"can't get product: not found"}`,
		},
		"store error": {
			target: "/products/9",
			mock: func(store *mocks.Store) {
				store.On("GetProduct", mock.Anything, 9).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"can't get product"}`,
		},
		"invalid id": {
			target:     "/products/abc",
			mock:       func(*mocks.Store) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid id"}`,
		},
		"non positive id": {
			target:     "/products/0",
			mock:       func(*mocks.Store) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid id"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)
			tt.mock(store)

			rec := serve(store, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code, "should return correct status")
			assert.JSONEq(t, tt.wantBody, rec.Body.String(), "should return correct body")
		})
	}
}

func TestUnitPriceHistory(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("PriceHistory", mock.Anything, 7).Return([]models.HistoricalPrice{
			{ID: 1, ProductID: 7, OriginalPrice: modelstesting.Price("1500"), FinalPrice: modelstesting.Price("1200"), RecordedAt: addedAt},
			{ID: 4, ProductID: 7, FinalPrice: modelstesting.Price("1100.25"), RecordedAt: updatedAt},
		}, nil)

		rec := serve(store, http.MethodGet, "/products/7/history", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t, `{"data":[
			{"id":1,"originalPrice":"1500","finalPrice":"1200","recordedAt":"2024-03-01T10:00:00Z"},
			{"id":4,"originalPrice":null,"finalPrice":"1100.25","recordedAt":"2024-03-05T12:30:00Z"}
		]}`, rec.Body.String(), "should return chronological history")
	})

	t.Run("empty history", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("PriceHistory", mock.Anything, 7).Return(nil, nil)

		rec := serve(store, http.MethodGet, "/products/7/history", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t, `{"data":[]}`, rec.Body.String(), "should return empty list")
	})

	t.Run("product not found", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("PriceHistory", mock.Anything, 7).Return(nil, platform.ErrNotFound)

		rec := serve(store, http.MethodGet, "/products/7/history", "")

		assert.Equal(t, http.StatusNotFound, rec.Code, "should return not found status")
	})
}

func TestUnitUncategorizedProducts(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("UncategorizedProducts", mock.Anything, 40, 50).Return([]models.ProductView{product}, nil)

		rec := serve(store, http.MethodGet, "/products/uncategorized?offset=40", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t,
			fmt.Sprintf(`{"data":[%s],"offset":40,"limit":50}`, productJSON),
			rec.Body.String(),
			"should return uncategorized products",
		)
	})

	t.Run("max limit", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("UncategorizedProducts", mock.Anything, 0, 200).Return([]models.ProductView{}, nil)

		rec := serve(store, http.MethodGet, "/products/uncategorized?limit=200", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
	})

	invalid := map[string]string{
		"negative offset": "?offset=-1",
		"huge offset":     "?offset=9223372036854775807",
		"limit too big":   "?limit=201",
	}
	for name, query := range invalid {
		t.Run(name, func(t *testing.T) {
			rec := serve(mocks.NewStore(t), http.MethodGet, "/products/uncategorized"+query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code, "should return bad request status")
		})
	}
}

func TestUnitCountUncategorizedProducts(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("CountUncategorizedProducts", mock.Anything).Return(12, nil)

		rec := serve(store, http.MethodGet, "/products/uncategorized/count", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t, `{"count":12}`, rec.Body.String(), "should return number of uncategorized products")
	})

	t.Run("store error", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("CountUncategorizedProducts", mock.Anything).Return(0, assert.AnError)

		rec := serve(store, http.MethodGet, "/products/uncategorized/count", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "should return internal server error status")
		assert.JSONEq(t, `{"error":"can't count uncategorized products"}`, rec.Body.String(), "should return error message")
	})
}

func TestUnitAssignProductCategory(t *testing.T) {
	tests := map[string]struct {
		body       string
		mock       func(store *mocks.Store)
		wantStatus int
	}{
		"ok": {
			body: `{"categoryId":3}`,
			mock: func(store *mocks.Store) {
				store.On("AssignProductCategory", mock.Anything, 7, 3).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		"missing category": {
			body:       `{}`,
			mock:       func(*mocks.Store) {},
			wantStatus: http.StatusBadRequest,
		},
		"malformed body": {
			body:       `{"categoryId":`,
			mock:       func(*mocks.Store) {},
			wantStatus: http.StatusBadRequest,
		},
		"not found": {
			body: `{"categoryId":3}`,
			mock: func(store *mocks.Store) {
				store.On("AssignProductCategory", mock.Anything, 7, 3).Return(platform.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewStore(t)
			tt.mock(store)

			rec := serve(store, http.MethodPatch, "/products/7/category", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, "should return correct status")
		})
	}
}

func TestUnitListRetailers(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListRetailers", mock.Anything).Return([]models.Retailer{
		{ID: 1, Name: "Acme", URL: "https://www.acme.test", CreatedAt: addedAt},
		{ID: 2, Name: "Bolt", URL: "https://bolt.test", CreatedAt: addedAt},
	}, nil)

	rec := serve(store, http.MethodGet, "/retailers", "")

	assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
	assert.JSONEq(t, `{"data":[
		{"id":1,"name":"Acme","url":"https://www.acme.test"},
		{"id":2,"name":"Bolt","url":"https://bolt.test"}
	]}`, rec.Body.String(), "should return retailers")
}

func TestUnitCategories(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("ListCategories", mock.Anything).Return([]models.Category{{ID: 3, Name: "Phones"}}, nil)

		rec := serve(store, http.MethodGet, "/categories", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t, `{"data":[{"id":3,"name":"Phones"}]}`, rec.Body.String(), "should return categories")
	})

	t.Run("create", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("CreateCategory", mock.Anything, "Phones").Return(&models.Category{ID: 3, Name: "Phones"}, nil)

		rec := serve(store, http.MethodPost, "/categories", `{"name":"  Phones "}`)

		assert.Equal(t, http.StatusCreated, rec.Code, "should return created status")
		assert.JSONEq(t, `{"id":3,"name":"Phones"}`, rec.Body.String(), "should return created category")
	})

	t.Run("create with blank name", func(t *testing.T) {
		rec := serve(mocks.NewStore(t), http.MethodPost, "/categories", `{"name":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "should return bad request status")
		assert.JSONEq(t, `{"error":"name can't be empty"}`, rec.Body.String(), "should return validation error")
	})

	t.Run("create store error", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("CreateCategory", mock.Anything, "Phones").Return(nil, assert.AnError)

		rec := serve(store, http.MethodPost, "/categories", `{"name":"Phones"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "should return internal error status")
	})
}

func TestUnitRetailerCategories(t *testing.T) {
	t.Run("unmapped", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("UnmappedRetailerCategories", mock.Anything).Return([]models.RetailerCategory{
			{ID: 5, RetailerID: 2, Name: "celulares"},
		}, nil)

		rec := serve(store, http.MethodGet, "/retailer-categories/unmapped", "")

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t,
			`{"data":[{"id":5,"retailerId":2,"name":"celulares","categoryId":null}]}`,
			rec.Body.String(),
			"should return unmapped retailer categories",
		)
	})

	t.Run("map", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("MapRetailerCategory", mock.Anything, 5, 3).Return(int64(12), nil)

		rec := serve(store, http.MethodPatch, "/retailer-categories/5/map", `{"categoryId":3}`)

		assert.Equal(t, http.StatusOK, rec.Code, "should return ok status")
		assert.JSONEq(t,
			`{"retailerCategoryId":5,"categoryId":3,"updatedProducts":12}`,
			rec.Body.String(),
			"should return number of updated products",
		)
	})

	t.Run("map unknown category", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("MapRetailerCategory", mock.Anything, 5, 99).Return(int64(0), platform.ErrNotFound)

		rec := serve(store, http.MethodPatch, "/retailer-categories/5/map", `{"categoryId":99}`)

		assert.Equal(t, http.StatusNotFound, rec.Code, "should return not found status")
	})

	t.Run("map invalid id", func(t *testing.T) {
		rec := serve(mocks.NewStore(t), http.MethodPatch, "/retailer-categories/x/map", `{"categoryId":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "should return bad request status")
	})
}

// serve handles single request with API router.
func serve(store api.Store, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	api.NewServer(store).Router().ServeHTTP(rec, req)

	return rec
}
