package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/MichalMitros/price-tracker/internal/platform"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Store --filename store.go

// Store reads products and manages their categories.
type Store interface {
	SearchProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error)
	GetProduct(ctx context.Context, id int) (*models.ProductView, error)
	PriceHistory(ctx context.Context, productID int) ([]models.HistoricalPrice, error)
	UncategorizedProducts(ctx context.Context, offset, limit int) ([]models.ProductView, error)
	CountUncategorizedProducts(ctx context.Context) (int, error)
	AssignProductCategory(ctx context.Context, productID, categoryID int) error
	ListRetailers(ctx context.Context) ([]models.Retailer, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UnmappedRetailerCategories(ctx context.Context) ([]models.RetailerCategory, error)
	MapRetailerCategory(ctx context.Context, retailerCategoryID, categoryID int) (int64, error)
}

// Option is custom configuration of Server.
type Option func(s *Server)

// Server serves products read API.
type Server struct {
	store  Store
	logger *zerolog.Logger
}

// NewServer returns new Server reading from provided store.
func NewServer(store Store, ops ...Option) *Server {
	nop := zerolog.Nop()
	srv := &Server{
		store:  store,
		logger: &nop,
	}

	for _, op := range ops {
		op(srv)
	}

	return srv
}

// Router returns gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	router.GET("/ping", s.ping)

	products := router.Group("/products")
	{
		products.GET("", s.searchProducts)
		products.GET("/uncategorized", s.uncategorizedProducts)
		products.GET("/uncategorized/count", s.countUncategorizedProducts)
		products.GET("/:id", s.getProduct)
		products.GET("/:id/history", s.priceHistory)
		products.PATCH("/:id/category", s.assignProductCategory)
	}

	router.GET("/retailers", s.listRetailers)
	router.GET("/categories", s.listCategories)
	router.POST("/categories", s.createCategory)

	retailerCategories := router.Group("/retailer-categories")
	{
		retailerCategories.GET("/unmapped", s.unmappedRetailerCategories)
		retailerCategories.PATCH("/:id/map", s.mapRetailerCategory)
	}

	return router
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// badRequest responds with validation error.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// storeError responds with not found for missing entities and logs everything else.
func (s *Server) storeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, platform.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(msg)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
}

// WithLogger sets Server's logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}
