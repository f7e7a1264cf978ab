package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (s *Server) searchProducts(c *gin.Context) {
	query, err := parseProductsQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	page, err := s.store.SearchProducts(c.Request.Context(), query.filter)
	if err != nil {
		s.storeError(c, err, "can't search products")
		return
	}

	c.JSON(http.StatusOK, pageResponse[productResponse]{
		Data:  lo.Map(page.Products, toProductResponse),
		Total: page.Total,
		Page:  query.page,
		Limit: query.limit,
	})
}

func (s *Server) uncategorizedProducts(c *gin.Context) {
	offset, err := intParam(c, "offset", 0, 0, maxOffset)
	if err != nil {
		badRequest(c, err)
		return
	}

	limit, err := intParam(c, "limit", defaultUncategorizedLimit, 1, maxUncategorizedLimit)
	if err != nil {
		badRequest(c, err)
		return
	}

	products, err := s.store.UncategorizedProducts(c.Request.Context(), offset, limit)
	if err != nil {
		s.storeError(c, err, "can't get uncategorized products")
		return
	}

	c.JSON(http.StatusOK, offsetResponse[productResponse]{
		Data:   lo.Map(products, toProductResponse),
		Offset: offset,
		Limit:  limit,
	})
}

func (s *Server) countUncategorizedProducts(c *gin.Context) {
	count, err := s.store.CountUncategorizedProducts(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "can't count uncategorized products")
		return
	}

	c.JSON(http.StatusOK, countResponse{Count: count})
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	product, err := s.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		s.storeError(c, err, "can't get product")
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*product, 0))
}

func (s *Server) priceHistory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	history, err := s.store.PriceHistory(c.Request.Context(), id)
	if err != nil {
		s.storeError(c, err, "can't get price history")
		return
	}

	c.JSON(http.StatusOK, listResponse[historicalPriceResponse]{
		Data: lo.Map(history, toHistoricalPriceResponse),
	})
}

func (s *Server) assignProductCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.store.AssignProductCategory(c.Request.Context(), id, req.CategoryID); err != nil {
		s.storeError(c, err, "can't assign product category")
		return
	}

	c.Status(http.StatusNoContent)
}
