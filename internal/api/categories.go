package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

var errEmptyName = errors.New("name can't be empty")

func (s *Server) listRetailers(c *gin.Context) {
	retailers, err := s.store.ListRetailers(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "can't list retailers")
		return
	}

	c.JSON(http.StatusOK, listResponse[retailerResponse]{
		Data: lo.Map(retailers, toRetailerResponse),
	})
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.store.ListCategories(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "can't list categories")
		return
	}

	c.JSON(http.StatusOK, listResponse[categoryResponse]{
		Data: lo.Map(categories, toCategoryResponse),
	})
}

func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		badRequest(c, errEmptyName)
		return
	}

	category, err := s.store.CreateCategory(c.Request.Context(), name)
	if err != nil {
		s.storeError(c, err, "can't create category")
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(*category, 0))
}

func (s *Server) unmappedRetailerCategories(c *gin.Context) {
	categories, err := s.store.UnmappedRetailerCategories(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "can't list unmapped retailer categories")
		return
	}

	c.JSON(http.StatusOK, listResponse[retailerCategoryResponse]{
		Data: lo.Map(categories, toRetailerCategoryResponse),
	})
}

func (s *Server) mapRetailerCategory(c *gin.Context) {
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

	updated, err := s.store.MapRetailerCategory(c.Request.Context(), id, req.CategoryID)
	if err != nil {
		s.storeError(c, err, "can't map retailer category")
		return
	}

	c.JSON(http.StatusOK, mappingResponse{
		RetailerCategoryID: id,
		CategoryID:         req.CategoryID,
		UpdatedProducts:    updated,
	})
}
