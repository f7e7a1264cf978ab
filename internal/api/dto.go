package api

import (
	"time"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Error string `json:"error"`
}

type pageResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type countResponse struct {
	Count int `json:"count"`
}

type offsetResponse[T any] struct {
	Data   []T `json:"data"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type productResponse struct {
	ID             int                 `json:"id"`
	URL            string              `json:"url"`
	Title          string              `json:"title"`
	OriginalPrice  decimal.NullDecimal `json:"originalPrice"`
	FinalPrice     decimal.NullDecimal `json:"finalPrice"`
	ImageURL       *string             `json:"imageUrl"`
	RetailCategory *string             `json:"retailCategory"`
	CategoryID     *int                `json:"categoryId"`
	Category       *string             `json:"category"`
	RetailerID     int                 `json:"retailerId"`
	Retailer       string              `json:"retailer"`
	InStock        bool                `json:"inStock"`
	AddedAt        time.Time           `json:"addedAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type historicalPriceResponse struct {
	ID            int                 `json:"id"`
	OriginalPrice decimal.NullDecimal `json:"originalPrice"`
	FinalPrice    decimal.NullDecimal `json:"finalPrice"`
	RecordedAt    time.Time           `json:"recordedAt"`
}

type retailerResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type retailerCategoryResponse struct {
	ID         int    `json:"id"`
	RetailerID int    `json:"retailerId"`
	Name       string `json:"name"`
	CategoryID *int   `json:"categoryId"`
}

type mappingResponse struct {
	RetailerCategoryID int   `json:"retailerCategoryId"`
	CategoryID         int   `json:"categoryId"`
	UpdatedProducts    int64 `json:"updatedProducts"`
}

type categoryRequest struct {
	CategoryID int `json:"categoryId" binding:"required,min=1"`
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func toProductResponse(view models.ProductView, _ int) productResponse {
	return productResponse{
		ID:             view.ID,
		URL:            view.URL,
		Title:          view.Title,
		OriginalPrice:  view.OriginalPrice,
		FinalPrice:     view.FinalPrice,
		ImageURL:       view.ImageURL,
		RetailCategory: view.RetailCategory,
		CategoryID:     view.CategoryID,
		Category:       view.CategoryName,
		RetailerID:     view.RetailerID,
		Retailer:       view.RetailerName,
		InStock:        view.InStock,
		AddedAt:        view.AddedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func toHistoricalPriceResponse(history models.HistoricalPrice, _ int) historicalPriceResponse {
	return historicalPriceResponse{
		ID:            history.ID,
		OriginalPrice: history.OriginalPrice,
		FinalPrice:    history.FinalPrice,
		RecordedAt:    history.RecordedAt,
	}
}

func toRetailerResponse(retailer models.Retailer, _ int) retailerResponse {
	return retailerResponse{
		ID:   retailer.ID,
		Name: retailer.Name,
		URL:  retailer.URL,
	}
}

func toCategoryResponse(category models.Category, _ int) categoryResponse {
	return categoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

func toRetailerCategoryResponse(category models.RetailerCategory, _ int) retailerCategoryResponse {
	return retailerCategoryResponse{
		ID:         category.ID,
		RetailerID: category.RetailerID,
		Name:       category.Name,
		CategoryID: category.CategoryID,
	}
}
