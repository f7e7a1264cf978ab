package storage

import (
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/model"
)

//go:generate make -C ../../../ generate-db

// productRow is product joined with its retailer and optional category.
type productRow struct {
	pgmodels.Products

	Retailer pgmodels.Retailers
	Category *pgmodels.Categories
}

func toDBRun(run *models.Run) *pgmodels.Runs {
	return &pgmodels.Runs{
		ID:                int32(run.ID),
		RetailerID:        int32(run.RetailerID),
		CreatedAt:         run.CreatedAt,
		FinishedAt:        run.FinishedAt,
		Success:           run.IsSuccess,
		StatusMessage:     run.StatusMessage,
		CreatedProducts:   run.CreatedProducts,
		UpdatedProducts:   run.UpdatedProducts,
		RefreshedProducts: run.RefreshedProducts,
		SkippedProducts:   run.SkippedProducts,
		FailedProducts:    run.FailedProducts,
		StaleProducts:     run.StaleProducts,
		ProductsVersion:   run.ProductsVersion,
	}
}

// ToRun converts postgres run model into models.Run.
func ToRun(run *pgmodels.Runs) *models.Run {
	return &models.Run{
		ID:                int(run.ID),
		RetailerID:        int(run.RetailerID),
		CreatedAt:         run.CreatedAt,
		FinishedAt:        run.FinishedAt,
		IsSuccess:         run.Success,
		StatusMessage:     run.StatusMessage,
		CreatedProducts:   run.CreatedProducts,
		UpdatedProducts:   run.UpdatedProducts,
		RefreshedProducts: run.RefreshedProducts,
		SkippedProducts:   run.SkippedProducts,
		FailedProducts:    run.FailedProducts,
		StaleProducts:     run.StaleProducts,
		ProductsVersion:   run.ProductsVersion,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Products {
	return &pgmodels.Products{
		ID:             int32(product.ID),
		URL:            product.URL,
		Title:          product.Title,
		OriginalPrice:  product.OriginalPrice,
		FinalPrice:     product.FinalPrice,
		ImageURL:       product.ImageURL,
		RetailCategory: product.RetailCategory,
		CategoryID:     toDBID(product.CategoryID),
		RetailerID:     int32(product.RetailerID),
		InStock:        product.InStock,
		ScrapeVersion:  product.ScrapeVersion,
		AddedAt:        product.AddedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

// ToProduct converts postgres product model into models.Product.
func ToProduct(product *pgmodels.Products) *models.Product {
	return &models.Product{
		ID:             int(product.ID),
		URL:            product.URL,
		Title:          product.Title,
		OriginalPrice:  product.OriginalPrice,
		FinalPrice:     product.FinalPrice,
		ImageURL:       product.ImageURL,
		RetailCategory: product.RetailCategory,
		CategoryID:     fromDBID(product.CategoryID),
		RetailerID:     int(product.RetailerID),
		InStock:        product.InStock,
		ScrapeVersion:  product.ScrapeVersion,
		AddedAt:        product.AddedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

func toProductView(row *productRow) models.ProductView {
	view := models.ProductView{
		Product:      *ToProduct(&row.Products),
		RetailerName: row.Retailer.Name,
	}
	if row.Category != nil {
		view.CategoryName = lo.ToPtr(row.Category.Name)
	}
	return view
}

func toDBHistoricalPrice(history *models.HistoricalPrice) *pgmodels.HistoricalPrices {
	return &pgmodels.HistoricalPrices{
		ProductID:     int32(history.ProductID),
		OriginalPrice: history.OriginalPrice,
		FinalPrice:    history.FinalPrice,
		RecordedAt:    history.RecordedAt,
	}
}

func toHistoricalPrice(history *pgmodels.HistoricalPrices) models.HistoricalPrice {
	return models.HistoricalPrice{
		ID:            int(history.ID),
		ProductID:     int(history.ProductID),
		OriginalPrice: history.OriginalPrice,
		FinalPrice:    history.FinalPrice,
		RecordedAt:    history.RecordedAt,
	}
}

func toRetailer(retailer *pgmodels.Retailers) *models.Retailer {
	return &models.Retailer{
		ID:        int(retailer.ID),
		Name:      retailer.Name,
		URL:       retailer.URL,
		CreatedAt: retailer.CreatedAt,
	}
}

func toCategory(category *pgmodels.Categories) *models.Category {
	return &models.Category{
		ID:   int(category.ID),
		Name: category.Name,
	}
}

func toRetailerCategory(category *pgmodels.RetailerCategories) *models.RetailerCategory {
	return &models.RetailerCategory{
		ID:         int(category.ID),
		RetailerID: int(category.RetailerID),
		Name:       category.Name,
		CategoryID: fromDBID(category.CategoryID),
	}
}

func toDBID(id *int) *int32 {
	if id == nil {
		return nil
	}
	return lo.ToPtr(int32(*id))
}

func fromDBID(id *int32) *int {
	if id == nil {
		return nil
	}
	return lo.ToPtr(int(*id))
}
