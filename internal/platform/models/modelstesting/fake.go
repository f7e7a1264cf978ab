package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FakeRecord returns models.ScrapeRecord with fake data and both prices set.
func FakeRecord(ops ...func(r *models.ScrapeRecord)) models.ScrapeRecord {
	final := FakePrice()
	record := models.ScrapeRecord{
		URL:           fmt.Sprintf("https://%s.test/%s", faker.Word(), faker.Word()),
		Title:         faker.Sentence(),
		OriginalPrice: decimal.NewNullDecimal(final.Decimal.Add(decimal.NewFromInt(rand.Int63n(500)))),
		FinalPrice:    final,
		ImageURL:      lo.ToPtr(faker.URL()),
		CategoryLabel: lo.ToPtr(faker.Word()),
		RetailerID:    rand.Intn(1000) + 1,
		InStock:       true,
		Version:       rand.Int63(),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakeSite returns models.Site with fake data and single category.
func FakeSite(ops ...func(s *models.Site)) models.Site {
	url := fmt.Sprintf("https://%s.test", faker.Word())
	site := models.Site{
		Name:             faker.Word(),
		URL:              url,
		PageParam:        "page",
		FirstPage:        1,
		MaxPages:         5,
		DecimalSeparator: ",",
		Categories: []models.SiteCategory{
			{URL: url + "/" + faker.Word(), Label: faker.Word()},
		},
		Selectors: models.Selectors{
			Item:       "div.product",
			Title:      "h3",
			Link:       "a",
			FinalPrice: ".price",
		},
	}

	for _, op := range ops {
		op(&site)
	}

	return site
}

// FakePrice returns random present price with two decimal places.
func FakePrice() decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.New(rand.Int63n(10_000_000)+100, -2))
}

// Price returns present price parsed from s. It panics on malformed input.
func Price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
