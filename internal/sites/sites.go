package sites

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

const (
	defaultFirstPage        = 1
	defaultMaxPages         = 50
	defaultDecimalSeparator = ","
)

//go:embed sites.toml
var defaultCatalog []byte

var (
	// ErrUnknownRetailer is returned when catalog has no site of requested retailer.
	ErrUnknownRetailer = errors.New("unknown retailer")
	// ErrInvalidSite is returned when site definition is incomplete.
	ErrInvalidSite = errors.New("invalid site definition")
)

type catalogFile struct {
	Sites []siteEntry `toml:"sites"`
}

type siteEntry struct {
	Name             string          `toml:"name"`
	URL              string          `toml:"url"`
	PageParam        string          `toml:"page_param"`
	FirstPage        *int            `toml:"first_page"`
	MaxPages         int             `toml:"max_pages"`
	PageDelay        string          `toml:"page_delay"`
	Render           bool            `toml:"render"`
	DecimalSeparator string          `toml:"decimal_separator"`
	Categories       []categoryEntry `toml:"categories"`
	Selectors        selectorsEntry  `toml:"selectors"`
}

type categoryEntry struct {
	URL   string `toml:"url"`
	Label string `toml:"label"`
}

type selectorsEntry struct {
	Item          string `toml:"item"`
	Title         string `toml:"title"`
	Link          string `toml:"link"`
	FinalPrice    string `toml:"final_price"`
	OriginalPrice string `toml:"original_price"`
	Image         string `toml:"image"`
	OutOfStock    string `toml:"out_of_stock"`
}

// Catalog is set of retailer sites definitions.
type Catalog struct {
	sites []models.Site
}

// Default returns catalog embedded into binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads catalog from TOML file. Empty path means embedded catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open sites file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load decodes and validates TOML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, fmt.Errorf("can't decode sites catalog: %w", err)
	}

	catalog := &Catalog{
		sites: make([]models.Site, 0, len(file.Sites)),
	}
	seen := make(map[string]struct{}, len(file.Sites))

	for ix := range file.Sites {
		site, err := toSite(&file.Sites[ix])
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", ix+1, err)
		}

		key := strings.ToLower(site.Name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: duplicated retailer %q", ErrInvalidSite, site.Name)
		}
		seen[key] = struct{}{}

		catalog.sites = append(catalog.sites, site)
	}

	return catalog, nil
}

// Lookup returns site of retailer with provided name. Names are case insensitive.
func (c *Catalog) Lookup(name string) (*models.Site, error) {
	site, ok := lo.Find(c.sites, func(site models.Site) bool {
		return strings.EqualFold(site.Name, strings.TrimSpace(name))
	})
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRetailer, name)
	}

	return &site, nil
}

// Sites returns all sites in catalog order.
func (c *Catalog) Sites() []models.Site {
	return append([]models.Site(nil), c.sites...)
}

// Names returns names of all retailers in catalog order.
func (c *Catalog) Names() []string {
	return lo.Map(c.sites, func(site models.Site, _ int) string {
		return site.Name
	})
}

func toSite(entry *siteEntry) (models.Site, error) {
	site := models.Site{
		Name:             strings.TrimSpace(entry.Name),
		URL:              strings.TrimRight(strings.TrimSpace(entry.URL), "/"),
		PageParam:        entry.PageParam,
		FirstPage:        defaultFirstPage,
		MaxPages:         entry.MaxPages,
		Render:           entry.Render,
		DecimalSeparator: entry.DecimalSeparator,
		Selectors: models.Selectors{
			Item:          entry.Selectors.Item,
			Title:         entry.Selectors.Title,
			Link:          entry.Selectors.Link,
			FinalPrice:    entry.Selectors.FinalPrice,
			OriginalPrice: entry.Selectors.OriginalPrice,
			Image:         entry.Selectors.Image,
			OutOfStock:    entry.Selectors.OutOfStock,
		},
	}

	if site.Name == "" {
		return site, fmt.Errorf("%w: missing name", ErrInvalidSite)
	}
	if !isAbsoluteURL(site.URL) {
		return site, fmt.Errorf("%w: %s has invalid url %q", ErrInvalidSite, site.Name, entry.URL)
	}
	if site.Selectors.Item == "" || site.Selectors.FinalPrice == "" {
		return site, fmt.Errorf("%w: %s needs item and final_price selectors", ErrInvalidSite, site.Name)
	}
	if len(entry.Categories) == 0 {
		return site, fmt.Errorf("%w: %s has no categories", ErrInvalidSite, site.Name)
	}

	if entry.FirstPage != nil {
		site.FirstPage = *entry.FirstPage
	}
	if site.MaxPages <= 0 {
		site.MaxPages = defaultMaxPages
	}
	if site.DecimalSeparator == "" {
		site.DecimalSeparator = defaultDecimalSeparator
	}
	if entry.PageDelay != "" {
		delay, err := time.ParseDuration(entry.PageDelay)
		if err != nil || delay < 0 {
			return site, fmt.Errorf("%w: %s has invalid page_delay %q", ErrInvalidSite, site.Name, entry.PageDelay)
		}
		site.PageDelay = delay
	}

	for _, category := range entry.Categories {
		if !isAbsoluteURL(category.URL) {
			return site, fmt.Errorf("%w: %s has invalid category url %q", ErrInvalidSite, site.Name, category.URL)
		}
		site.Categories = append(site.Categories, models.SiteCategory{
			URL:   category.URL,
			Label: strings.TrimSpace(category.Label),
		})
	}

	return site, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
