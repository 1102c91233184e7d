// Package catalog holds the static reference data: local foods with their
// risk tiers, the symptom vocabulary, the care directory and the rotating
// daily insights. The data ships embedded in the binary.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultData []byte

// ErrInvalidCatalog indicates the catalog document failed validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// FoodItem is a known dish and its static risk tier.
type FoodItem struct {
	Name string          `yaml:"name"`
	Tier domain.RiskTier `yaml:"tier"`
}

type providerDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Open     bool   `yaml:"open"`
	Delivery bool   `yaml:"delivery"`
	Phone    string `yaml:"phone"`
}

type document struct {
	SupportEmail string        `yaml:"support_email"`
	Foods        []FoodItem    `yaml:"foods"`
	Symptoms     []string      `yaml:"symptoms"`
	Providers    []providerDoc `yaml:"providers"`
	Insights     []string      `yaml:"insights"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	supportEmail string
	foods        []FoodItem
	byName       map[string]domain.RiskTier
	symptoms     []string
	providers    []domain.CareProvider
	insights     []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded document
// is malformed, which the package tests guard against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultData)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a catalog YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		supportEmail: doc.SupportEmail,
		byName:       make(map[string]domain.RiskTier, len(doc.Foods)),
		symptoms:     doc.Symptoms,
		insights:     doc.Insights,
	}
	for i, f := range doc.Foods {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return nil, fmt.Errorf("%w: food %d has no name", ErrInvalidCatalog, i)
		}
		if !f.Tier.Valid() {
			return nil, fmt.Errorf("%w: food %q has tier %q", ErrInvalidCatalog, f.Name, f.Tier)
		}
		key := normalize(f.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate food %q", ErrInvalidCatalog, f.Name)
		}
		c.byName[key] = f.Tier
		c.foods = append(c.foods, f)
	}
	for _, p := range doc.Providers {
		c.providers = append(c.providers, domain.CareProvider{
			ID:             p.ID,
			Name:           p.Name,
			Location:       p.Location,
			IsOpen:         p.Open,
			OffersDelivery: p.Delivery,
			Phone:          p.Phone,
		})
	}
	return c, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LookupFoodRisk matches name against the catalog case-insensitively.
// There is no fuzzy matching; callers treat a miss as "use default tier".
func (c *Catalog) LookupFoodRisk(name string) (domain.RiskTier, bool) {
	tier, ok := c.byName[normalize(name)]
	return tier, ok
}

// Foods returns the catalog foods in document order.
func (c *Catalog) Foods() []FoodItem {
	return append([]FoodItem(nil), c.foods...)
}

// FoodNames returns the food names in document order, for input suggestions.
func (c *Catalog) FoodNames() []string {
	names := make([]string, len(c.foods))
	for i, f := range c.foods {
		names[i] = f.Name
	}
	return names
}

// FoodsByTier returns the foods in the given tier, in document order.
func (c *Catalog) FoodsByTier(tier domain.RiskTier) []FoodItem {
	var out []FoodItem
	for _, f := range c.foods {
		if f.Tier == tier {
			out = append(out, f)
		}
	}
	return out
}

// SymptomSuggestions returns the symptom vocabulary in its fixed order.
func (c *Catalog) SymptomSuggestions() []string {
	return append([]string(nil), c.symptoms...)
}

// Providers returns the full care directory.
func (c *Catalog) Providers() []domain.CareProvider {
	return append([]domain.CareProvider(nil), c.providers...)
}

// SearchProviders filters the care directory by a case-insensitive substring
// of name or location. A blank query returns everything.
func (c *Catalog) SearchProviders(query string) []domain.CareProvider {
	q := normalize(query)
	if q == "" {
		return c.Providers()
	}
	var out []domain.CareProvider
	for _, p := range c.providers {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Location), q) {
			out = append(out, p)
		}
	}
	return out
}

// Insights returns all daily insight texts.
func (c *Catalog) Insights() []string {
	return append([]string(nil), c.insights...)
}

// DailyInsight picks the insight for t's day of month.
func (c *Catalog) DailyInsight(t time.Time) string {
	if len(c.insights) == 0 {
		return ""
	}
	return c.insights[t.Day()%len(c.insights)]
}

// SupportEmail is the address for complaints and feedback.
func (c *Catalog) SupportEmail() string {
	return c.supportEmail
}
