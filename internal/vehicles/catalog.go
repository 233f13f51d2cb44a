package vehicles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrUnknownCategory is returned for category lookups outside the catalog
var ErrUnknownCategory = errors.New("vehicles: unknown category")

// Catalog serves the vehicle inventory from a JSON file. The file is seeded
// with the sample inventory when missing and read once at startup.
type Catalog struct {
	mu        sync.RWMutex
	inventory Inventory
}

// NewCatalog loads the inventory from path, seeding the file first when it
// does not exist yet.
func NewCatalog(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("vehicles: create data dir: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := json.MarshalIndent(SampleInventory(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("vehicles: encode seed catalog: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("vehicles: seed catalog: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vehicles: read catalog: %w", err)
	}
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("vehicles: decode catalog: %w", err)
	}
	return &Catalog{inventory: inv}, nil
}

// NewStaticCatalog wraps an in-memory inventory, used by tests and as a
// fallback when no data directory is configured.
func NewStaticCatalog(inv Inventory) *Catalog {
	return &Catalog{inventory: inv}
}

// All returns the full inventory grouped by category.
func (c *Catalog) All() Inventory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inventory
}

// ByCategory returns the listings for one category.
func (c *Catalog) ByCategory(category string) ([]Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.inventory[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return list, nil
}

// PromptInventory renders the catalog as the Turkish inventory block the
// assistant's system prompt embeds.
func (c *Catalog) PromptInventory() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Galerindeki mevcut araçlar:\n\n")
	for _, category := range Categories {
		list, ok := c.inventory[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "🚗 %s KATEGORİSİ:\n", strings.ToUpper(category))
		for _, v := range list {
			fmt.Fprintf(&b, "- %s %s (%d) - ₺%s TL\n", v.Brand, v.Model, v.Year, formatPrice(v.Price))
			fmt.Fprintf(&b, "  Özellikler: %s\n", strings.Join(v.Features, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatPrice groups digits with commas, 850000 becomes 850,000.
func formatPrice(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
