// internal/catalog/product.go
package catalog

import "strings"

// Color represents a selectable product color
type Color struct {
	Name string `json:"color_name"`
	Hex  string `json:"color_hex"`
}

// Product is the canonical product record used everywhere inside the service.
// Inbound payloads are mapped into this shape at the boundary by Normalize;
// no other component ever sees a raw product payload.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`          // minor units
	OriginalPrice int64    `json:"original_price"` // minor units, 0 if absent
	Images        []string `json:"images"`
	Colors        []Color  `json:"colors"`
}

// PrimaryImage returns the first product image, or an empty string
func (p Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// ResolveColor matches a color name against the product's known colors,
// case-insensitively. Unmatched names get a synthetic color record so a
// cart line can always carry a (name, hex) pair.
func ResolveColor(p Product, colorName string) Color {
	for _, c := range p.Colors {
		if strings.EqualFold(c.Name, colorName) {
			return c
		}
	}
	return Color{Name: colorName, Hex: "#000000"}
}
