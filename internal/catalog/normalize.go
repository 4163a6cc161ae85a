// internal/catalog/normalize.go
package catalog

import (
	"strconv"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/faults"
)

// Normalize maps an arbitrary inbound product payload into the canonical
// Product record. Upstream payloads are duck-typed: the id may arrive as
// "id" or "_id", the display name as "name", "title" or "brand", images as
// an "images" array (of strings or {url} objects) or a single "image"
// string. Everything downstream of this function only deals with Product.
func Normalize(payload map[string]interface{}) (Product, error) {
	if payload == nil {
		return Product{}, faults.Validationf("product payload is required")
	}

	id := firstString(payload, "id", "_id", "product_id", "productId")
	if id == "" {
		return Product{}, faults.Validationf("product id is required")
	}

	p := Product{
		ID:            id,
		Name:          firstString(payload, "name", "title", "brand"),
		Price:         asMinorUnits(payload["price"]),
		OriginalPrice: asMinorUnits(firstValue(payload, "original_price", "originalPrice")),
		Images:        collectImages(payload),
		Colors:        collectColors(payload),
	}

	return p, nil
}

func firstValue(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// asMinorUnits coerces a JSON number (or numeric string) into int64 minor
// units. JSON decoding hands numbers over as float64.
func asMinorUnits(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
			return parsed
		}
	}
	return 0
}

func collectImages(m map[string]interface{}) []string {
	var images []string

	if raw, ok := m["images"].([]interface{}); ok {
		for _, entry := range raw {
			switch img := entry.(type) {
			case string:
				if img != "" {
					images = append(images, img)
				}
			case map[string]interface{}:
				if url := firstString(img, "url", "src"); url != "" {
					images = append(images, url)
				}
			}
		}
	}

	if len(images) == 0 {
		if single := firstString(m, "image", "image_url", "imageUrl"); single != "" {
			images = append(images, single)
		}
	}

	return images
}

func collectColors(m map[string]interface{}) []Color {
	raw, ok := m["colors"].([]interface{})
	if !ok {
		return nil
	}

	var colors []Color
	for _, entry := range raw {
		cm, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		name := firstString(cm, "color_name", "colorName", "name")
		if name == "" {
			continue
		}
		hex := firstString(cm, "color_hex", "colorHex", "hex")
		if hex == "" {
			hex = "#000000"
		}
		colors = append(colors, Color{Name: name, Hex: hex})
	}

	return colors
}
