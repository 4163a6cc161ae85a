// internal/catalog/normalize_test.go
package catalog

import (
	"testing"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/faults"
)

func TestNormalizeIDVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantID  string
	}{
		{"id", map[string]interface{}{"id": "p1"}, "p1"},
		{"_id", map[string]interface{}{"_id": "p2"}, "p2"},
		{"product_id", map[string]interface{}{"product_id": "p3"}, "p3"},
		{"productId", map[string]interface{}{"productId": "p4"}, "p4"},
		{"id wins over _id", map[string]interface{}{"id": "p5", "_id": "other"}, "p5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Normalize(tt.payload)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ID != tt.wantID {
				t.Fatalf("expected id %q, got %q", tt.wantID, p.ID)
			}
		})
	}
}

func TestNormalizeMissingID(t *testing.T) {
	_, err := Normalize(map[string]interface{}{"name": "Lace Bralette"})
	if err == nil {
		t.Fatal("expected error for payload without id")
	}
	if faults.KindOf(err) != faults.Validation {
		t.Fatalf("expected validation error, got %v", faults.KindOf(err))
	}

	if _, err := Normalize(nil); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestNormalizeNameFallbacks(t *testing.T) {
	p, _ := Normalize(map[string]interface{}{"id": "p1", "title": "Satin Set"})
	if p.Name != "Satin Set" {
		t.Fatalf("expected title fallback, got %q", p.Name)
	}

	p, _ = Normalize(map[string]interface{}{"id": "p1", "brand": "Sweety"})
	if p.Name != "Sweety" {
		t.Fatalf("expected brand fallback, got %q", p.Name)
	}
}

func TestNormalizePriceCoercion(t *testing.T) {
	p, _ := Normalize(map[string]interface{}{
		"id":             "p1",
		"price":          float64(1999),
		"original_price": "2499",
	})
	if p.Price != 1999 {
		t.Fatalf("expected price 1999, got %d", p.Price)
	}
	if p.OriginalPrice != 2499 {
		t.Fatalf("expected original price 2499, got %d", p.OriginalPrice)
	}

	p, _ = Normalize(map[string]interface{}{"id": "p1", "price": "not-a-number"})
	if p.Price != 0 {
		t.Fatalf("expected unparseable price to be 0, got %d", p.Price)
	}
}

func TestNormalizeImages(t *testing.T) {
	p, _ := Normalize(map[string]interface{}{
		"id": "p1",
		"images": []interface{}{
			"https://cdn.example.com/a.jpg",
			map[string]interface{}{"url": "https://cdn.example.com/b.jpg"},
			map[string]interface{}{"src": "https://cdn.example.com/c.jpg"},
		},
	})
	if len(p.Images) != 3 {
		t.Fatalf("expected 3 images, got %v", p.Images)
	}

	p, _ = Normalize(map[string]interface{}{"id": "p1", "image": "https://cdn.example.com/one.jpg"})
	if len(p.Images) != 1 || p.Images[0] != "https://cdn.example.com/one.jpg" {
		t.Fatalf("expected single image fallback, got %v", p.Images)
	}

	if got := p.PrimaryImage(); got != "https://cdn.example.com/one.jpg" {
		t.Fatalf("unexpected primary image %q", got)
	}
}

func TestNormalizeColors(t *testing.T) {
	p, _ := Normalize(map[string]interface{}{
		"id": "p1",
		"colors": []interface{}{
			map[string]interface{}{"color_name": "Black", "color_hex": "#111111"},
			map[string]interface{}{"name": "Blush"},
			map[string]interface{}{"color_hex": "#ffffff"}, // nameless, dropped
		},
	})
	if len(p.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %v", p.Colors)
	}
	if p.Colors[0].Hex != "#111111" {
		t.Fatalf("expected explicit hex kept, got %q", p.Colors[0].Hex)
	}
	if p.Colors[1].Hex != "#000000" {
		t.Fatalf("expected default hex for missing value, got %q", p.Colors[1].Hex)
	}
}

func TestResolveColor(t *testing.T) {
	p := Product{
		ID:     "p1",
		Colors: []Color{{Name: "Black", Hex: "#111111"}},
	}

	c := ResolveColor(p, "black")
	if c.Hex != "#111111" {
		t.Fatalf("expected case-insensitive match, got %+v", c)
	}

	c = ResolveColor(p, "Ivory")
	if c.Name != "Ivory" || c.Hex != "#000000" {
		t.Fatalf("expected fallback color with default hex, got %+v", c)
	}
}
