package service

import (
	"testing"

	"youthcentre_backend/internals/features/activities/model"
)

func TestNormalizePricing(t *testing.T) {
	price := 500.0

	tests := []struct {
		name      string
		hasPrice  bool
		price     *float64
		wantPrice *float64
	}{
		{"free with stray price", false, &price, nil},
		{"free without price", false, nil, nil},
		{"paid keeps price", true, &price, &price},
		{"paid without price", true, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.ActivityModel{HasPrice: tt.hasPrice, Price: tt.price}
			NormalizePricing(&m)
			first := m
			NormalizePricing(&m)

			if (m.Price == nil) != (tt.wantPrice == nil) {
				t.Fatalf("price = %v, want %v", m.Price, tt.wantPrice)
			}
			if m.Price != nil && *m.Price != *tt.wantPrice {
				t.Errorf("price = %v, want %v", *m.Price, *tt.wantPrice)
			}
			if first.Price != m.Price || first.HasPrice != m.HasPrice {
				t.Error("second normalization changed the activity")
			}
		})
	}
}
