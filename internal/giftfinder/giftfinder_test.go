package giftfinder

import (
	"testing"

	"github.com/minhtranvn/toystore/internal/model"
)

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }
func iptr(n int) *int         { return &n }

func toy(id, name string, price float64, opts func(*model.Product)) model.Product {
	p := model.Product{ID: id, Name: name, Price: price, CountInStock: 5}
	if opts != nil {
		opts(&p)
	}
	return p
}

func TestSuggest_AgeBandExcludesAndRanks(t *testing.T) {
	t.Parallel()

	products := []model.Product{
		toy("a", "xếp hình gỗ", 200000, func(p *model.Product) { p.AgeMin = iptr(3); p.AgeMax = iptr(6) }),
		toy("b", "đồ chơi lắp ráp", 200000, func(p *model.Product) { p.AgeMin = iptr(10); p.AgeMax = iptr(14) }),
		toy("c", "thú bông", 200000, nil), // no age data, neutral
	}

	got := Suggest(products, Criteria{Age: 4})
	if len(got) != 2 {
		t.Fatalf("want 2 suggestions, got %d", len(got))
	}
	if got[0].Product.ID != "a" {
		t.Fatalf("exact age fit first, got %q", got[0].Product.ID)
	}
	if got[1].Product.ID != "c" {
		t.Fatalf("neutral fit second, got %q", got[1].Product.ID)
	}
}

func TestSuggest_BudgetCutoff(t *testing.T) {
	t.Parallel()

	products := []model.Product{
		toy("cheap", "a", 90000, nil),
		toy("edge", "b", 108000, nil), // within 110%
		toy("over", "c", 200000, nil),
	}
	got := Suggest(products, Criteria{Budget: 100000})
	if len(got) != 2 {
		t.Fatalf("want 2 within budget, got %d", len(got))
	}
	if got[0].Product.ID != "cheap" || got[1].Product.ID != "edge" {
		t.Fatalf("in-budget before near-budget, got %v / %v", got[0].Product.ID, got[1].Product.ID)
	}
}

func TestSuggest_InterestsAndRating(t *testing.T) {
	t.Parallel()

	products := []model.Product{
		toy("plain", "ô tô nhựa", 100000, nil),
		toy("match", "ô tô gỗ", 100000, func(p *model.Product) {
			p.Category = sptr("đồ chơi gỗ")
			p.Rating = fptr(4.5)
		}),
	}
	got := Suggest(products, Criteria{Interests: []string{"gỗ"}})
	if got[0].Product.ID != "match" {
		t.Fatalf("interest match should rank first, got %q", got[0].Product.ID)
	}
}

func TestSuggest_SkipsOutOfStockAndHonorsLimit(t *testing.T) {
	t.Parallel()

	products := []model.Product{
		toy("gone", "hết hàng", 50000, func(p *model.Product) { p.CountInStock = 0 }),
		toy("p1", "x", 50000, nil),
		toy("p2", "y", 50000, nil),
		toy("p3", "z", 50000, nil),
	}
	got := Suggest(products, Criteria{Limit: 2})
	if len(got) != 2 {
		t.Fatalf("limit: want 2, got %d", len(got))
	}
	for _, s := range got {
		if s.Product.ID == "gone" {
			t.Fatalf("out-of-stock product suggested")
		}
	}
}

func TestSuggest_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	products := []model.Product{
		toy("first", "same", 50000, nil),
		toy("second", "same", 50000, nil),
	}
	got := Suggest(products, Criteria{})
	if got[0].Product.ID != "first" || got[1].Product.ID != "second" {
		t.Fatalf("stable order violated: %v, %v", got[0].Product.ID, got[1].Product.ID)
	}
}
