// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Product {
	return []Product{
		{
			ID: "p1", Slug: "chronomaster-black", Name: "Chronomaster Black",
			Brand: "Aurelius", Price: 79990000, Rating: 4.7,
			Categories: []string{"Men", "Automatic"},
			Featured:   true, Bestseller: true,
		},
		{
			ID: "p2", Slug: "elegance-rose-gold", Name: "Elegance Rose Gold",
			Brand: "Tempus", Price: 60490000, Rating: 4.9,
			Categories: []string{"Women", "Automatic"},
			Featured:   true, New: true,
		},
		{
			ID: "p3", Slug: "sport-titanium", Name: "Sport Titanium",
			Brand: "Chronos", Price: 104090000, Rating: 4.8,
			Categories: []string{"Men", "Chronograph"},
			New:        true,
			Description: "A professional sports chronograph with titanium construction.",
		},
	}
}

func TestGetProductByIDAndSlug(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	byID, ok := s.GetProduct("p1")
	require.True(t, ok)

	bySlug, ok := s.GetProduct("chronomaster-black")
	require.True(t, ok)
	assert.Same(t, byID, bySlug)

	_, ok = s.GetProduct("nope")
	assert.False(t, ok)
}

func TestPrice(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	price, ok := s.Price("p2")
	require.True(t, ok)
	assert.Equal(t, int64(60490000), price)

	// Price is keyed by id only; slugs do not resolve here.
	_, ok = s.Price("elegance-rose-gold")
	assert.False(t, ok)
}

func TestSearchZeroRequestReturnsAll(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	results := s.Search(SearchRequest{})
	assert.Len(t, results, 3)
}

func TestSearchQueryMatchesNameBrandDescriptionCategory(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	cases := map[string]string{
		"chronomaster": "p1", // name
		"TEMPUS":       "p2", // brand, case-insensitive
		"titanium":     "p3", // description
	}
	for query, wantID := range cases {
		results := s.Search(SearchRequest{Query: query})
		require.Len(t, results, 1, "query %q", query)
		assert.Equal(t, wantID, results[0].ID, "query %q", query)
	}

	// Category terms also match.
	results := s.Search(SearchRequest{Query: "chronograph"})
	require.Len(t, results, 1)
	assert.Equal(t, "p3", results[0].ID)
}

func TestSearchFilters(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	men := s.Search(SearchRequest{Categories: []string{"men"}})
	assert.Len(t, men, 2)

	brands := s.Search(SearchRequest{Brands: []string{"Tempus", "Chronos"}})
	assert.Len(t, brands, 2)

	priced := s.Search(SearchRequest{MinPrice: 70000000, MaxPrice: 90000000})
	require.Len(t, priced, 1)
	assert.Equal(t, "p1", priced[0].ID)
}

func TestSearchSortOrders(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	byPrice := s.Search(SearchRequest{Sort: SortPriceAsc})
	require.Len(t, byPrice, 3)
	assert.Equal(t, "p2", byPrice[0].ID)
	assert.Equal(t, "p3", byPrice[2].ID)

	byRating := s.Search(SearchRequest{Sort: SortRating})
	assert.Equal(t, "p2", byRating[0].ID, "highest rating first")

	byName := s.Search(SearchRequest{Sort: SortNameDesc})
	assert.Equal(t, "Sport Titanium", byName[0].Name)
}

func TestCuratedCollections(t *testing.T) {
	s := NewServiceFromProducts(fixtureProducts())

	assert.Len(t, s.Featured(), 2)
	assert.Len(t, s.NewArrivals(), 2)

	best := s.Bestsellers()
	require.Len(t, best, 1)
	assert.Equal(t, "p1", best[0].ID)
}

func TestOnSale(t *testing.T) {
	compareAt := int64(91990000)
	onSale := Product{Price: 79990000, CompareAt: &compareAt}
	assert.True(t, onSale.OnSale())

	fullPrice := Product{Price: 79990000}
	assert.False(t, fullPrice.OnSale())

	samePrice := Product{Price: 79990000, CompareAt: &[]int64{79990000}[0]}
	assert.False(t, samePrice.OnSale())
}

func TestNewServiceMissingFile(t *testing.T) {
	_, err := NewService("testdata/does-not-exist.json")
	assert.Error(t, err)
}
