package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

func newCatalogFixture(t *testing.T) (CatalogService, *repository.Store) {
	t.Helper()

	logger := zerolog.Nop()
	store := repository.NewStore(logger)
	catalog := NewCatalogService(store.Merchants, store.Items, nil, logger)

	catalog.AddMerchant(model.Merchant{
		ID: "m1", Name: "Bagel Barn", Category: "Breakfast",
		Rating: 4.2, IsActive: true, IsOpen: true, SupportsDelivery: true,
	})
	catalog.AddMerchant(model.Merchant{
		ID: "m2", Name: "Arepa House", Category: "Venezuelan",
		Description: "corn cakes and coffee",
		Rating:      4.8, IsActive: true, IsOpen: false, SupportsDelivery: false,
	})
	catalog.AddMerchant(model.Merchant{
		ID: "m3", Name: "Closed Shop", Category: "Breakfast",
		Rating: 4.9, IsActive: false, IsOpen: true, SupportsDelivery: true,
	})

	catalog.AddItem(model.MerchantItem{ID: "i1", MerchantID: "m1", Name: "Everything Bagel", Price: 3.50, Category: "Bagels", IsAvailable: true, SortOrder: 2, UnitsSold: 40})
	catalog.AddItem(model.MerchantItem{ID: "i2", MerchantID: "m1", Name: "Lox Sandwich", Price: 11.00, Category: "Sandwiches", IsAvailable: true, IsFeatured: true, SortOrder: 1, UnitsSold: 12})
	catalog.AddItem(model.MerchantItem{ID: "i3", MerchantID: "m2", Name: "Queso Arepa", Price: 8.25, Category: "Arepas", IsAvailable: false, SortOrder: 1, UnitsSold: 55})

	return catalog, store
}

func TestQueryMerchants_ExcludesInactive(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	merchants := catalog.QueryMerchants(model.MerchantFilter{})

	require.Len(t, merchants, 2)
	for _, m := range merchants {
		assert.NotEqual(t, "m3", m.ID)
	}
	// Locale-aware name order: Arepa House before Bagel Barn.
	assert.Equal(t, "m2", merchants[0].ID)
	assert.Equal(t, "m1", merchants[1].ID)
}

func TestQueryMerchants_Filters(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	tests := []struct {
		name   string
		filter model.MerchantFilter
		want   []string
	}{
		{"By category", model.MerchantFilter{Category: "Breakfast"}, []string{"m1"}},
		{"Open only", model.MerchantFilter{OpenOnly: true}, []string{"m1"}},
		{"Min rating", model.MerchantFilter{MinRating: 4.5}, []string{"m2"}},
		{"Delivery support", model.MerchantFilter{Delivery: true}, []string{"m1"}},
		{"Search over name", model.MerchantFilter{Search: "arepa"}, []string{"m2"}},
		{"Search over description", model.MerchantFilter{Search: "coffee"}, []string{"m2"}},
		{"No match", model.MerchantFilter{Search: "sushi"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merchants := catalog.QueryMerchants(tt.filter)

			var ids []string
			for _, m := range merchants {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQueryItems_FiltersAndSorts(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	tests := []struct {
		name   string
		filter model.ItemFilter
		want   []string
	}{
		{"By merchant, default sort order", model.ItemFilter{MerchantID: "m1"}, []string{"i2", "i1"}},
		{"Available only", model.ItemFilter{AvailableOnly: true, SortBy: model.ItemSortName}, []string{"i1", "i2"}},
		{"Featured only", model.ItemFilter{FeaturedOnly: true}, []string{"i2"}},
		{"By name descending", model.ItemFilter{SortBy: model.ItemSortName, Descending: true}, []string{"i3", "i2", "i1"}},
		{"By price ascending", model.ItemFilter{SortBy: model.ItemSortPrice}, []string{"i1", "i3", "i2"}},
		{"By units sold descending", model.ItemFilter{SortBy: model.ItemSortUnitsSold, Descending: true}, []string{"i3", "i1", "i2"}},
		{"Search", model.ItemFilter{Search: "bagel"}, []string{"i1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := catalog.QueryItems(tt.filter)

			var ids []string
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUpdateMerchant_PartialPatch(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	rating := 3.9
	open := false
	catalog.UpdateMerchant("m1", model.MerchantPatch{Rating: &rating, IsOpen: &open})

	m := catalog.GetMerchant("m1")
	require.NotNil(t, m)
	assert.Equal(t, 3.9, m.Rating)
	assert.False(t, m.IsOpen)
	assert.Equal(t, "Bagel Barn", m.Name) // untouched

	// Unknown IDs are silent no-ops.
	catalog.UpdateMerchant("ghost", model.MerchantPatch{Rating: &rating})
	assert.Nil(t, catalog.GetMerchant("ghost"))
}

func TestDeleteMerchant_CascadesToItems(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	catalog.DeleteMerchant("m1")

	assert.Nil(t, catalog.GetMerchant("m1"))
	assert.Nil(t, catalog.GetItem("i1"))
	assert.Nil(t, catalog.GetItem("i2"))
	assert.NotNil(t, catalog.GetItem("i3"))
}

func TestBulkUpdateItems(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	available := false
	category := "Archived"
	catalog.BulkUpdateItems([]string{"i1", "i2", "ghost"}, model.ItemPatch{
		IsAvailable: &available,
		Category:    &category,
	})

	for _, id := range []string{"i1", "i2"} {
		item := catalog.GetItem(id)
		require.NotNil(t, item)
		assert.False(t, item.IsAvailable)
		assert.Equal(t, "Archived", item.Category)
	}

	// i3 was not in the set.
	assert.Equal(t, "Arepas", catalog.GetItem("i3").Category)
}

func TestBulkDeleteItems(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	catalog.BulkDeleteItems([]string{"i1", "i3", "ghost"})

	assert.Nil(t, catalog.GetItem("i1"))
	assert.Nil(t, catalog.GetItem("i3"))
	assert.NotNil(t, catalog.GetItem("i2"))
}

func TestUpdateItem_CannotTouchSalesCounters(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	price := 4.25
	catalog.UpdateItem("i1", model.ItemPatch{Price: &price})

	item := catalog.GetItem("i1")
	require.NotNil(t, item)
	assert.Equal(t, 4.25, item.Price)
	assert.Equal(t, 40, item.UnitsSold) // patch has no counter fields
}
