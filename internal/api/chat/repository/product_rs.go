package chatRepository

import (
	"EcommerceChatbot/internal/entity"
	"sort"
	"strings"
)

func (r *repository) FindProductByID(id string) (entity.Product, bool) {
	return r.store.Products.Get(id)
}

// FindProductByName returns the first product, in table order, whose name
// contains query ignoring case.
func (r *repository) FindProductByName(query string) (entity.Product, bool) {
	query = strings.ToLower(query)
	for _, p := range r.store.Products.Rows() {
		if strings.Contains(strings.ToLower(p.Name), query) {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (r *repository) CountInStock(productID string) int {
	count := 0
	for _, item := range r.store.InventoryItems.Rows() {
		if item.ProductID == productID && item.InStock() {
			count++
		}
	}
	return count
}

// SalesRanking orders product ids by how many order items reference them.
// Equal counts keep the order in which the ids were first seen.
func (r *repository) SalesRanking() []entity.ProductSales {
	position := make(map[string]int)
	var ranking []entity.ProductSales

	for _, item := range r.store.OrderItems.Rows() {
		i, ok := position[item.ProductID]
		if !ok {
			i = len(ranking)
			position[item.ProductID] = i
			ranking = append(ranking, entity.ProductSales{ProductID: item.ProductID})
		}
		ranking[i].Count++
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	return ranking
}
