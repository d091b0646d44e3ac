package chatRepository

import (
	"EcommerceChatbot/internal/entity"
	"strings"
)

func (r *repository) FindOrderByID(id string) (entity.Order, bool) {
	return r.store.Orders.Get(id)
}

// CountOrdersByStatus compares statuses case-insensitively and in full.
func (r *repository) CountOrdersByStatus(status string) int {
	count := 0
	for _, o := range r.store.Orders.Rows() {
		if strings.EqualFold(o.Status, status) {
			count++
		}
	}
	return count
}
