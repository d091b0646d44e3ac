package dataset

import (
	"EcommerceChatbot/internal/entity"
	"sync/atomic"
)

// Store owns the six tables of the e-commerce dataset. It is populated once by
// a Loader and is read-only afterwards, so it is safe for concurrent readers.
type Store struct {
	DistributionCenters *Table[entity.DistributionCenter]
	Users               *Table[entity.User]
	Products            *Table[entity.Product]
	Orders              *Table[entity.Order]
	InventoryItems      *Table[entity.InventoryItem]
	OrderItems          *Table[entity.OrderItem]

	generation atomic.Pointer[string]
}

func NewStore() *Store {
	return &Store{
		DistributionCenters: NewTable(TableDistributionCenters, func(d entity.DistributionCenter) string { return d.ID }),
		Users:               NewTable(TableUsers, func(u entity.User) string { return u.ID }),
		Products:            NewTable(TableProducts, func(p entity.Product) string { return p.ID }),
		Orders:              NewTable(TableOrders, func(o entity.Order) string { return o.OrderID }),
		InventoryItems:      NewTable(TableInventoryItems, func(i entity.InventoryItem) string { return i.ID }),
		OrderItems:          NewTable(TableOrderItems, func(i entity.OrderItem) string { return i.ID }),
	}
}

// Len returns the row count of the named table, 0 for unknown names.
func (s *Store) Len(name TableName) int {
	switch name {
	case TableDistributionCenters:
		return s.DistributionCenters.Len()
	case TableUsers:
		return s.Users.Len()
	case TableProducts:
		return s.Products.Len()
	case TableOrders:
		return s.Orders.Len()
	case TableInventoryItems:
		return s.InventoryItems.Len()
	case TableOrderItems:
		return s.OrderItems.Len()
	default:
		return 0
	}
}

// Stats maps every table to its current row count.
func (s *Store) Stats() map[TableName]int {
	stats := make(map[TableName]int, len(LoadOrder))
	for _, name := range LoadOrder {
		stats[name] = s.Len(name)
	}
	return stats
}

// MarkLoaded records the id of the finished load. Only the first call wins.
func (s *Store) MarkLoaded(generation string) bool {
	return s.generation.CompareAndSwap(nil, &generation)
}

// Generation is empty until the loader has attempted every table.
func (s *Store) Generation() string {
	g := s.generation.Load()
	if g == nil {
		return ""
	}
	return *g
}
