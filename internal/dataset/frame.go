package dataset

import (
	"EcommerceChatbot/internal/entity"
	"fmt"
	"strings"
)

// Frame is a table as fetched from a source: a header and string rows.
type Frame struct {
	Columns []string
	Rows    [][]string
	Skipped int
}

// NormalizeColumn lower-cases a header and drops everything outside [a-z0-9_].
func NormalizeColumn(col string) string {
	col = strings.ToLower(strings.TrimSpace(col))
	var b strings.Builder
	b.Grow(len(col))
	for _, r := range col {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type rowReader struct {
	index map[string]int
	row   []string
}

func newRowReader(columns []string) *rowReader {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		key := NormalizeColumn(c)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return &rowReader{index: index}
}

func (r *rowReader) has(col string) bool {
	_, ok := r.index[col]
	return ok
}

func (r *rowReader) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) require(table TableName, cols ...string) error {
	for _, c := range cols {
		if !r.has(c) {
			return fmt.Errorf("%s: missing column %q", table, c)
		}
	}
	return nil
}

func decodeRows[T any](f *Frame, table TableName, required []string, build func(r *rowReader) T) ([]T, error) {
	r := newRowReader(f.Columns)
	if err := r.require(table, required...); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(f.Rows))
	for _, row := range f.Rows {
		r.row = row
		out = append(out, build(r))
	}
	return out, nil
}

func DecodeProducts(f *Frame) ([]entity.Product, error) {
	return decodeRows(f, TableProducts, []string{"id", "name", "retail_price"}, func(r *rowReader) entity.Product {
		return entity.Product{
			ID:                   r.get("id"),
			Cost:                 r.get("cost"),
			Category:             r.get("category"),
			Name:                 r.get("name"),
			Brand:                r.get("brand"),
			RetailPrice:          r.get("retail_price"),
			Department:           r.get("department"),
			SKU:                  r.get("sku"),
			DistributionCenterID: r.get("distribution_center_id"),
		}
	})
}

func DecodeOrders(f *Frame) ([]entity.Order, error) {
	return decodeRows(f, TableOrders, []string{"order_id", "status"}, func(r *rowReader) entity.Order {
		return entity.Order{
			OrderID:     r.get("order_id"),
			UserID:      r.get("user_id"),
			Status:      r.get("status"),
			Gender:      r.get("gender"),
			CreatedAt:   r.get("created_at"),
			ReturnedAt:  r.get("returned_at"),
			ShippedAt:   r.get("shipped_at"),
			DeliveredAt: r.get("delivered_at"),
			NumOfItem:   r.get("num_of_item"),
		}
	})
}

func DecodeOrderItems(f *Frame) ([]entity.OrderItem, error) {
	return decodeRows(f, TableOrderItems, []string{"product_id"}, func(r *rowReader) entity.OrderItem {
		return entity.OrderItem{
			ID:              r.get("id"),
			OrderID:         r.get("order_id"),
			UserID:          r.get("user_id"),
			ProductID:       r.get("product_id"),
			InventoryItemID: r.get("inventory_item_id"),
			Status:          r.get("status"),
			CreatedAt:       r.get("created_at"),
			ShippedAt:       r.get("shipped_at"),
			DeliveredAt:     r.get("delivered_at"),
			ReturnedAt:      r.get("returned_at"),
			SalePrice:       r.get("sale_price"),
		}
	})
}

func DecodeInventoryItems(f *Frame) ([]entity.InventoryItem, error) {
	return decodeRows(f, TableInventoryItems, []string{"product_id", "sold_at"}, func(r *rowReader) entity.InventoryItem {
		return entity.InventoryItem{
			ID:                          r.get("id"),
			ProductID:                   r.get("product_id"),
			CreatedAt:                   r.get("created_at"),
			SoldAt:                      r.get("sold_at"),
			Cost:                        r.get("cost"),
			ProductCategory:             r.get("product_category"),
			ProductName:                 r.get("product_name"),
			ProductBrand:                r.get("product_brand"),
			ProductRetailPrice:          r.get("product_retail_price"),
			ProductDepartment:           r.get("product_department"),
			ProductSKU:                  r.get("product_sku"),
			ProductDistributionCenterID: r.get("product_distribution_center_id"),
		}
	})
}

func DecodeUsers(f *Frame) ([]entity.User, error) {
	return decodeRows(f, TableUsers, []string{"id"}, func(r *rowReader) entity.User {
		return entity.User{
			ID:            r.get("id"),
			FirstName:     r.get("first_name"),
			LastName:      r.get("last_name"),
			Email:         r.get("email"),
			Age:           r.get("age"),
			Gender:        r.get("gender"),
			State:         r.get("state"),
			StreetAddress: r.get("street_address"),
			PostalCode:    r.get("postal_code"),
			City:          r.get("city"),
			Country:       r.get("country"),
			Latitude:      r.get("latitude"),
			Longitude:     r.get("longitude"),
			TrafficSource: r.get("traffic_source"),
			CreatedAt:     r.get("created_at"),
		}
	})
}

func DecodeDistributionCenters(f *Frame) ([]entity.DistributionCenter, error) {
	return decodeRows(f, TableDistributionCenters, []string{"id", "name"}, func(r *rowReader) entity.DistributionCenter {
		return entity.DistributionCenter{
			ID:        r.get("id"),
			Name:      r.get("name"),
			Latitude:  r.get("latitude"),
			Longitude: r.get("longitude"),
		}
	})
}
