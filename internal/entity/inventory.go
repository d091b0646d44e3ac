package entity

import "strings"

type InventoryItem struct {
	ID                          string `json:"id" db:"id"`
	ProductID                   string `json:"product_id" db:"product_id"`
	CreatedAt                   string `json:"created_at" db:"created_at"`
	SoldAt                      string `json:"sold_at" db:"sold_at"`
	Cost                        string `json:"cost" db:"cost"`
	ProductCategory             string `json:"product_category" db:"product_category"`
	ProductName                 string `json:"product_name" db:"product_name"`
	ProductBrand                string `json:"product_brand" db:"product_brand"`
	ProductRetailPrice          string `json:"product_retail_price" db:"product_retail_price"`
	ProductDepartment           string `json:"product_department" db:"product_department"`
	ProductSKU                  string `json:"product_sku" db:"product_sku"`
	ProductDistributionCenterID string `json:"product_distribution_center_id" db:"product_distribution_center_id"`
}

// InStock reports whether the item has not been sold yet.
func (i InventoryItem) InStock() bool {
	soldAt := strings.TrimSpace(i.SoldAt)
	return soldAt == "" || strings.EqualFold(soldAt, "null")
}
