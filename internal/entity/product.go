package entity

type Product struct {
	ID                   string `json:"id" db:"id"`
	Cost                 string `json:"cost" db:"cost"`
	Category             string `json:"category" db:"category"`
	Name                 string `json:"name" db:"name"`
	Brand                string `json:"brand" db:"brand"`
	RetailPrice          string `json:"retail_price" db:"retail_price"`
	Department           string `json:"department" db:"department"`
	SKU                  string `json:"sku" db:"sku"`
	DistributionCenterID string `json:"distribution_center_id" db:"distribution_center_id"`
}

// ProductSales is a product id with the number of order items referencing it.
type ProductSales struct {
	ProductID string `json:"product_id"`
	Count     int    `json:"count"`
}
