package entity

type Order struct {
	OrderID     string `json:"order_id" db:"order_id"`
	UserID      string `json:"user_id" db:"user_id"`
	Status      string `json:"status" db:"status"`
	Gender      string `json:"gender" db:"gender"`
	CreatedAt   string `json:"created_at" db:"created_at"`
	ReturnedAt  string `json:"returned_at" db:"returned_at"`
	ShippedAt   string `json:"shipped_at" db:"shipped_at"`
	DeliveredAt string `json:"delivered_at" db:"delivered_at"`
	NumOfItem   string `json:"num_of_item" db:"num_of_item"`
}

type OrderItem struct {
	ID              string `json:"id" db:"id"`
	OrderID         string `json:"order_id" db:"order_id"`
	UserID          string `json:"user_id" db:"user_id"`
	ProductID       string `json:"product_id" db:"product_id"`
	InventoryItemID string `json:"inventory_item_id" db:"inventory_item_id"`
	Status          string `json:"status" db:"status"`
	CreatedAt       string `json:"created_at" db:"created_at"`
	ShippedAt       string `json:"shipped_at" db:"shipped_at"`
	DeliveredAt     string `json:"delivered_at" db:"delivered_at"`
	ReturnedAt      string `json:"returned_at" db:"returned_at"`
	SalePrice       string `json:"sale_price" db:"sale_price"`
}
