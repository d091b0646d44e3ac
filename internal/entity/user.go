package entity

type User struct {
	ID            string `json:"id" db:"id"`
	FirstName     string `json:"first_name" db:"first_name"`
	LastName      string `json:"last_name" db:"last_name"`
	Email         string `json:"email" db:"email"`
	Age           string `json:"age" db:"age"`
	Gender        string `json:"gender" db:"gender"`
	State         string `json:"state" db:"state"`
	StreetAddress string `json:"street_address" db:"street_address"`
	PostalCode    string `json:"postal_code" db:"postal_code"`
	City          string `json:"city" db:"city"`
	Country       string `json:"country" db:"country"`
	Latitude      string `json:"latitude" db:"latitude"`
	Longitude     string `json:"longitude" db:"longitude"`
	TrafficSource string `json:"traffic_source" db:"traffic_source"`
	CreatedAt     string `json:"created_at" db:"created_at"`
}

type DistributionCenter struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Latitude  string `json:"latitude" db:"latitude"`
	Longitude string `json:"longitude" db:"longitude"`
}
