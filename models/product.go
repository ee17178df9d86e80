package models

// Product is a catalog entry served by GET /api/products.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	VolumeML    int     `json:"volume_ml"`
	Strength    string  `json:"strength"`
	Status      string  `json:"status"`
	DateCreated string  `json:"date_created"`
	Description string  `json:"description"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
