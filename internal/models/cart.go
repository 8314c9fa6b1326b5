package models

// CartItem represents one line in the shopping cart: a specific
// product/size/color combination with its quantity.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Product   Product `json:"product"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// LineTotal returns the price contribution of this line.
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
