package entity

// CartItem is an ephemeral, server-held line in a shopper's cart, keyed by
// the shopper's email. It is read and totalled at checkout.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Subtotal sums price times quantity over all items.
func Subtotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// ToOrderItems converts cart lines into order line items.
func ToOrderItems(items []CartItem) []OrderItem {
	result := make([]OrderItem, len(items))
	for i, item := range items {
		result[i] = OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Image:     item.Image,
		}
	}

	return result
}
