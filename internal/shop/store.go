package shop

// Product is a catalog listing entry, read via GET /products.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	AvailableQty int     `json:"availableQty"`
}

// Item is the loosely shaped record accepted by the create endpoints. Its
// price carries a display string ("$25") and product a free-form description.
// Item and CartItem share a field set but are distinct entities backed by
// distinct stores.
type Item struct {
	ID      int    `json:"id"`
	Product string `json:"product"`
	Price   string `json:"price"`
}

type CartItem struct {
	ID      int    `json:"id"`
	Product string `json:"product"`
	Price   string `json:"price"`
}

type Order struct {
	ID       int    `json:"id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// Store holds the record sequences in insertion order. Appends perform no id
// uniqueness check; duplicate ids coexist and lookups return the first match.
type Store interface {
	Products() []Product
	Items() []Item
	AppendItem(it Item) Item
	CartItems() []CartItem
	AppendCartItem(ci CartItem) CartItem
	FindOrder(id int) (Order, bool)
}
