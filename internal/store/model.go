package store

// Rating is the aggregate review score a product carries from the
// upstream catalog.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog entry. Price is a decimal rendered as text, the
// way the upstream catalog and the order totals carry money.
type Product struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Rating      Rating `json:"rating"`
}

// ProductInput is a Product before the store assigns its identifier.
type ProductInput struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Rating      Rating `json:"rating"`
}

// User holds registration data. Password is the bcrypt hash, never the
// submitted secret, and never serialized.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// CartItem is one product line in one user's cart. At most one row
// exists per (UserID, ProductID) pair.
type CartItem struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	UserID    int `json:"userId"`
	Quantity  int `json:"quantity"`
}

// PaymentDetails is the raw checkout payment form, kept as an opaque
// blob on the order. Nothing ever charges it.
type PaymentDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CardNumber string `json:"cardNumber"`
	Expiration string `json:"expiration"`
	CVV        string `json:"cvv"`
}

// Order is the immutable snapshot created at checkout.
type Order struct {
	ID              int            `json:"id"`
	UserID          int            `json:"userId"`
	OrderDate       string         `json:"orderDate"`
	TotalAmount     string         `json:"totalAmount"`
	ShippingAddress string         `json:"shippingAddress"`
	PaymentDetails  PaymentDetails `json:"paymentDetails"`
	Status          string         `json:"status"`
}

// OrderInput is an Order before the store assigns its identifier.
type OrderInput struct {
	UserID          int            `json:"userId"`
	OrderDate       string         `json:"orderDate"`
	TotalAmount     string         `json:"totalAmount"`
	ShippingAddress string         `json:"shippingAddress"`
	PaymentDetails  PaymentDetails `json:"paymentDetails"`
	Status          string         `json:"status"`
}
