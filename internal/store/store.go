// Package store holds the in-memory state behind the storefront API:
// users, products, cart items and orders, each in an arena-style table
// (record slice plus id index). Identifiers are monotonically assigned
// and never reused within a process lifetime, and scans preserve
// insertion order.
package store

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store owns all four tables. Construct one with New and pass it by
// reference; there is no ambient global instance.
type Store struct {
	mu sync.RWMutex

	users      []User
	userIdx    map[int]int
	nextUserID int

	products      []Product
	productIdx    map[int]int
	nextProductID int

	cartItems      []CartItem
	cartIdx        map[int]int
	nextCartItemID int

	orders      []Order
	orderIdx    map[int]int
	nextOrderID int
}

func New() *Store {
	return &Store{
		userIdx:        map[int]int{},
		nextUserID:     1,
		productIdx:     map[int]int{},
		nextProductID:  1,
		cartIdx:        map[int]int{},
		nextCartItemID: 1,
		orderIdx:       map[int]int{},
		nextOrderID:    1,
	}
}

// CreateUser registers a user, storing a bcrypt hash of the password.
// Usernames are unique.
func (s *Store) CreateUser(username, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return User{}, ErrUsernameTaken
		}
	}

	u := User{ID: s.nextUserID, Username: username, Password: string(hash)}
	s.nextUserID++
	s.userIdx[u.ID] = len(s.users)
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) UserByID(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.userIdx[id]
	if !ok {
		return User{}, false
	}
	return s.users[i], true
}

func (s *Store) UserByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// Authenticate checks a username/password pair against the stored hash.
func (s *Store) Authenticate(username, password string) (User, error) {
	u, ok := s.UserByUsername(username)
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Products returns a snapshot of the catalog in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.productIdx[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

func (s *Store) ProductsByCategory(category string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, 8)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct product categories in first-occurrence
// order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *Store) CreateProduct(in ProductInput) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          s.nextProductID,
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Rating:      in.Rating,
	}
	s.nextProductID++
	s.productIdx[p.ID] = len(s.products)
	s.products = append(s.products, p)
	return p
}

// CartItems returns the user's cart rows in insertion order.
func (s *Store) CartItems(userID int) []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CartItem, 0, 4)
	for _, it := range s.cartItems {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) CartItemByID(id int) (CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.cartIdx[id]
	if !ok {
		return CartItem{}, false
	}
	return s.cartItems[i], true
}

// AddToCart inserts a cart row, or merges into the existing row for the
// same (userID, productID) pair by summing quantities. The store does
// not check that productID resolves to a product; the API layer does.
func (s *Store) AddToCart(productID, userID, quantity int) CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.cartItems {
		if it.UserID == userID && it.ProductID == productID {
			s.cartItems[i].Quantity += quantity
			return s.cartItems[i]
		}
	}

	it := CartItem{ID: s.nextCartItemID, ProductID: productID, UserID: userID, Quantity: quantity}
	s.nextCartItemID++
	s.cartIdx[it.ID] = len(s.cartItems)
	s.cartItems = append(s.cartItems, it)
	return it
}

// UpdateCartItem replaces the row's quantity. A quantity of zero or less
// deletes the row instead; that case is reported the same way as a
// missing row.
func (s *Store) UpdateCartItem(id, quantity int) (CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.cartIdx[id]
	if !ok {
		return CartItem{}, false
	}

	if quantity <= 0 {
		s.deleteCartRowLocked(i)
		return CartItem{}, false
	}

	s.cartItems[i].Quantity = quantity
	return s.cartItems[i], true
}

// RemoveCartItem deletes the row if present and reports whether it was.
func (s *Store) RemoveCartItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.cartIdx[id]
	if !ok {
		return false
	}
	s.deleteCartRowLocked(i)
	return true
}

// ClearCart deletes every cart row belonging to the user. Clearing an
// already-empty cart succeeds.
func (s *Store) ClearCart(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cartItems[:0]
	for _, it := range s.cartItems {
		if it.UserID == userID {
			delete(s.cartIdx, it.ID)
			continue
		}
		kept = append(kept, it)
	}
	s.cartItems = kept
	for i, it := range s.cartItems {
		s.cartIdx[it.ID] = i
	}
}

func (s *Store) deleteCartRowLocked(i int) {
	delete(s.cartIdx, s.cartItems[i].ID)
	s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
	for j := i; j < len(s.cartItems); j++ {
		s.cartIdx[s.cartItems[j].ID] = j
	}
}

func (s *Store) CreateOrder(in OrderInput) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := Order{
		ID:              s.nextOrderID,
		UserID:          in.UserID,
		OrderDate:       in.OrderDate,
		TotalAmount:     in.TotalAmount,
		ShippingAddress: in.ShippingAddress,
		PaymentDetails:  in.PaymentDetails,
		Status:          in.Status,
	}
	s.nextOrderID++
	s.orderIdx[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) OrdersByUserID(userID int) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, 4)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
