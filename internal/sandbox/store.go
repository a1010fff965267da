package sandbox

import (
	"slices"
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"github.com/chrisdamba/foodadmin/internal/factories"
	"github.com/chrisdamba/foodadmin/internal/models"
)

// Sizes sets how many records of each kind Seed generates.
type Sizes struct {
	Drivers     int
	Customers   int
	Restaurants int
	Orders      int
}

type account struct {
	admin models.Admin
	hash  []byte
}

// Store is the sandbox's in-memory database.
type Store struct {
	mu          sync.RWMutex
	admins      map[string]account
	orders      []models.Order
	drivers     []models.Driver
	passwords   map[string][]byte
	customers   []models.Customer
	documents   []models.Document
	payments    []models.Payment
	restaurants []models.Restaurant
	menu        []models.MenuItem
}

func NewStore() *Store {
	return &Store{
		admins:    make(map[string]account),
		passwords: make(map[string][]byte),
	}
}

// Seed fills the store with generated records.
func (s *Store) Seed(f *factories.Factory, n Sizes, tick func()) {
	if tick == nil {
		tick = func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n.Drivers; i++ {
		d := f.Driver()
		s.drivers = append(s.drivers, d)
		for _, t := range models.DocumentTypes {
			s.documents = append(s.documents, f.Document(d, t))
		}
		tick()
	}
	for i := 0; i < n.Restaurants; i++ {
		r := f.Restaurant()
		s.restaurants = append(s.restaurants, r)
		for j := 0; j < 6; j++ {
			s.menu = append(s.menu, f.MenuItem(r))
		}
		tick()
	}
	for i := 0; i < n.Customers; i++ {
		s.customers = append(s.customers, f.Customer())
		tick()
	}
	if len(s.customers) == 0 || len(s.restaurants) == 0 {
		return
	}
	for i := 0; i < n.Orders; i++ {
		c := s.customers[i%len(s.customers)]
		r := s.restaurants[i%len(s.restaurants)]
		o := f.Order(i, c, r, s.menuOf(r.ID), s.drivers)
		s.orders = append(s.orders, o)
		s.payments = append(s.payments, f.Payment(o, c))
		tick()
	}
}

func (s *Store) menuOf(restaurantID string) []models.MenuItem {
	var out []models.MenuItem
	for _, m := range s.menu {
		if ref, ok := m.Restaurant.Value(); ok && ref.ID == restaurantID {
			out = append(out, m)
		}
	}
	return out
}

// PutDrivers replaces the driver list.
func (s *Store) PutDrivers(drivers ...models.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers = slices.Clone(drivers)
}

func (s *Store) PutOrders(orders ...models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = slices.Clone(orders)
}

func (s *Store) PutCustomers(customers ...models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = slices.Clone(customers)
}

func (s *Store) PutDocuments(docs ...models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = slices.Clone(docs)
}

func (s *Store) PutPayments(payments ...models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = slices.Clone(payments)
}

func (s *Store) PutRestaurants(restaurants ...models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = slices.Clone(restaurants)
}

func (s *Store) PutMenu(items ...models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = slices.Clone(items)
}

func (s *Store) Drivers() []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.drivers)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

func indexOf[T any](list []T, id string, key func(T) string) int {
	return slices.IndexFunc(list, func(v T) bool { return key(v) == id })
}

func driverID(d models.Driver) string         { return d.ID }
func orderID(o models.Order) string           { return o.ID }
func customerID(c models.Customer) string     { return c.ID }
func documentID(d models.Document) string     { return d.ID }
func paymentID(p models.Payment) string       { return p.ID }
func restaurantID(r models.Restaurant) string { return r.ID }
func menuItemID(m models.MenuItem) string     { return m.ID }

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func newID() string {
	return cuid.New()
}
