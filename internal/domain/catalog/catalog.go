package catalog

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("registro não encontrado")

// Customer is immutable reference data created at seed time.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Service is a catalog entry the quote form offers with a suggested price.
type Service struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Store holds the customer and service reference collections.
type Store struct {
	mu        sync.RWMutex
	customers []Customer
	services  []Service
}

func NewStore(customers []Customer, services []Service) *Store {
	return &Store{customers: customers, services: services}
}

func (s *Store) Customers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *Store) Services() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) CustomerByID(id string) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (s *Store) ServiceByID(id string) (Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return Service{}, ErrNotFound
}
