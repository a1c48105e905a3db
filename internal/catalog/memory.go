package catalog

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the dev-mode Store: no MySQL, everything in process.
type MemoryStore struct {
	mu         sync.Mutex
	products   []Product
	nextID     int64
	categories []Category
	nextCatID  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		categories: []Category{
			{ID: 1, Name: "Jewelry"},
			{ID: 2, Name: "Clothing"},
			{ID: 3, Name: "Accessories"},
		},
		nextCatID: 4,
	}
}

func (s *MemoryStore) List(_ context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Product, len(s.products))
	copy(cp, s.products)
	return cp, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, p Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CategoryID != 0 {
		if _, ok := s.categoryLocked(p.CategoryID); !ok {
			return 0, ErrNotFound
		}
	}
	p.ID = s.nextID
	s.nextID++
	p.Category = ""
	for _, c := range s.categories {
		if c.ID == p.CategoryID {
			p.Category = c.Name
			break
		}
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImageURL
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	// newest first, matching the id DESC ordering of the DB store
	s.products = append([]Product{p}, s.products...)
	return p.ID, nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, upd ProductUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.products[i].Title = *upd.Title
		}
		if upd.Description != nil {
			s.products[i].Description = *upd.Description
		}
		if upd.Price != nil {
			s.products[i].Price = *upd.Price
		}
		if upd.ImageURL != nil && *upd.ImageURL != "" {
			s.products[i].ImageURL = *upd.ImageURL
			if upd.ImagePublicID != nil {
				s.products[i].ImagePublicID = *upd.ImagePublicID
			}
		}
		if upd.CategoryID != nil {
			if *upd.CategoryID != 0 {
				if _, ok := s.categoryLocked(*upd.CategoryID); !ok {
					return ErrNotFound
				}
			}
			s.products[i].CategoryID = *upd.CategoryID
			s.products[i].Category = ""
			for _, c := range s.categories {
				if c.ID == *upd.CategoryID {
					s.products[i].Category = c.Name
					break
				}
			}
		}
		return nil
	}
	return ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, id int64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *MemoryStore) Categories(_ context.Context) ([]Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Category, len(s.categories))
	copy(cp, s.categories)
	return cp, nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id int64) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.categoryLocked(id); ok {
		return c, nil
	}
	return Category{}, ErrNotFound
}

func (s *MemoryStore) CreateCategory(_ context.Context, name string) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Category{ID: s.nextCatID, Name: name}
	s.nextCatID++
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *MemoryStore) RenameCategory(_ context.Context, id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			for j := range s.products {
				if s.products[j].CategoryID == id {
					s.products[j].Category = name
				}
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, c := range s.categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	for j := range s.products {
		if s.products[j].CategoryID == id {
			s.products[j].CategoryID = 0
			s.products[j].Category = ""
		}
	}
	return nil
}

func (s *MemoryStore) categoryLocked(id int64) (Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
