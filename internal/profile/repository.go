package profile

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Repository stores the profile as a single fixed row (id = 1).
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context) (Profile, error) {
	var p Profile
	row := r.db.QueryRowContext(ctx,
		"SELECT display_name, username, bio, highlight, avatar_url, IFNULL(whatsapp_number,'') FROM profile WHERE id = 1")
	if err := row.Scan(&p.DisplayName, &p.Username, &p.Bio, &p.Highlight, &p.AvatarURL, &p.WhatsAppNumber); err != nil {
		return Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

func (r *Repository) Save(ctx context.Context, p Profile) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profile SET display_name=?, username=?, bio=?, highlight=?, avatar_url=?, whatsapp_number=? WHERE id = 1`,
		p.DisplayName, p.Username, p.Bio, p.Highlight, p.AvatarURL, p.WhatsAppNumber)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// EnsureSchema creates the profile table and seeds the single row.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS profile (
        id TINYINT PRIMARY KEY,
        display_name VARCHAR(255) NOT NULL,
        username VARCHAR(255),
        bio TEXT,
        highlight TEXT,
        avatar_url TEXT,
        whatsapp_number VARCHAR(32),
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`); err != nil {
		return err
	}
	if _, err := db.Exec(`INSERT INTO profile (id, display_name, username, bio, highlight, avatar_url, whatsapp_number)
        SELECT 1, 'Kyrgyz Modern Store', '@kyrgyz.modern', 'Handmade goods from Bishkek', 'Message us to place an order!', '', ''
        WHERE NOT EXISTS (SELECT 1 FROM profile WHERE id = 1)`); err != nil {
		return err
	}
	return nil
}

// MemoryStore is the dev-mode profile store.
type MemoryStore struct {
	mu sync.Mutex
	p  Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{p: Profile{
		DisplayName:    "Kyrgyz Modern Store",
		Username:       "@kyrgyz.modern",
		Bio:            "Handmade goods from Bishkek",
		Highlight:      "Message us to place an order!",
		WhatsAppNumber: "996700123456",
	}}
}

func (s *MemoryStore) Fetch(_ context.Context) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p, nil
}

func (s *MemoryStore) Save(_ context.Context, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
	return nil
}
