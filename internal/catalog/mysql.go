package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Repository is the MySQL-backed Store.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRepository(db *sql.DB, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

const productColumns = `p.id, p.title, p.description, p.price, p.image_url, IFNULL(p.image_public_id,''), IFNULL(p.category_id, 0), IFNULL(c.name,''), p.created_at`

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := r.scanProduct(rows.Scan)
		if err != nil {
			// A single bad row must not take down the whole catalog;
			// log it and keep going.
			r.log.Warn("skipping malformed product row", "err", err)
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?`, id)
	p, err := r.scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// scanProduct reads one row via the given scan func, degrading gracefully:
// an unparseable price becomes 0 and a missing image becomes the
// placeholder, so a half-broken admin row still renders.
func (r *Repository) scanProduct(scan func(dest ...any) error) (Product, error) {
	var p Product
	var priceRaw sql.NullString
	var desc sql.NullString
	var imageURL sql.NullString
	var created any
	if err := scan(&p.ID, &p.Title, &desc, &priceRaw, &imageURL, &p.ImagePublicID, &p.CategoryID, &p.Category, &created); err != nil {
		return Product{}, err
	}
	p.Description = desc.String
	p.Price = parsePrice(priceRaw, r.log, p.ID)
	p.ImageURL = imageURL.String
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImageURL
	}
	p.CreatedAt = decodeCreatedAt(created)
	return p, nil
}

// parsePrice handles the DECIMAL column arriving as a string.
func parsePrice(raw sql.NullString, log *slog.Logger, id int64) float64 {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw.String, 64)
	if err != nil {
		if log != nil {
			log.Warn("product has unparseable price, rendering as 0", "id", id, "price", raw.String)
		}
		return 0
	}
	return v
}

// decodeCreatedAt handles created_at arriving as time.Time or []byte/string
// depending on driver settings.
func decodeCreatedAt(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return ""
	}
}

func (r *Repository) Create(ctx context.Context, p Product) (int64, error) {
	if p.CategoryID != 0 {
		if _, err := r.GetCategory(ctx, p.CategoryID); err != nil {
			return 0, err
		}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (title, description, price, image_url, image_public_id, category_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, formatPrice(p.Price), p.ImageURL, sqlNullString(p.ImagePublicID), sqlNullID(p.CategoryID), time.Now())
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r *Repository) Update(ctx context.Context, id int64, upd ProductUpdate) error {
	setCols := []string{}
	args := []any{}
	if upd.Title != nil {
		setCols = append(setCols, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		setCols = append(setCols, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Price != nil {
		setCols = append(setCols, "price = ?")
		args = append(args, formatPrice(*upd.Price))
	}
	if upd.ImageURL != nil {
		setCols = append(setCols, "image_url = ?", "image_public_id = ?")
		args = append(args, *upd.ImageURL, sqlNullString(strVal(upd.ImagePublicID)))
	}
	if upd.CategoryID != nil {
		if *upd.CategoryID != 0 {
			if _, err := r.GetCategory(ctx, *upd.CategoryID); err != nil {
				return err
			}
		}
		setCols = append(setCols, "category_id = ?")
		args = append(args, sqlNullID(*upd.CategoryID))
	}
	if len(setCols) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx, "UPDATE products SET "+strings.Join(setCols, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update;
		// distinguish with an existence check.
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (Product, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return Product{}, fmt.Errorf("delete product %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *Repository) GetCategory(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = ?", id).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (Category, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return Category{}, fmt.Errorf("insert category: %w", err)
	}
	id, _ := res.LastInsertId()
	return Category{ID: id, Name: name}, nil
}

func (r *Repository) RenameCategory(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE categories SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("rename category %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetCategory(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	// Detach products first so they fall back to "no category".
	if _, err := r.db.ExecContext(ctx, "UPDATE products SET category_id = NULL WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("detach products from category %d: %w", id, err)
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// formatPrice keeps the DECIMAL(10,2) column happy.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func sqlNullID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func sqlNullString(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
