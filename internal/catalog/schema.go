package catalog

import "database/sql"

// EnsureSchema creates the catalog tables if they don't exist and seeds
// default categories on first run.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
        id BIGINT AUTO_INCREMENT PRIMARY KEY,
        title VARCHAR(255) NOT NULL,
        description TEXT,
        price DECIMAL(10,2) DEFAULT 0.00,
        image_url TEXT,
        image_public_id VARCHAR(255),
        category_id BIGINT NULL,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        INDEX idx_products_category (category_id)
    )`); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS categories (
        id BIGINT AUTO_INCREMENT PRIMARY KEY,
        name VARCHAR(255) NOT NULL UNIQUE
    )`); err != nil {
		return err
	}

	if _, err := db.Exec(`INSERT INTO categories (name)
        SELECT * FROM (SELECT 'Jewelry' UNION SELECT 'Clothing' UNION SELECT 'Accessories') AS defaults
        WHERE NOT EXISTS (SELECT 1 FROM categories)`); err != nil {
		return err
	}

	return nil
}
