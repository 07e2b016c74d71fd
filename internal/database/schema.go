package database

// PostgresSchema creates the catalog and order tables.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS products (
	seq         BIGSERIAL,
	id          VARCHAR(64) PRIMARY KEY,
	title       VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image       VARCHAR(512) NOT NULL DEFAULT '',
	category    VARCHAR(100) NOT NULL DEFAULT '',
	price       NUMERIC(12, 2) CHECK (price >= 0),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS orders (
	id         UUID PRIMARY KEY,
	address    TEXT NOT NULL,
	email      VARCHAR(255) NOT NULL,
	phone      VARCHAR(64) NOT NULL,
	payment    VARCHAR(16) NOT NULL CHECK (payment IN ('card', 'cash')),
	total      NUMERIC(12, 2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id   UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	product_id VARCHAR(64) NOT NULL REFERENCES products(id),
	PRIMARY KEY (order_id, position)
);

CREATE INDEX IF NOT EXISTS idx_order_items_product_id ON order_items(product_id);
`

// SQLiteSchema mirrors PostgresSchema for the embedded store.
const SQLiteSchema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	price       REAL CHECK (price >= 0),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS orders (
	id         TEXT PRIMARY KEY,
	address    TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL,
	payment    TEXT NOT NULL CHECK (payment IN ('card', 'cash')),
	total      REAL NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	product_id TEXT NOT NULL REFERENCES products(id),
	PRIMARY KEY (order_id, position)
);

CREATE INDEX IF NOT EXISTS idx_order_items_product_id ON order_items(product_id);
`
