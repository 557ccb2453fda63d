package db

import (
	"database/sql"
	"fmt"
	"log"
)

type table struct {
	name string
	ddl  string
}

var tables = []table{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"hotels", `
CREATE TABLE IF NOT EXISTS hotels (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	city VARCHAR(120) NOT NULL,
	stars TINYINT NOT NULL DEFAULT 3,
	distance_to_haram_m INT NULL,
	description TEXT,
	KEY idx_city (city)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"trips", `
CREATE TABLE IF NOT EXISTS trips (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	destination VARCHAR(255) NOT NULL DEFAULT '',
	description TEXT,
	kind VARCHAR(20) NOT NULL DEFAULT 'standard',
	departure_date DATE NULL,
	return_date DATE NULL,
	base_price DECIMAL(12,2) NOT NULL DEFAULT 0,
	price_2_room DECIMAL(12,2) NULL,
	price_3_room DECIMAL(12,2) NULL,
	price_4_room DECIMAL(12,2) NULL,
	promotion DECIMAL(5,2) NULL,
	seats INT NOT NULL DEFAULT 0,
	hotel_id BIGINT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_kind (kind)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"reservations", `
CREATE TABLE IF NOT EXISTS reservations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	trip_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	room_2 INT NOT NULL DEFAULT 0,
	room_3 INT NOT NULL DEFAULT 0,
	room_4 INT NOT NULL DEFAULT 0,
	adults INT NOT NULL DEFAULT 1,
	children INT NOT NULL DEFAULT 0,
	babies INT NOT NULL DEFAULT 0,
	total_adults DECIMAL(12,2) NOT NULL DEFAULT 0,
	total_children DECIMAL(12,2) NOT NULL DEFAULT 0,
	total_babies DECIMAL(12,2) NOT NULL DEFAULT 0,
	prix_calculer DECIMAL(12,2) NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_user (user_id),
	KEY idx_trip (trip_id),
	KEY idx_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"notifications", `
CREATE TABLE IF NOT EXISTS notifications (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	body TEXT,
	is_read TINYINT(1) NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"contact_messages", `
CREATE TABLE IF NOT EXISTS contact_messages (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	subject VARCHAR(255) NOT NULL DEFAULT '',
	body TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
}

type column struct {
	table, name, ddl string
}

// columns were added after the first deployments; tables created earlier lack them.
var columns = []column{
	{"reservations", "notes", `ALTER TABLE reservations ADD COLUMN notes TEXT`},
}

// EnsureSchema creates the tables that are missing and adds the later columns
// to tables created before them.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db tidak tersedia")
	}
	for _, t := range tables {
		if HasTable(db, t.name) {
			continue
		}
		if _, err := db.Exec(t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		log.Printf("[SCHEMA] table %s dibuat", t.name)
	}
	for _, c := range columns {
		if HasColumn(db, c.table, c.name) {
			continue
		}
		if _, err := db.Exec(c.ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", c.table, c.name, err)
		}
		log.Printf("[SCHEMA] kolom %s.%s ditambahkan", c.table, c.name)
	}
	return nil
}
