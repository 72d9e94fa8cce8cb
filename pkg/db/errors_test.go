package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error should not be a unique violation")
	}

	pgxErr := &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"}
	if !IsUniqueViolation(pgxErr, "") {
		t.Fatal("expected pgx 23505 to be a unique violation")
	}
	if !IsUniqueViolation(pgxErr, "products_sku_key") {
		t.Fatal("expected constraint name to match")
	}
	if IsUniqueViolation(pgxErr, "other_constraint") {
		t.Fatal("expected mismatched constraint to be rejected")
	}

	pqErr := &pq.Error{Code: "23505", Constraint: "products_sku_key"}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", pqErr), "products_sku_key") {
		t.Fatal("expected wrapped pq 23505 to be a unique violation")
	}

	sqliteErr := errors.New("UNIQUE constraint failed: products.sku")
	if !IsUniqueViolation(sqliteErr, "") {
		t.Fatal("expected sqlite message to be recognized")
	}

	if IsUniqueViolation(errors.New("connection reset"), "") {
		t.Fatal("unrelated error should not match")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgxErr := &pgconn.PgError{Code: "23503", ConstraintName: "inventory_warehouse_id_fkey"}
	if !IsForeignKeyViolation(pgxErr) {
		t.Fatal("expected pgx 23503 to be a foreign key violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation should not match foreign key check")
	}
	if !IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")) {
		t.Fatal("expected sqlite message to be recognized")
	}
}
