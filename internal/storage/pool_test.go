package storage

import (
	"context"
	"strings"
	"testing"
)

func TestNewPoolEmptyURL(t *testing.T) {
	if _, err := NewPool(context.Background(), ""); err == nil {
		t.Fatal("expected error for an empty database URL")
	}
}

func TestNewPoolUnparsableURL(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://bot@localhost/bot?sslmode=bogus")
	if err == nil {
		t.Fatal("expected error for an unparsable database URL")
	}
	if !strings.Contains(err.Error(), "parsing database URL") {
		t.Fatalf("expected a parse error, got: %v", err)
	}
}

func TestSchemaDeclaresAllTables(t *testing.T) {
	for _, table := range []string{"users", "messages", "events"} {
		if !strings.Contains(Schema, table) {
			t.Fatalf("schema is missing the %s table", table)
		}
	}
}
