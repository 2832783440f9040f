package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(Memory)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec(`CREATE TABLE test_table (id INTEGER PRIMARY KEY, value TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return conn
}

func countRows(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM test_table`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(`CREATE TABLE t (id INTEGER)`); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
}

func TestWithTx_Success(t *testing.T) {
	conn := setupTestDB(t)

	err := WithTx(conn, func(tx *sql.Tx) error {
		for _, v := range []string{"first", "second", "third"} {
			if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countRows(t, conn); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	conn := setupTestDB(t)
	testErr := errors.New("test error")

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test"); err != nil {
			return err
		}
		return testErr
	})
	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}

	if got := countRows(t, conn); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestNullString(t *testing.T) {
	if n := NullString(""); n.Valid {
		t.Errorf("NullString(\"\") = %+v, want NULL", n)
	}
	if n := NullString("x"); !n.Valid || n.String != "x" {
		t.Errorf("NullString(\"x\") = %+v", n)
	}
}

func TestNullString_RoundTrip(t *testing.T) {
	conn := setupTestDB(t)

	for _, v := range []string{"", "hello"} {
		if _, err := conn.Exec(`INSERT INTO test_table (value) VALUES (?)`, NullString(v)); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	var nulls int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM test_table WHERE value IS NULL`).Scan(&nulls); err != nil {
		t.Fatal(err)
	}
	if nulls != 1 {
		t.Errorf("NULL rows = %d, want 1", nulls)
	}

	rows, err := conn.Query(`SELECT value FROM test_table ORDER BY id`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var got []string
	for rows.Next() {
		var n sql.NullString
		if err := rows.Scan(&n); err != nil {
			t.Fatal(err)
		}
		got = append(got, NullStringValue(n))
	}
	if len(got) != 2 || got[0] != "" || got[1] != "hello" {
		t.Errorf("values = %q, want [\"\" \"hello\"]", got)
	}
}
