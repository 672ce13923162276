package testutil

import (
	"testing"

	"github.com/zxc72608/bigquery/internal/warehouse"
)

// TestDataset is the schema the seeded tables live in.
const TestDataset = "bq_sam"

var seedStatements = []string{
	`CREATE SCHEMA bq_sam`,
	`CREATE TABLE bq_sam.client (
		client_id BIGINT,
		client_name VARCHAR,
		branch_id BIGINT,
		phone VARCHAR
	)`,
	`INSERT INTO bq_sam.client VALUES
		(400, 'Dunmore Highschool', 2, '0912345678'),
		(401, 'Lackawana Country', 2, '0223456789'),
		(402, 'FedEx', 3, '0934567890'),
		(403, 'John Daly Law, LLC', 3, '0945678901'),
		(404, 'Scranton Whitepages', 2, '0956789012'),
		(405, 'Times Newspaper', 3, '0967890123'),
		(406, 'FedEx', 2, '0978901234')`,
	`CREATE TABLE bq_sam.emploee (
		emp_id BIGINT,
		name VARCHAR,
		birth_date DATE,
		sex VARCHAR,
		salary BIGINT,
		branch_id BIGINT,
		sup_id BIGINT,
		phone VARCHAR
	)`,
	`INSERT INTO bq_sam.emploee VALUES
		(100, 'David Wallace', DATE '1967-11-17', 'M', 250000, 1, NULL, '0911111111'),
		(101, 'Jan Levinson', DATE '1961-05-11', 'F', 110000, 1, 100, '0922222222'),
		(102, 'Michael Scott', DATE '1964-03-15', 'M', 75000, 2, 100, '0933333333'),
		(103, 'Angela Martin', DATE '1971-06-25', 'F', 63000, 2, 102, '0944444444'),
		(104, 'Kelly Kapoor', DATE '1980-02-05', 'F', 55000, 2, 102, '0955555555'),
		(105, 'Stanley Hudson', DATE '1958-02-19', 'M', 69000, 2, 102, '0966666666'),
		(106, 'Josh Porter', DATE '1969-09-05', 'M', 78000, 3, 100, '0977777777'),
		(107, 'Andy Bernard', DATE '1973-07-22', 'M', 65000, 3, 106, '0988888888'),
		(108, 'Jim Halpert', DATE '1978-10-01', 'M', 71000, 3, 106, '0999999999'),
		(109, 'Pam Beesly', DATE '1979-03-25', 'F', 50000, 2, 102, '0900000000'),
		(110, 'Dwight Schrute', DATE '1970-01-20', 'M', 50000, 2, 102, '0900000001'),
		(111, 'Oscar Martinez', DATE '1972-04-10', 'M', 50000, 2, 102, '0900000002')`,
}

// NewTestWarehouse creates an in-memory DuckDB warehouse seeded with the
// client and emploee tables. It is closed when the test completes.
func NewTestWarehouse(t *testing.T) *warehouse.DuckDB {
	t.Helper()
	return NewTestWarehouseAt(t, "")
}

// NewTestWarehouseAt is NewTestWarehouse backed by the database file at path.
// An empty path keeps the database in memory.
func NewTestWarehouseAt(t *testing.T, path string) *warehouse.DuckDB {
	t.Helper()

	wh, err := warehouse.NewDuckDB(path, TestDataset, NewTestLogger(t))
	if err != nil {
		t.Fatalf("failed to create test warehouse: %v", err)
	}

	t.Cleanup(func() {
		if err := wh.Close(); err != nil {
			t.Errorf("failed to close test warehouse: %v", err)
		}
	})

	for _, stmt := range seedStatements {
		if _, err := wh.DB().Exec(stmt); err != nil {
			t.Fatalf("failed to seed test warehouse: %v", err)
		}
	}

	return wh
}
