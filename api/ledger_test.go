package api

import (
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "phone_number", "email", "created_at", "updated_at"})
}

func TestLedgerHandler_AddTransaction(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs(7).
		WillReturnRows(projectRows().
			AddRow(7, "Riverside Office Park", 250000.0, time.Now(), time.Now()))

	// Vendor name resolves to id 5.
	mock.ExpectQuery("SELECT .* FROM `vendors`").
		WithArgs("Acme Concrete").
		WillReturnRows(vendorRows().
			AddRow(5, "Acme Concrete", "", "", time.Now(), time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `project_transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	h := NewLedgerHandler(st, testConfig())
	router.POST("/projects/:id/add_transaction", h.AddTransaction)

	w := postForm(router, "/projects/7/add_transaction", url.Values{
		"vendor":      {"Acme Concrete"},
		"date":        {"2026-08-01"},
		"amount":      {"1200.50"},
		"description": {"Footings"},
	})

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/projects/7", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerHandler_AddTransaction_UnknownVendor(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs(7).
		WillReturnRows(projectRows().
			AddRow(7, "Riverside Office Park", 250000.0, time.Now(), time.Now()))

	mock.ExpectQuery("SELECT .* FROM `vendors`").
		WithArgs("Nobody Ltd").
		WillReturnRows(vendorRows())

	router := newTestRouter()
	h := NewLedgerHandler(st, testConfig())
	router.POST("/projects/:id/add_transaction", h.AddTransaction)

	w := postForm(router, "/projects/7/add_transaction", url.Values{
		"vendor":      {"Nobody Ltd"},
		"date":        {"2026-08-01"},
		"amount":      {"1200.50"},
		"description": {"Footings"},
	})

	// Re-rendered with the error, nothing inserted.
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "No vendor with that name exists.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerHandler_AddTransaction_ProjectNotFound(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs(99).
		WillReturnRows(projectRows())

	router := newTestRouter()
	h := NewLedgerHandler(st, testConfig())
	router.POST("/projects/:id/add_transaction", h.AddTransaction)

	w := postForm(router, "/projects/99/add_transaction", url.Values{
		"vendor":      {"Acme Concrete"},
		"date":        {"2026-08-01"},
		"amount":      {"1200.50"},
		"description": {"Footings"},
	})

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerHandler_AddInvoice_Unpaid(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs(7).
		WillReturnRows(projectRows().
			AddRow(7, "Riverside Office Park", 250000.0, time.Now(), time.Now()))

	mock.ExpectQuery("SELECT .* FROM `vendors`").
		WithArgs("Acme Concrete").
		WillReturnRows(vendorRows().
			AddRow(5, "Acme Concrete", "", "", time.Now(), time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `invoices`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	h := NewLedgerHandler(st, testConfig())
	router.POST("/projects/:id/add_invoice", h.AddInvoice)

	// No paid_date: the invoice is stored as outstanding.
	w := postForm(router, "/projects/7/add_invoice", url.Values{
		"vendor":       {"Acme Concrete"},
		"invoice_date": {"2026-08-15"},
		"amount":       {"8400"},
		"description":  {"Progress billing"},
	})

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/projects/7", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}
