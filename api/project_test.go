package api

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "budget", "created_at", "updated_at"})
}

func TestProjectHandler_Create(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs("Riverside Office Park").
		WillReturnRows(projectRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `projects`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	h := NewProjectHandler(st, testConfig())
	router.POST("/create_project", h.Create)

	w := postForm(router, "/create_project", url.Values{
		"name":   {"Riverside Office Park"},
		"budget": {"250000.00"},
	})

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/projects", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectHandler_Create_DuplicateName(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs("Riverside Office Park").
		WillReturnRows(projectRows().
			AddRow(1, "Riverside Office Park", 250000.0, time.Now(), time.Now()))

	router := newTestRouter()
	h := NewProjectHandler(st, testConfig())
	router.POST("/create_project", h.Create)

	w := postForm(router, "/create_project", url.Values{
		"name":   {"Riverside Office Park"},
		"budget": {"99000"},
	})

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "This project name is already in use.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectHandler_Create_BadBudget(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs("Riverside Office Park").
		WillReturnRows(projectRows())

	router := newTestRouter()
	h := NewProjectHandler(st, testConfig())
	router.POST("/create_project", h.Create)

	w := postForm(router, "/create_project", url.Values{
		"name":   {"Riverside Office Park"},
		"budget": {"a lot"},
	})

	// Re-rendered with the error, no insert.
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid number.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectHandler_Overview(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs(7).
		WillReturnRows(projectRows().
			AddRow(7, "Riverside Office Park", 250000.0, time.Now(), time.Now()))

	mock.ExpectQuery("SELECT .* FROM `project_transactions`").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "vendor_id", "vendor_name", "date", "amount", "description"}).
			AddRow(11, 7, 2, "Acme Concrete", time.Now(), 1200.5, "Footings"))

	mock.ExpectQuery("SELECT .* FROM `invoices`").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "vendor_id", "vendor_name", "amount", "description", "invoice_date", "paid_date"}))

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `project_transactions`").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1200.5))

	router := newTestRouter()
	h := NewProjectHandler(st, testConfig())
	router.GET("/projects/:id", h.Overview)

	req := httptest.NewRequest("GET", "/projects/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Riverside Office Park")
	assert.Contains(t, body, "Acme Concrete")
	assert.Contains(t, body, "1200.50")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectHandler_Overview_NotFound(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WithArgs(42).
		WillReturnRows(projectRows())

	router := newTestRouter()
	h := NewProjectHandler(st, testConfig())
	router.GET("/projects/:id", h.Overview)

	req := httptest.NewRequest("GET", "/projects/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "No such project.")
	require.NoError(t, mock.ExpectationsWereMet())
}
