package store

import (
	"testing"
	"time"

	"sitetrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return New(gormDB), mock, func() { sqlDB.Close() }
}

func TestTotalSpent(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	// 100.0 + 250.5 + 0.0 = 350.5
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `project_transactions`").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(amount), 0)"}).AddRow(350.5))

	total, err := st.TotalSpent(7)
	require.NoError(t, err)
	assert.Equal(t, 350.5, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalSpent_NoTransactions(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	// COALESCE keeps the empty project at zero rather than NULL.
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `project_transactions`").
		WithArgs(uint(9)).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(amount), 0)"}).AddRow(0.0))

	total, err := st.TotalSpent(9)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVendorByName_NotFound(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `vendors`").
		WithArgs("No Such Vendor").
		WillReturnRows(sqlmock.NewRows([]string{}))

	vendor, err := st.GetVendorByName("No Such Vendor")
	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(3, "alice", "alice@example.com", "hash", now, now))

	user, err := st.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProjectTransactions_JoinsVendorName(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `project_transactions` JOIN vendors").
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "vendor_id", "vendor_name", "date", "amount", "description"}).
			AddRow(1, 4, 2, "Acme Concrete", date, 1200.0, "foundation pour"))

	rows, err := st.ListProjectTransactions(4)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Concrete", rows[0].VendorName)
	assert.Equal(t, 1200.0, rows[0].Amount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject(t *testing.T) {
	st, mock, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `projects`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	project := models.Project{Name: "Riverside Office Park", Budget: 250000}
	err := st.CreateProject(&project)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
