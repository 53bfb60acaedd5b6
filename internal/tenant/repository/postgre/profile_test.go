package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"dealer-report-srv/internal/tenant/repository"
	"dealer-report-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileCols = []string{"user_id", "dealership_id", "role_id", "email", "permissions"}

func newMock(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, log.NewNop()), mock
}

func TestGetProfile(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getProfileQuery)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u1", "d1", "r1", "a@b.test", []byte(`{"reports.view":true,"reports.create":false,"inventory.edit":"yes"}`)))

	p, err := repo.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "d1", p.DealershipID)
	assert.Equal(t, map[string]bool{"reports.view": true}, p.Permissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_NoRole(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getProfileQuery)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow("u1", "d1", "", "", nil))

	p, err := repo.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, p.Permissions)
	assert.False(t, p.Can("reports.view"))
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getProfileQuery)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := repo.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestGetProfile_QueryError(t *testing.T) {
	repo, mock := newMock(t)
	boom := errors.New("timeout")
	mock.ExpectQuery(regexp.QuoteMeta(getProfileQuery)).WithArgs("u1").WillReturnError(boom)

	_, err := repo.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)
}
