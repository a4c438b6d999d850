package contacts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func contactRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "owner_id", "first_name", "last_name", "phone", "email", "address", "notes", "favorite", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, int64(1), "Jane", "Doe", "555-123-4567", nil, "1 Main St", nil, false, time.Now(), time.Now())
	}
	return rows
}

func TestList_PagingAndCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+count\(\*\)\s+FROM\s+contacts\s+WHERE\s+owner_id\s*=\s*\$1`).
		WithArgs(int64(1), "%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+contacts\s+WHERE\s+owner_id\s*=\s*\$1.*ORDER\s+BY\s+last_name,\s*first_name\s+LIMIT\s+5\s+OFFSET\s+5`).
		WithArgs(int64(1), "%").
		WillReturnRows(contactRows(6, 7, 8, 9, 10))

	page, err := repo.List(context.Background(), 1, models.ContactFilter{Page: 2, Size: 5})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Total != 12 || len(page.Items) != 5 {
		t.Fatalf("unexpected page: total=%d items=%d", page.Total, len(page.Items))
	}
	if page.Pages() != 3 {
		t.Fatalf("Pages() = %d, want 3", page.Pages())
	}
}

func TestList_SearchAndFavorite(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	fav := true
	mock.ExpectQuery(`SELECT\s+count\(\*\).*ILIKE\s*\$2.*favorite\s*=\s*\$3`).
		WithArgs(int64(1), "%doe%", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT\s+.*FROM\s+contacts.*ILIKE\s*\$2.*favorite\s*=\s*\$3`).
		WithArgs(int64(1), "%doe%", true).
		WillReturnRows(contactRows(3))

	page, err := repo.List(context.Background(), 1, models.ContactFilter{Search: "doe", Favorite: &fav, Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestGetByID_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+contacts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(7), int64(1)).
		WillReturnRows(contactRows(7))

	got, err := repo.GetByID(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+contacts\s+WHERE\s+id`).
		WithArgs(int64(99), int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1, 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow(int64(5), time.Now(), time.Now())
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+contacts\s*\(owner_id,\s*first_name,\s*last_name,\s*phone,\s*email,\s*address,\s*notes,\s*favorite\)`).
		WithArgs(int64(1), "Jane", "Doe", "555-123-4567", nil, "1 Main St", nil, false).
		WillReturnRows(rows)

	c := &models.Contact{OwnerID: 1, FirstName: "Jane", LastName: "Doe", Phone: "555-123-4567", Address: "1 Main St"}
	got, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	first := "Janet"
	mock.ExpectQuery(`(?s)UPDATE\s+contacts\s+SET.*COALESCE\(\$3,\s*first_name\).*updated_at\s*=\s*now\(\).*WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2.*RETURNING`).
		WithArgs(int64(7), int64(1), "Janet", nil, nil, nil, nil, nil, nil).
		WillReturnRows(contactRows(7))

	_, err := repo.Update(context.Background(), 1, 7, models.ContactPatch{FirstName: &first})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE\s+contacts\s+SET`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), 1, 99, models.ContactPatch{})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+contacts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(99), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 1, 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+contacts`).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1, 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestSearch_FavoriteOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+contacts\s+WHERE\s+owner_id\s*=\s*\$1.*ILIKE\s*\$2.*favorite\s*=\s*TRUE.*ORDER\s+BY\s+last_name,\s*first_name`).
		WithArgs(int64(1), "%jane%").
		WillReturnRows(contactRows(2))

	got, err := repo.Search(context.Background(), 1, "jane", true)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
