package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const contactColumns = `id, owner_id, first_name, last_name, phone, email, address, notes, favorite, created_at, updated_at`

// searchClause matches the free-text filter against names, phone and email.
const searchClause = `(first_name ILIKE $2 OR last_name ILIKE $2 OR phone ILIKE $2 OR email ILIKE $2)`

func (r *PostgresRepository) List(ctx context.Context, ownerID int64, filter models.ContactFilter) (*models.ContactPage, error) {

	where := `owner_id = $1`
	args := []any{ownerID}

	pattern := "%"
	if filter.Search != "" {
		pattern = "%" + filter.Search + "%"
	}
	where += ` AND ` + searchClause
	args = append(args, pattern)

	if filter.Favorite != nil {
		where += ` AND favorite = $3`
		args = append(args, *filter.Favorite)
	}

	var total int
	countQuery := `SELECT count(*) FROM contacts WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	offset := (filter.Page - 1) * filter.Size
	listQuery := fmt.Sprintf(
		`SELECT %s FROM contacts WHERE %s ORDER BY last_name, first_name LIMIT %d OFFSET %d`,
		contactColumns, where, filter.Size, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items, err := scanContacts(rows)
	if err != nil {
		return nil, err
	}

	return &models.ContactPage{Items: items, Total: total, Page: filter.Page, Size: filter.Size}, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, id int64) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND owner_id = $2`

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {

	query :=
		`INSERT INTO contacts (owner_id, first_name, last_name, phone, email, address, notes, favorite)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		contact.OwnerID, contact.FirstName, contact.LastName, contact.Phone,
		contact.Email, contact.Address, contact.Notes, contact.Favorite).
		Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

// Update applies a partial patch. NULL arguments keep the stored value via
// COALESCE; updated_at is bumped even for an empty patch.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, id int64, patch models.ContactPatch) (*models.Contact, error) {

	query :=
		`UPDATE contacts SET
		    first_name = COALESCE($3, first_name),
		    last_name  = COALESCE($4, last_name),
		    phone      = COALESCE($5, phone),
		    email      = COALESCE($6, email),
		    address    = COALESCE($7, address),
		    notes      = COALESCE($8, notes),
		    favorite   = COALESCE($9, favorite),
		    updated_at = now()
		 WHERE id = $1 AND owner_id = $2
		 RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, id, ownerID,
		patch.FirstName, patch.LastName, patch.Phone, patch.Email,
		patch.Address, patch.Notes, patch.Favorite))
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM contacts WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Search(ctx context.Context, ownerID int64, query string, favoriteOnly bool) ([]*models.Contact, error) {

	where := `owner_id = $1 AND ` + searchClause
	args := []any{ownerID, "%" + query + "%"}
	if favoriteOnly {
		where += ` AND favorite = TRUE`
	}

	q := `SELECT ` + contactColumns + ` FROM contacts WHERE ` + where + ` ORDER BY last_name, first_name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

func scanContact(row *sql.Row) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Phone,
		&c.Email, &c.Address, &c.Notes, &c.Favorite, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func scanContacts(rows *sql.Rows) ([]*models.Contact, error) {
	items := make([]*models.Contact, 0)
	for rows.Next() {
		c := &models.Contact{}
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Phone,
			&c.Email, &c.Address, &c.Notes, &c.Favorite, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}
