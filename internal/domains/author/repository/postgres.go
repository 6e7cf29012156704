package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courselibrary-backend/internal/domains/author"
	"courselibrary-backend/internal/shared/pagination"
	"courselibrary-backend/internal/shared/sorting"
	"courselibrary-backend/pkg/cache"
	"courselibrary-backend/pkg/database"
)

// postgresRepository implements author.Repository on pgxpool with a
// read-through Redis cache. The sorting registry translates validated
// client order-by expressions into ORDER BY fragments.
type postgresRepository struct {
	pool    *pgxpool.Pool
	cache   cache.Cache
	sorting *sorting.Registry
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache, sortReg *sorting.Registry) author.Repository {
	return &postgresRepository{pool: pool, cache: cache, sorting: sortReg}
}

const (
	authorCacheKeyPrefix     = "author:"
	authorListCacheKeyPrefix = "authors:list:"
	cacheTTL                 = 15 * time.Minute

	authorColumns = "id, first_name, last_name, date_of_birth, date_of_death, main_category, created_at, updated_at"

	defaultOrderBy = "first_name ASC, last_name ASC"
)

func authorCacheKey(id uuid.UUID) string {
	return authorCacheKeyPrefix + id.String()
}

func listCacheKey(filter author.AuthorFilter, page pagination.PageRequest) string {
	return fmt.Sprintf("%s%s:%s:%s:%d:%d",
		authorListCacheKeyPrefix,
		filter.MainCategory, filter.SearchQuery, filter.OrderBy,
		page.PageNumber, page.PageSize,
	)
}

func scanAuthor(row pgx.Row, a *author.Author) error {
	return row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.DateOfBirth,
		&a.DateOfDeath,
		&a.MainCategory,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	var created *author.Author
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		created, err = insertAuthor(ctx, tx, a)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.cache.DeletePattern(ctx, authorListCacheKeyPrefix+"*")

	return created, nil
}

func (r *postgresRepository) CreateMany(ctx context.Context, authors []*author.Author) ([]author.Author, error) {
	created := make([]author.Author, 0, len(authors))
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, a := range authors {
			one, err := insertAuthor(ctx, tx, a)
			if err != nil {
				return err
			}
			created = append(created, *one)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.cache.DeletePattern(ctx, authorListCacheKeyPrefix+"*")

	return created, nil
}

// insertAuthor writes the author row plus any inline courses inside
// the caller's transaction.
func insertAuthor(ctx context.Context, tx pgx.Tx, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, date_of_birth, date_of_death, main_category)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + authorColumns

	var created author.Author
	err := scanAuthor(tx.QueryRow(ctx, query,
		a.FirstName,
		a.LastName,
		a.DateOfBirth,
		a.DateOfDeath,
		a.MainCategory,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	for _, c := range a.Courses {
		var courseID uuid.UUID
		err := tx.QueryRow(ctx,
			`INSERT INTO courses (id, title, description, author_id)
             VALUES ($1, $2, $3, $4)
             RETURNING id`,
			uuid.New(), c.Title, c.Description, created.ID,
		).Scan(&courseID)
		if err != nil {
			return nil, fmt.Errorf("failed to create course for author: %w", err)
		}
		c.ID = courseID
		c.AuthorID = created.ID
		created.Courses = append(created.Courses, c)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKey(id)

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error) {
	if len(ids) == 0 {
		return []author.Author{}, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = ANY($1) ORDER BY first_name, last_name`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors by ids: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	// The collection contract is all-or-nothing.
	if len(authors) != len(ids) {
		return nil, author.ErrAuthorNotFound
	}

	return authors, nil
}

func (r *postgresRepository) GetPage(ctx context.Context, filter author.AuthorFilter, page pagination.PageRequest) (*pagination.PagedList[author.Author], error) {
	cacheKey := listCacheKey(filter, page)

	var cached pagination.PagedList[author.Author]
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.MainCategory != "" {
		where.WriteString(fmt.Sprintf(" AND main_category = $%d", argPos))
		args = append(args, filter.MainCategory)
		argPos++
	}

	if filter.SearchQuery != "" {
		where.WriteString(fmt.Sprintf(
			" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR main_category ILIKE $%d)",
			argPos, argPos, argPos,
		))
		args = append(args, "%"+filter.SearchQuery+"%")
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM authors" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count authors: %w", err)
	}

	orderBy := defaultOrderBy
	if filter.OrderBy != "" {
		translated, err := r.sorting.Translate(author.ResponseShape, author.EntityShape, filter.OrderBy)
		if err != nil {
			return nil, fmt.Errorf("failed to translate order by: %w", err)
		}
		if translated != "" {
			orderBy = translated
		}
	}

	query := fmt.Sprintf(
		"SELECT %s FROM authors%s ORDER BY %s LIMIT $%d OFFSET $%d",
		authorColumns, where.String(), orderBy, argPos, argPos+1,
	)
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	list := pagination.NewPagedList(authors, total, page.PageNumber, page.PageSize)

	r.cache.Set(ctx, cacheKey, list, cacheTTL)

	return list, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// ON DELETE CASCADE on courses.author_id removes the courses.
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.cache.Delete(ctx, authorCacheKey(id))
	r.cache.DeletePattern(ctx, authorListCacheKeyPrefix+"*")

	return nil
}
