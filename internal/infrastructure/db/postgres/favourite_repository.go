package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

type FavouriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavouriteRepository(pool *pgxpool.Pool) *FavouriteRepository {
	return &FavouriteRepository{pool: pool}
}

func scanFavourite(row pgx.Row) (domain.Favourite, error) {
	var (
		f  domain.Favourite
		id int64
	)
	if err := row.Scan(&id, &f.UserID, &f.Code, &f.CreatedAt); err != nil {
		return domain.Favourite{}, err
	}
	f.ID = formatID(id)
	f.CreatedAt = f.CreatedAt.UTC()
	return f, nil
}

func (r *FavouriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Favourite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, code, created_at
		FROM favourites
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying favourites for user %s: %w", userID, err)
	}
	defer rows.Close()

	favs := []domain.Favourite{}
	for rows.Next() {
		f, err := scanFavourite(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning favourite row: %w", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favourite rows: %w", err)
	}
	return favs, nil
}

func (r *FavouriteRepository) Find(ctx context.Context, userID string, code int) (*domain.Favourite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f, err := scanFavourite(r.pool.QueryRow(ctx,
		`SELECT id, user_id, code, created_at FROM favourites WHERE user_id = $1 AND code = $2`, userID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFavouriteNotFound
		}
		return nil, fmt.Errorf("find favourite: %w", err)
	}
	return &f, nil
}

func (r *FavouriteRepository) Create(ctx context.Context, fav *domain.Favourite) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO favourites (user_id, code, created_at) VALUES ($1, $2, $3) RETURNING id`,
		fav.UserID, fav.Code, fav.CreatedAt).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFavouriteExists
		}
		return fmt.Errorf("creating favourite: %w", err)
	}
	fav.ID = formatID(id)
	return nil
}

func (r *FavouriteRepository) Delete(ctx context.Context, id string) error {
	n, ok := parseID(id)
	if !ok {
		return domain.ErrFavouriteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM favourites WHERE id = $1`, n)
	if err != nil {
		return fmt.Errorf("deleting favourite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFavouriteNotFound
	}
	return nil
}
