package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

type FavouriteRepository struct {
	db *sql.DB
}

func NewFavouriteRepository(db *sql.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

func (r *FavouriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Favourite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, code, created_at FROM favourites WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	favs := []domain.Favourite{}
	for rows.Next() {
		f, err := scanFavourite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favourite: %w", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favourites: %w", err)
	}
	return favs, nil
}

func (r *FavouriteRepository) Find(ctx context.Context, userID string, code int) (*domain.Favourite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f, err := scanFavourite(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, code, created_at FROM favourites WHERE user_id = ? AND code = ?`, userID, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFavouriteNotFound
		}
		return nil, fmt.Errorf("find favourite: %w", err)
	}
	return &f, nil
}

func (r *FavouriteRepository) Create(ctx context.Context, fav *domain.Favourite) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO favourites (user_id, code, created_at) VALUES (?, ?, ?)`,
		fav.UserID, fav.Code, fav.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFavouriteExists
		}
		return fmt.Errorf("insert favourite: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert favourite: %w", err)
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM favourites WHERE id = ?`, n)
	if err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrFavouriteNotFound
	}
	return nil
}

func scanFavourite(row rowScanner) (domain.Favourite, error) {
	var (
		f         domain.Favourite
		id        int64
		createdAt int64
	)
	if err := row.Scan(&id, &f.UserID, &f.Code, &createdAt); err != nil {
		return domain.Favourite{}, err
	}
	f.ID = formatID(id)
	f.CreatedAt = unixToTime(createdAt)
	return f, nil
}
