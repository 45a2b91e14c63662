package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dan9191/finance-service/internal/models"
)

// AddFriend records a one-directional friendship.
func (r *Repository) AddFriend(ctx context.Context, userID, friendID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO finance.friends (user_id, friend_id)
		VALUES ($1, $2)`, userID, friendID)
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", mapError(err))
	}
	return nil
}

// ListFriends returns the user's friends ordered by name.
func (r *Repository) ListFriends(ctx context.Context, userID int64) ([]models.Friend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username
		FROM finance.friends f
		JOIN finance.users u ON u.id = f.friend_id
		WHERE f.user_id = $1
		ORDER BY u.username`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	friends := []models.Friend{}
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.Username); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

// DeleteFriend removes a friendship. ErrNotFound if there was none.
func (r *Repository) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM finance.friends
		WHERE user_id = $1 AND friend_id = $2`, userID, friendID)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}
	return affectedOrNotFound(res)
}

// CountFriends returns how many of ids are friends of userID.
func (r *Repository) CountFriends(ctx context.Context, userID int64, ids []int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT friend_id)
		FROM finance.friends
		WHERE user_id = $1 AND friend_id = ANY($2)`, userID, pq.Array(ids)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count friends: %w", err)
	}
	return n, nil
}
