package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

// ListCategories returns the user's categories with their conditions, both in
// creation order. That order is the resolver's precedence order.
func (r *Repository) ListCategories(ctx context.Context, userID int64) ([]models.CategoryDefinition, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.category_name, cc.id, cc.condition_value, cc.is_exact
		FROM finance.categories c
		LEFT JOIN finance.category_conditions cc ON cc.category_id = c.id
		WHERE c.user_id = $1
		ORDER BY c.id, cc.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.CategoryDefinition{}
	for rows.Next() {
		var (
			id, condID  sql.NullInt64
			name, value sql.NullString
			isExact     sql.NullBool
		)
		if err := rows.Scan(&id, &name, &condID, &value, &isExact); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if n := len(categories); n == 0 || categories[n-1].ID != id.Int64 {
			categories = append(categories, models.CategoryDefinition{
				ID:           id.Int64,
				UserID:       userID,
				CategoryName: name.String,
				Conditions:   []models.ConditionRule{},
			})
		}
		if condID.Valid {
			last := &categories[len(categories)-1]
			last.Conditions = append(last.Conditions, models.ConditionRule{
				ID:             condID.Int64,
				ConditionValue: value.String,
				IsExact:        isExact.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores a category and its conditions atomically and fills in ids.
func (r *Repository) CreateCategory(ctx context.Context, c *models.CategoryDefinition) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO finance.categories (user_id, category_name)
			VALUES ($1, $2)
			RETURNING id`, c.UserID, c.CategoryName).Scan(&c.ID)
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		for i := range c.Conditions {
			if err := insertCondition(ctx, tx, c.ID, &c.Conditions[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertCondition(ctx context.Context, tx *sql.Tx, categoryID int64, rule *models.ConditionRule) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO finance.category_conditions (category_id, condition_value, is_exact)
		VALUES ($1, $2, $3)
		RETURNING id`, categoryID, rule.ConditionValue, rule.IsExact).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("failed to create category condition: %w", err)
	}
	return nil
}

// UpdateCategory renames a category and rewrites the listed conditions.
// Conditions with a zero id are appended. ErrNotFound when the category or a
// condition does not belong to the user.
func (r *Repository) UpdateCategory(ctx context.Context, userID, categoryID int64, upd models.CategoryUpdate) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM finance.categories WHERE id = $1 AND user_id = $2)`,
			categoryID, userID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to find category: %w", err)
		}
		if !exists {
			return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}

		if upd.CategoryName != nil {
			if _, err := tx.ExecContext(ctx, `
				UPDATE finance.categories SET category_name = $1 WHERE id = $2`,
				*upd.CategoryName, categoryID); err != nil {
				return fmt.Errorf("failed to rename category: %w", err)
			}
		}

		for _, c := range upd.Conditions {
			if c.ConditionID == 0 {
				rule := models.ConditionRule{ConditionValue: c.ConditionValue, IsExact: c.IsExact}
				if err := insertCondition(ctx, tx, categoryID, &rule); err != nil {
					return err
				}
				continue
			}
			res, err := tx.ExecContext(ctx, `
				UPDATE finance.category_conditions
				SET condition_value = $1, is_exact = $2
				WHERE id = $3 AND category_id = $4`,
				c.ConditionValue, c.IsExact, c.ConditionID, categoryID)
			if err != nil {
				return fmt.Errorf("failed to update category condition: %w", err)
			}
			if err := affectedOrNotFound(res); err != nil {
				return fmt.Errorf("condition %d: %w", c.ConditionID, err)
			}
		}
		return nil
	})
}

// DeleteCategory removes a category; its conditions cascade.
func (r *Repository) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM finance.categories
		WHERE id = $1 AND user_id = $2`, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("category %d: %w", categoryID, err)
	}
	return nil
}
