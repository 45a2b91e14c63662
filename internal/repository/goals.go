package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"github.com/Dan9191/finance-service/internal/models"
)

// CreateGoal stores a goal with its owners and rules atomically and fills in ids.
func (r *Repository) CreateGoal(ctx context.Context, g *models.Goal) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO finance.goals (goal_name)
			VALUES ($1)
			RETURNING id`, g.GoalName).Scan(&g.ID)
		if err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO finance.goal_owners (goal_id, user_id)
			SELECT $1, unnest($2::bigint[])
			ON CONFLICT DO NOTHING`, g.ID, pq.Array(g.OwnerIDs)); err != nil {
			return fmt.Errorf("failed to add goal owners: %w", err)
		}
		for i := range g.Rules {
			if err := insertRule(ctx, tx, g.ID, &g.Rules[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertRule(ctx context.Context, q queryRower, goalID int64, rule *models.GoalRule) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO finance.goal_rules (goal_id, goal_operation, goal_rule)
		VALUES ($1, $2, $3)
		RETURNING id`, goalID, rule.GoalOperation, rule.GoalRule).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("failed to create goal rule: %w", err)
	}
	return nil
}

// ListGoals returns the goals the user co-owns, with owners and rules.
func (r *Repository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.goal_name
		FROM finance.goals g
		JOIN finance.goal_owners o ON o.goal_id = g.id
		WHERE o.user_id = $1
		ORDER BY g.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.GoalName); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}
	if err := r.loadGoalDetails(ctx, goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// FindGoal returns one goal with owners and rules.
func (r *Repository) FindGoal(ctx context.Context, goalID int64) (*models.Goal, error) {
	g := models.Goal{ID: goalID}
	err := r.db.QueryRowContext(ctx, `
		SELECT goal_name FROM finance.goals WHERE id = $1`, goalID).Scan(&g.GoalName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %d: %w", goalID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	goals := []models.Goal{g}
	if err := r.loadGoalDetails(ctx, goals); err != nil {
		return nil, err
	}
	return &goals[0], nil
}

func (r *Repository) loadGoalDetails(ctx context.Context, goals []models.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	ids := make([]int64, len(goals))
	index := make(map[int64]int, len(goals))
	for i := range goals {
		ids[i] = goals[i].ID
		index[goals[i].ID] = i
		goals[i].OwnerIDs = []int64{}
		goals[i].Rules = []models.GoalRule{}
	}

	owners, err := r.db.QueryContext(ctx, `
		SELECT goal_id, user_id FROM finance.goal_owners
		WHERE goal_id = ANY($1)
		ORDER BY goal_id, user_id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load goal owners: %w", err)
	}
	defer owners.Close()
	for owners.Next() {
		var goalID, userID int64
		if err := owners.Scan(&goalID, &userID); err != nil {
			return fmt.Errorf("failed to scan goal owner: %w", err)
		}
		g := &goals[index[goalID]]
		g.OwnerIDs = append(g.OwnerIDs, userID)
	}
	if err := owners.Err(); err != nil {
		return fmt.Errorf("failed to read goal owners: %w", err)
	}

	rules, err := r.db.QueryContext(ctx, `
		SELECT id, goal_id, goal_operation, goal_rule FROM finance.goal_rules
		WHERE goal_id = ANY($1)
		ORDER BY goal_id, id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load goal rules: %w", err)
	}
	defer rules.Close()
	for rules.Next() {
		var goalID int64
		var rule models.GoalRule
		if err := rules.Scan(&rule.ID, &goalID, &rule.GoalOperation, &rule.GoalRule); err != nil {
			return fmt.Errorf("failed to scan goal rule: %w", err)
		}
		g := &goals[index[goalID]]
		g.Rules = append(g.Rules, rule)
	}
	if err := rules.Err(); err != nil {
		return fmt.Errorf("failed to read goal rules: %w", err)
	}
	return nil
}

// IsGoalOwner reports whether userID co-owns the goal.
func (r *Repository) IsGoalOwner(ctx context.Context, goalID, userID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM finance.goal_owners WHERE goal_id = $1 AND user_id = $2)`,
		goalID, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check goal owner: %w", err)
	}
	return ok, nil
}

// UpdateGoalName renames a goal.
func (r *Repository) UpdateGoalName(ctx context.Context, goalID int64, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE finance.goals SET goal_name = $1 WHERE id = $2`, name, goalID)
	if err != nil {
		return fmt.Errorf("failed to rename goal: %w", err)
	}
	return affectedOrNotFound(res)
}

// DeleteGoal removes a goal; owners, rules and links cascade.
func (r *Repository) DeleteGoal(ctx context.Context, goalID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finance.goals WHERE id = $1`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return affectedOrNotFound(res)
}

// AddGoalRule appends a rule to a goal and fills in its id.
func (r *Repository) AddGoalRule(ctx context.Context, goalID int64, rule *models.GoalRule) error {
	return insertRule(ctx, r.db, goalID, rule)
}

// DeleteGoalRule removes one rule of a goal.
func (r *Repository) DeleteGoalRule(ctx context.Context, goalID, ruleID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM finance.goal_rules WHERE id = $1 AND goal_id = $2`, ruleID, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal rule: %w", err)
	}
	return affectedOrNotFound(res)
}

// LinkTransaction attaches a source transaction to a goal on behalf of a contributor.
func (r *Repository) LinkTransaction(ctx context.Context, link models.ContributorTransaction) error {
	if _, err := lookupSource(link.TransactionSource); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO finance.goal_transactions (goal_id, transaction_id, transaction_source, contributor_user_id)
		VALUES ($1, $2, $3, $4)`,
		link.GoalID, link.TransactionID, link.TransactionSource, link.ContributorUserID)
	if err != nil {
		return fmt.Errorf("failed to link transaction: %w", mapError(err))
	}
	return nil
}

// UnlinkTransaction detaches a transaction from a goal.
func (r *Repository) UnlinkTransaction(ctx context.Context, goalID int64, source string, transactionID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM finance.goal_transactions
		WHERE goal_id = $1 AND transaction_source = $2 AND transaction_id = $3`,
		goalID, source, transactionID)
	if err != nil {
		return fmt.Errorf("failed to unlink transaction: %w", err)
	}
	return affectedOrNotFound(res)
}

// contributionsQuery joins goal links to every source table. The amount is
// returned as text; a link whose transaction is gone yields an empty amount.
func contributionsQuery() string {
	slugs := make([]string, 0, len(sourceTables))
	for slug := range sourceTables {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	joins := make([]string, 0, len(slugs))
	amounts := make([]string, 0, len(slugs))
	for i, slug := range slugs {
		alias := fmt.Sprintf("s%d", i)
		joins = append(joins, fmt.Sprintf(
			"LEFT JOIN %s %s ON gt.transaction_source = '%s' AND %s.id = gt.transaction_id",
			sourceTables[slug].table, alias, slug, alias))
		amounts = append(amounts, alias+".currency_amount::text")
	}
	return fmt.Sprintf(`
		SELECT gt.goal_id, gt.transaction_id, gt.transaction_source, gt.contributor_user_id,
		       u.username, COALESCE(%s, '')
		FROM finance.goal_transactions gt
		JOIN finance.users u ON u.id = gt.contributor_user_id
		%s
		WHERE gt.goal_id = $1
		ORDER BY gt.id`, strings.Join(amounts, ", "), strings.Join(joins, "\n\t\t"))
}

// FindGoalContributions returns the transactions linked to a goal in link order.
func (r *Repository) FindGoalContributions(ctx context.Context, goalID int64) ([]models.ContributorTransaction, error) {
	rows, err := r.db.QueryContext(ctx, contributionsQuery(), goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal contributions: %w", err)
	}
	defer rows.Close()

	contributions := []models.ContributorTransaction{}
	for rows.Next() {
		var c models.ContributorTransaction
		if err := rows.Scan(&c.GoalID, &c.TransactionID, &c.TransactionSource,
			&c.ContributorUserID, &c.UserName, &c.CurrencyAmount); err != nil {
			return nil, fmt.Errorf("failed to scan goal contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goal contributions: %w", err)
	}
	return contributions, nil
}
