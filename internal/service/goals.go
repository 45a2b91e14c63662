package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dan9191/finance-service/internal/goals"
	"github.com/Dan9191/finance-service/internal/models"
)

// NewGoal is the input for creating a goal. FriendIDs become co-owners.
type NewGoal struct {
	GoalName  string            `json:"goalName"`
	FriendIDs []int64           `json:"friendIDs"`
	Rules     []models.GoalRule `json:"rules"`
}

func normalizeRule(rule models.GoalRule) (models.GoalRule, error) {
	op, err := goals.ParseOperation(rule.GoalOperation)
	if err != nil {
		return rule, err
	}
	rule.ID = 0
	rule.GoalOperation = string(op)
	return rule, nil
}

// requireOwner hides goals the user does not co-own behind ErrNotFound.
func (s *Service) requireOwner(ctx context.Context, userID, goalID int64) error {
	ok, err := s.repo.IsGoalOwner(ctx, goalID, userID)
	if err != nil {
		return storeError(err)
	}
	if !ok {
		return fmt.Errorf("%w: goal %d", ErrNotFound, goalID)
	}
	return nil
}

// CreateGoal stores a goal owned by the user and every listed friend.
func (s *Service) CreateGoal(ctx context.Context, userID int64, in NewGoal) (*models.Goal, error) {
	name := strings.TrimSpace(in.GoalName)
	if name == "" {
		return nil, fmt.Errorf("%w: goalName is required", ErrInvalidInput)
	}

	owners := []int64{userID}
	seen := map[int64]bool{userID: true}
	var friends []int64
	for _, id := range in.FriendIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		friends = append(friends, id)
		owners = append(owners, id)
	}
	if len(friends) > 0 {
		n, err := s.repo.CountFriends(ctx, userID, friends)
		if err != nil {
			return nil, storeError(err)
		}
		if n != len(friends) {
			return nil, fmt.Errorf("%w: co-owners must be friends", ErrForbidden)
		}
	}

	rules := make([]models.GoalRule, 0, len(in.Rules))
	for _, r := range in.Rules {
		rule, err := normalizeRule(r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	goal := &models.Goal{GoalName: name, OwnerIDs: owners, Rules: rules}
	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, storeError(err)
	}

	s.log.Infof("Goal %d created by user %d with %d owners", goal.ID, userID, len(owners))
	return goal, nil
}

// Goals lists the goals the user co-owns.
func (s *Service) Goals(ctx context.Context, userID int64) ([]models.Goal, error) {
	list, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return list, nil
}

// RenameGoal changes a goal's name.
func (s *Service) RenameGoal(ctx context.Context, userID, goalID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: goalName is required", ErrInvalidInput)
	}
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.repo.UpdateGoalName(ctx, goalID, name); err != nil {
		return storeError(err)
	}

	s.log.Infof("Goal %d renamed by user %d", goalID, userID)
	return nil
}

// DeleteGoal removes a goal for every owner.
func (s *Service) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.repo.DeleteGoal(ctx, goalID); err != nil {
		return storeError(err)
	}

	s.log.Infof("Goal %d deleted by user %d", goalID, userID)
	return nil
}

// AddGoalRule appends a rule to a goal.
func (s *Service) AddGoalRule(ctx context.Context, userID, goalID int64, r models.GoalRule) (*models.GoalRule, error) {
	rule, err := normalizeRule(r)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return nil, err
	}
	if err := s.repo.AddGoalRule(ctx, goalID, &rule); err != nil {
		return nil, storeError(err)
	}

	s.log.Infof("Rule %d added to goal %d", rule.ID, goalID)
	return &rule, nil
}

// DeleteGoalRule removes one rule of a goal.
func (s *Service) DeleteGoalRule(ctx context.Context, userID, goalID, ruleID int64) error {
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.repo.DeleteGoalRule(ctx, goalID, ruleID); err != nil {
		return storeError(err)
	}

	s.log.Infof("Rule %d removed from goal %d", ruleID, goalID)
	return nil
}

// LinkTransaction counts one of the user's transactions towards a goal.
func (s *Service) LinkTransaction(ctx context.Context, userID, goalID int64, source string, transactionID int64) error {
	if !models.IsValidSource(source) {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, source)
	}
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return err
	}
	ok, err := s.repo.TransactionExists(ctx, source, transactionID, userID)
	if err != nil {
		return storeError(err)
	}
	if !ok {
		return fmt.Errorf("%w: transaction %s/%d", ErrNotFound, source, transactionID)
	}

	err = s.repo.LinkTransaction(ctx, models.ContributorTransaction{
		GoalID:            goalID,
		TransactionID:     transactionID,
		TransactionSource: source,
		ContributorUserID: userID,
	})
	if err != nil {
		return storeError(err)
	}

	s.log.Infof("Transaction %s/%d linked to goal %d by user %d", source, transactionID, goalID, userID)
	return nil
}

// UnlinkTransaction stops counting a transaction towards a goal.
func (s *Service) UnlinkTransaction(ctx context.Context, userID, goalID int64, source string, transactionID int64) error {
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.repo.UnlinkTransaction(ctx, goalID, source, transactionID); err != nil {
		return storeError(err)
	}

	s.log.Infof("Transaction %s/%d unlinked from goal %d", source, transactionID, goalID)
	return nil
}

// GoalSummary evaluates a goal's rules against its linked transactions.
func (s *Service) GoalSummary(ctx context.Context, userID, goalID int64, useAbsAmounts bool) (*models.GoalSummary, error) {
	if err := s.requireOwner(ctx, userID, goalID); err != nil {
		return nil, err
	}
	goal, err := s.repo.FindGoal(ctx, goalID)
	if err != nil {
		return nil, storeError(err)
	}
	contributions, err := s.repo.FindGoalContributions(ctx, goalID)
	if err != nil {
		return nil, storeError(err)
	}

	summary, err := goals.Evaluate(contributions, goal.Rules, useAbsAmounts)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate goal %d: %w", goalID, err)
	}
	return summary, nil
}
