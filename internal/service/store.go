package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
)

// Store is the persistence the service depends on. *repository.Repository
// implements it.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mock_service -source=store.go Store
type Store interface {
	TransactionStore
	CategoryStore
	GoalStore
	UserStore
}

type TransactionStore interface {
	FindTransactions(ctx context.Context, slug string, userID int64) ([]models.RawRecord, error)
	CreateTransaction(ctx context.Context, slug string, userID int64, m models.ManualTransaction) (int64, error)
	TransactionExists(ctx context.Context, slug string, id, userID int64) (bool, error)
}

type CategoryStore interface {
	ListCategories(ctx context.Context, userID int64) ([]models.CategoryDefinition, error)
	CreateCategory(ctx context.Context, c *models.CategoryDefinition) error
	UpdateCategory(ctx context.Context, userID, categoryID int64, upd models.CategoryUpdate) error
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
}

type GoalStore interface {
	CreateGoal(ctx context.Context, g *models.Goal) error
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	FindGoal(ctx context.Context, goalID int64) (*models.Goal, error)
	IsGoalOwner(ctx context.Context, goalID, userID int64) (bool, error)
	UpdateGoalName(ctx context.Context, goalID int64, name string) error
	DeleteGoal(ctx context.Context, goalID int64) error
	AddGoalRule(ctx context.Context, goalID int64, rule *models.GoalRule) error
	DeleteGoalRule(ctx context.Context, goalID, ruleID int64) error
	LinkTransaction(ctx context.Context, link models.ContributorTransaction) error
	UnlinkTransaction(ctx context.Context, goalID int64, source string, transactionID int64) error
	FindGoalContributions(ctx context.Context, goalID int64) ([]models.ContributorTransaction, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsersWithEmail(ctx context.Context) ([]models.User, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	ListFriends(ctx context.Context, userID int64) ([]models.Friend, error)
	DeleteFriend(ctx context.Context, userID, friendID int64) error
	CountFriends(ctx context.Context, userID int64, ids []int64) (int, error)
}
