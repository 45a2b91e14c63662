package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dan9191/finance-service/internal/category"
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/normalizer"
)

// ParseSlugs splits a comma separated source list. Empty input means every
// registered source; duplicates are dropped.
func ParseSlugs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return models.Sources(), nil
	}
	seen := make(map[string]bool)
	var slugs []string
	for _, part := range strings.Split(s, ",") {
		slug := strings.TrimSpace(part)
		if slug == "" || seen[slug] {
			continue
		}
		if !models.IsValidSource(slug) {
			return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, slug)
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}
	if len(slugs) == 0 {
		return models.Sources(), nil
	}
	return slugs, nil
}

// fetchTransactions loads and normalizes every requested source concurrently.
// Rows keep source order, then the store's order within a source.
func (s *Service) fetchTransactions(ctx context.Context, userID int64, slugs []string) ([]models.Transaction, error) {
	perSource := make([][]models.Transaction, len(slugs))
	g, gctx := errgroup.WithContext(ctx)
	for i, slug := range slugs {
		i, slug := i, slug
		g.Go(func() error {
			rows, err := s.repo.FindTransactions(gctx, slug, userID)
			if err != nil {
				return storeError(err)
			}
			perSource[i] = normalizer.NormalizeAll(slug, rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	var all []models.Transaction
	for _, txs := range perSource {
		all = append(all, txs...)
	}
	return all, nil
}

// categorize fetches the user's transactions from slugs and resolves them
// against the user's category catalog.
func (s *Service) categorize(ctx context.Context, userID int64, slugs []string) ([]models.Transaction, models.ResolveStats, error) {
	var (
		txs        []models.Transaction
		categories []models.CategoryDefinition
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.fetchTransactions(gctx, userID, slugs)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.repo.ListCategories(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", storeError(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, models.ResolveStats{}, err
	}

	out, stats := category.Resolve(txs, categories)
	return out, stats, nil
}

// Transactions returns the user's categorized transactions from the given sources.
func (s *Service) Transactions(ctx context.Context, userID int64, slugs []string) (*models.CategorizedTransactions, error) {
	txs, stats, err := s.categorize(ctx, userID, slugs)
	if err != nil {
		return nil, err
	}
	return &models.CategorizedTransactions{
		Status: models.StatusSuccess,
		Data:   txs,
		Meta:   stats,
	}, nil
}

// CreateTransaction stores a manually entered transaction.
func (s *Service) CreateTransaction(ctx context.Context, userID int64, slug string, m models.ManualTransaction) (int64, error) {
	if !models.IsValidSource(slug) {
		return 0, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, slug)
	}
	if !m.OperationDate.Valid() {
		return 0, fmt.Errorf("%w: operationDate is required", ErrInvalidInput)
	}
	id, err := s.repo.CreateTransaction(ctx, slug, userID, m)
	if err != nil {
		return 0, storeError(err)
	}

	s.log.Infof("Transaction %d created in %s for user %d", id, slug, userID)
	return id, nil
}
