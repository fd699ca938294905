package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

// CreateProduct posts a new product upstream. On success it records the
// action and reloads; on failure the caller keeps its draft — nothing is
// logged and the snapshot stays untouched, only the banner changes.
func (s *Screen) CreateProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	created, err := s.catalog.Create(ctx, draft)
	if err != nil {
		s.setBanner("could not save product")
		return models.Product{}, err
	}
	s.log.Record(models.ActionAdded, created.Name, s.user)
	s.Reload(ctx)
	return created, nil
}

// UpdateProduct behaves like CreateProduct for an existing id.
func (s *Screen) UpdateProduct(ctx context.Context, id int, draft models.ProductDraft) (models.Product, error) {
	updated, err := s.catalog.Update(ctx, id, draft)
	if err != nil {
		s.setBanner("could not save product")
		return models.Product{}, err
	}
	s.log.Record(models.ActionEdited, updated.Name, s.user)
	s.Reload(ctx)
	return updated, nil
}

// DeleteProduct removes a single product. The activity entry uses the
// pre-deletion name when the snapshot knows it.
func (s *Screen) DeleteProduct(ctx context.Context, id int) error {
	name := s.nameOf(id)
	if err := s.catalog.Delete(ctx, id); err != nil {
		s.setBanner("could not delete product")
		return err
	}
	s.log.Record(models.ActionDeleted, name, s.user)
	s.mu.Lock()
	s.selection.Set(id, false)
	s.mu.Unlock()
	s.Reload(ctx)
	return nil
}

// BulkResult accounts for every id in a bulk operation individually.
type BulkResult struct {
	Requested int           `json:"requested"`
	Succeeded []int         `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

type BulkFailure struct {
	ID    int    `json:"id"`
	Error string `json:"error"`
}

// BulkDelete fans out one delete per selected id, waits for all of them and
// collects per-id outcomes. The selection is cleared and the list reloaded
// regardless of individual failures; failures surface in the result and the
// banner instead of being silently swallowed.
func (s *Screen) BulkDelete(ctx context.Context) BulkResult {
	return s.fanOut(ctx, models.ActionDeleted, func(id int) error {
		return s.catalog.Delete(ctx, id)
	})
}

// BulkMarkOutOfStock issues a concurrent quantity=0 partial update for every
// selected id, with the same accounting as BulkDelete.
func (s *Screen) BulkMarkOutOfStock(ctx context.Context) BulkResult {
	return s.fanOut(ctx, models.ActionMarkedOutOfStock, func(id int) error {
		_, err := s.catalog.SetQuantity(ctx, id, 0)
		return err
	})
}

func (s *Screen) fanOut(ctx context.Context, action models.ActivityAction, op func(id int) error) BulkResult {
	ids := s.SelectedIDs()
	names := make(map[int]string, len(ids))
	for _, id := range ids {
		names[id] = s.nameOf(id)
	}

	result := BulkResult{Requested: len(ids), Succeeded: []int{}, Failed: []BulkFailure{}}
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			err := op(id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, BulkFailure{ID: id, Error: err.Error()})
				return
			}
			result.Succeeded = append(result.Succeeded, id)
		}(id)
	}
	wg.Wait()

	sort.Ints(result.Succeeded)
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].ID < result.Failed[j].ID })

	for _, id := range result.Succeeded {
		s.log.Record(action, names[id], s.user)
	}

	s.mu.Lock()
	s.selection.Clear()
	s.mu.Unlock()
	s.Reload(ctx)

	// After the reload so a successful refresh cannot wipe the report.
	if len(result.Failed) > 0 {
		s.setBanner(fmt.Sprintf("%d of %d items failed", len(result.Failed), result.Requested))
	}
	return result
}

// ImportRow is one parsed CSV line queued for import.
type ImportRow struct {
	Line  int
	Draft models.ProductDraft
}

// RowError reports why a single import row was rejected.
type RowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// ImportOutcome summarizes a CSV import.
type ImportOutcome struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

// Import creates one product per row, strictly sequentially, then reloads
// once. Skipped counts rows the parser already rejected; Errors collects
// rows the backend refused.
func (s *Screen) Import(ctx context.Context, rows []ImportRow, skipped int) ImportOutcome {
	outcome := ImportOutcome{Skipped: skipped, Errors: []RowError{}}
	for _, row := range rows {
		if _, err := s.catalog.Create(ctx, row.Draft); err != nil {
			outcome.Errors = append(outcome.Errors, RowError{Line: row.Line, Error: err.Error()})
			continue
		}
		outcome.Imported++
		s.log.Record(models.ActionImported, row.Draft.Name, s.user)
	}
	s.Reload(ctx)
	return outcome
}
