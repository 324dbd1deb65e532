package market

import (
	"context"
	"fmt"

	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

// crud is the get/create/update/delete flow every resource service embeds.
// Each operation validates first and then makes exactly one repository call.
type crud[T any, P interface {
	*T
	model.Entity
}] struct {
	repo   repository.CRUD[T]
	entity string
}

// Get returns the record with the given id
func (c crud[T, P]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := c.repo.FindByID(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("service: failed to get %s %d: %w", c.entity, id, err)
	}
	return rec, nil
}

// Create validates rec and stores it under a new id, ignoring any id the client sent
func (c crud[T, P]) Create(ctx context.Context, rec *T) error {
	p := P(rec)
	p.SetIdentity(0)

	if err := p.Validate(); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := c.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("service: failed to create %s: %w", c.entity, err)
	}
	return nil
}

// Update validates rec and fully replaces the record with its id, inserting it if absent
func (c crud[T, P]) Update(ctx context.Context, rec *T) error {
	p := P(rec)

	if err := model.RequireIdentity(c.entity, p); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := c.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("service: failed to update %s %d: %w", c.entity, p.Identity(), err)
	}
	return nil
}

// Delete removes the record with the given id
func (c crud[T, P]) Delete(ctx context.Context, id int64) error {
	if err := c.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete %s %d: %w", c.entity, id, err)
	}
	return nil
}

// list wraps a filtered read and never returns a nil slice
func (c crud[T, P]) list(recs []T, err error) ([]T, error) {
	if err != nil {
		return nil, fmt.Errorf("service: failed to list %s records: %w", c.entity, err)
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}
