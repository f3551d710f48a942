// Package consistency enforces the Target/Achievement invariants around
// mutations: delete preconditions for categories and products, the target
// delete cascade, and the combined target + achievement save.
package consistency

import (
	"context"
	"errors"

	"targetrack/internal/models"
)

// CanDeleteCategory reports whether category owns no products. The
// category's Products relation must be loaded.
func CanDeleteCategory(category *models.Category) bool {
	return len(category.Products) == 0
}

// CanDeleteProduct reports whether no target references product.
func CanDeleteProduct(product *models.Product, targets []*models.Target) bool {
	for _, t := range targets {
		if t.ProductID == product.ID {
			return false
		}
	}
	return true
}

// TargetUpdate carries the fields the combined edit may change.
type TargetUpdate struct {
	ProductID string `json:"product_id"`
	Nominal   int64  `json:"nominal"`
}

// Backend performs the individual writes the guard sequences. Each call is
// independent; there is no shared transaction.
type Backend interface {
	UpdateTarget(ctx context.Context, targetID string, update TargetUpdate) (*models.Target, error)
	CreateAchievement(ctx context.Context, targetID string, nominal int64) (*models.Achievement, error)
	UpdateAchievement(ctx context.Context, targetID string, nominal int64) (*models.Achievement, error)
	DeleteTarget(ctx context.Context, targetID string) error
	// DeleteAchievement removes the achievement of targetID. It returns nil
	// when the target has no achievement.
	DeleteAchievement(ctx context.Context, targetID string) error
}

// Guard sequences two-step writes against a Backend and reports exactly
// which steps landed.
type Guard struct {
	backend Backend
}

// NewGuard creates a Guard over backend.
func NewGuard(backend Backend) *Guard {
	return &Guard{backend: backend}
}

// DeleteTarget deletes the target and then its achievement. If the second
// step fails the target is already gone and the outcome is a partial write.
func (g *Guard) DeleteTarget(ctx context.Context, targetID string) Outcome {
	out := Outcome{Operation: OpDeleteTarget, TargetID: targetID}

	if err := g.backend.DeleteTarget(ctx, targetID); err != nil {
		out.Status = FirstFailed
		out.FirstErr = err
		return out
	}
	if err := g.backend.DeleteAchievement(ctx, targetID); err != nil {
		out.Status = SecondFailedAfterFirstSucceeded
		out.SecondErr = err
		return out
	}

	out.Status = BothSucceeded
	return out
}

// SaveTargetAndAchievement updates the target's product and nominal, then,
// only if that succeeded and achievementNominal is non-nil, updates the
// target's achievement or creates one when the target has none. A nil
// achievementNominal leaves any existing achievement untouched.
func (g *Guard) SaveTargetAndAchievement(
	ctx context.Context,
	target *models.Target,
	productID string,
	nominal int64,
	achievementNominal *int64,
) Outcome {
	out := Outcome{Operation: OpSaveTarget, TargetID: target.ID}

	if nominal < 0 || (achievementNominal != nil && *achievementNominal < 0) {
		out.Status = FirstFailed
		out.FirstErr = ErrNegativeNominal
		return out
	}

	updated, err := g.backend.UpdateTarget(ctx, target.ID, TargetUpdate{ProductID: productID, Nominal: nominal})
	if err != nil {
		out.Status = FirstFailed
		out.FirstErr = err
		return out
	}
	out.Target = updated

	if achievementNominal == nil {
		out.Status = BothSucceeded
		out.SecondSkipped = true
		return out
	}

	var achievement *models.Achievement
	if target.Achievement != nil {
		achievement, err = g.backend.UpdateAchievement(ctx, target.ID, *achievementNominal)
	} else {
		achievement, err = g.backend.CreateAchievement(ctx, target.ID, *achievementNominal)
	}
	if err != nil {
		out.Status = SecondFailedAfterFirstSucceeded
		out.SecondErr = err
		return out
	}

	out.Achievement = achievement
	out.Status = BothSucceeded
	return out
}

// ErrNegativeNominal rejects negative monetary amounts before any write.
var ErrNegativeNominal = errors.New("nominal must not be negative")
