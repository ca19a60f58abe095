package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/starquest/internal/accessories"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/store"
)

// ShopItem is an accessory with its state for the active profile.
type ShopItem struct {
	accessories.Accessory
	State      accessories.State
	Affordable bool
}

// ShopItems lists every accessory in catalog order.
func (a *App) ShopItems() ([]ShopItem, error) {
	p, err := a.store.Snapshot()
	if err != nil {
		return nil, err
	}
	items := a.shop.All()
	out := make([]ShopItem, 0, len(items))
	for _, acc := range items {
		out = append(out, ShopItem{
			Accessory:  acc,
			State:      accessories.StateOf(&p, acc),
			Affordable: p.Stars >= acc.Price,
		})
	}
	return out, nil
}

// Purchase buys the named accessory.
func (a *App) Purchase(ctx context.Context, name string) (accessories.Accessory, error) {
	return a.shopOp(ctx, "buy", name, profile.EventPurchased, store.ActivityPurchase, accessories.Purchase)
}

// Equip puts the named accessory in the equip slot.
func (a *App) Equip(ctx context.Context, name string) (accessories.Accessory, error) {
	return a.shopOp(ctx, "equip", name, profile.EventEquipped, store.ActivityEquip, accessories.Equip)
}

// Unequip clears the named accessory from the equip slot.
func (a *App) Unequip(ctx context.Context, name string) (accessories.Accessory, error) {
	return a.shopOp(ctx, "unequip", name, profile.EventUnequipped, store.ActivityUnequip, accessories.Unequip)
}

func (a *App) shopOp(
	ctx context.Context,
	op, name string,
	kind profile.EventKind,
	activity store.ActivityKind,
	apply func(*profile.UserProfile, accessories.Accessory) error,
) (accessories.Accessory, error) {
	acc, ok := a.shop.Lookup(name)
	if !ok {
		return accessories.Accessory{}, fmt.Errorf("accessory %q: %w", name, ErrNotFound)
	}

	ev, err := a.store.Update(ctx, kind, func(p *profile.UserProfile) error {
		return apply(p, acc)
	})
	if err != nil {
		if errors.Is(err, accessories.ErrInvalidState) {
			a.metrics.Rejected(op)
		}
		return acc, fmt.Errorf("%s %s: %w", op, acc.Name, err)
	}

	act := store.Activity{
		ProfileID: ev.ProfileID,
		Kind:      activity,
		Subject:   acc.Name,
		Timestamp: ev.Timestamp,
	}
	if op == "buy" {
		act.Stars = -acc.Price
		a.metrics.Purchase(string(acc.Category))
	}
	a.appendActivity(ctx, act)
	return acc, nil
}
