package accessories

import (
	"errors"
	"fmt"

	"github.com/abhisek/starquest/internal/profile"
)

// ErrInvalidState classifies every economy rejection. On any of these
// errors the profile is unchanged.
var ErrInvalidState = errors.New("invalid accessory state")

var (
	ErrAlreadyOwned      = fmt.Errorf("%w: already owned", ErrInvalidState)
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient stars", ErrInvalidState)
	ErrNotOwned          = fmt.Errorf("%w: not owned", ErrInvalidState)
	ErrAlreadyEquipped   = fmt.Errorf("%w: already equipped", ErrInvalidState)
	ErrNotEquipped       = fmt.Errorf("%w: not equipped", ErrInvalidState)
)

// State is the lifecycle position of one accessory for one profile.
type State int

const (
	StateNotOwned State = iota
	StateOwned
	StateEquipped
)

// String returns the state label.
func (s State) String() string {
	switch s {
	case StateOwned:
		return "owned"
	case StateEquipped:
		return "equipped"
	default:
		return "not owned"
	}
}

// StateOf reports where a sits in its lifecycle for p.
func StateOf(p *profile.UserProfile, a Accessory) State {
	switch {
	case p.EquippedAccessories.Has(a.Name):
		return StateEquipped
	case p.Inventory.Has(a.Name):
		return StateOwned
	default:
		return StateNotOwned
	}
}

// Purchase deducts the price and adds a to the inventory. All checks run
// before any mutation.
func Purchase(p *profile.UserProfile, a Accessory) error {
	if p.Inventory.Has(a.Name) {
		return ErrAlreadyOwned
	}
	if p.Stars < a.Price {
		return ErrInsufficientFunds
	}
	p.Stars -= a.Price
	p.Inventory.Add(a.Name)
	return nil
}

// Equip makes a the only equipped accessory.
func Equip(p *profile.UserProfile, a Accessory) error {
	if !p.Inventory.Has(a.Name) {
		return ErrNotOwned
	}
	if p.EquippedAccessories.Has(a.Name) {
		return ErrAlreadyEquipped
	}
	p.EquippedAccessories = profile.IDSet{a.Name}
	return nil
}

// Unequip clears a from the equip slot.
func Unequip(p *profile.UserProfile, a Accessory) error {
	if !p.EquippedAccessories.Remove(a.Name) {
		return ErrNotEquipped
	}
	return nil
}
