package entity

import (
	"fmt"
	"strings"
	"time"
)

// WeaponType enumerates the weapon families
type WeaponType uint8

const (
	WeaponNone WeaponType = iota // unset
	WeaponPistol
	WeaponRifle
	WeaponSniper
	WeaponShotgun
)

func (w WeaponType) String() string {
	switch w {
	case WeaponNone:
		return "none"
	case WeaponPistol:
		return "pistol"
	case WeaponRifle:
		return "rifle"
	case WeaponSniper:
		return "sniper"
	case WeaponShotgun:
		return "shotgun"
	default:
		return "unknown"
	}
}

// ParseWeaponType maps a case-insensitive name to its WeaponType
func ParseWeaponType(s string) (WeaponType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pistol":
		return WeaponPistol, nil
	case "rifle":
		return WeaponRifle, nil
	case "sniper":
		return WeaponSniper, nil
	case "shotgun":
		return WeaponShotgun, nil
	default:
		return WeaponNone, fmt.Errorf("%w: unknown weapon type %q", ErrInvalidEntity, s)
	}
}

// Weapon is immutable once equipped
// FireRate, Range, Accuracy and ReloadTime are informational and not enforced
type Weapon struct {
	Type       WeaponType
	Name       string
	Damage     int
	Capacity   int
	FireRate   float64
	Range      float64
	Accuracy   float64
	ReloadTime time.Duration
}

// IsSet reports whether the weapon slot holds a weapon
func (w Weapon) IsSet() bool {
	return w.Type != WeaponNone
}

// NewWeapon validates and returns a weapon value
func NewWeapon(w Weapon) (Weapon, error) {
	if w.Type == WeaponNone || w.Type > WeaponShotgun {
		return Weapon{}, fmt.Errorf("%w: weapon type %d", ErrInvalidEntity, w.Type)
	}
	if w.Damage <= 0 {
		return Weapon{}, fmt.Errorf("%w: %s damage %d", ErrInvalidEntity, w.Type, w.Damage)
	}
	if w.Capacity <= 0 {
		return Weapon{}, fmt.Errorf("%w: %s capacity %d", ErrInvalidEntity, w.Type, w.Capacity)
	}
	if w.Name == "" {
		w.Name = w.Type.String()
	}
	return w, nil
}
