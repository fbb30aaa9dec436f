package models

import (
	"fmt"
	"strings"
)

// Structure represents the defensive fortification an army stands behind
type Structure int

const (
	NoStructure Structure = iota
	Stronghold
	FortifiedCity
)

// AllStructures returns all structures in deterministic order
func AllStructures() []Structure {
	return []Structure{NoStructure, Stronghold, FortifiedCity}
}

func (s Structure) String() string {
	switch s {
	case NoStructure:
		return "none"
	case Stronghold:
		return "stronghold"
	case FortifiedCity:
		return "fortified_city"
	default:
		return fmt.Sprintf("structure(%d)", int(s))
	}
}

// Valid reports whether s is a known structure
func (s Structure) Valid() bool {
	return s >= NoStructure && s <= FortifiedCity
}

// ParseStructure parses a structure name (case-insensitive)
func ParseStructure(name string) (Structure, error) {
	switch normalizeName(name) {
	case "", "none":
		return NoStructure, nil
	case "stronghold":
		return Stronghold, nil
	case "fortified_city", "fortifiedcity", "city":
		return FortifiedCity, nil
	}
	return NoStructure, fmt.Errorf("%w: unknown structure %q", ErrInvalidConfiguration, name)
}

// Leader represents who commands the army
type Leader int

const (
	NoneOrLady Leader = iota
	LordOrTitledLady
	DArc
)

// AllLeaders returns all leaders in deterministic order
func AllLeaders() []Leader {
	return []Leader{NoneOrLady, LordOrTitledLady, DArc}
}

func (l Leader) String() string {
	switch l {
	case NoneOrLady:
		return "none_or_lady"
	case LordOrTitledLady:
		return "lord_or_titled_lady"
	case DArc:
		return "darc"
	default:
		return fmt.Sprintf("leader(%d)", int(l))
	}
}

// Valid reports whether l is a known leader
func (l Leader) Valid() bool {
	return l >= NoneOrLady && l <= DArc
}

// HasStrengthBonus reports whether the leader adds a strength point
func (l Leader) HasStrengthBonus() bool {
	return l == LordOrTitledLady || l == DArc
}

// ParseLeader parses a leader name (case-insensitive)
func ParseLeader(name string) (Leader, error) {
	switch normalizeName(name) {
	case "", "none", "lady", "none_or_lady":
		return NoneOrLady, nil
	case "lord", "titled_lady", "lord_or_titled_lady":
		return LordOrTitledLady, nil
	case "darc", "d_arc":
		return DArc, nil
	}
	return NoneOrLady, fmt.Errorf("%w: unknown leader %q", ErrInvalidConfiguration, name)
}

// DamageStrategy decides which troops absorb incoming damage first
type DamageStrategy int

const (
	MenAtArmsFirst DamageStrategy = iota
	KnightsFirst
)

func (s DamageStrategy) String() string {
	switch s {
	case MenAtArmsFirst:
		return "men_at_arms_first"
	case KnightsFirst:
		return "knights_first"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseDamageStrategy parses a strategy name (case-insensitive)
func ParseDamageStrategy(name string) (DamageStrategy, error) {
	switch normalizeName(name) {
	case "", "men_at_arms_first", "maa_first", "men_at_arms":
		return MenAtArmsFirst, nil
	case "knights_first", "knights":
		return KnightsFirst, nil
	}
	return MenAtArmsFirst, fmt.Errorf("%w: unknown damage strategy %q", ErrInvalidConfiguration, name)
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "'", "_")
	return n
}
