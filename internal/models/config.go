package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates an army is outside its declared domain
var ErrInvalidConfiguration = errors.New("invalid army configuration")

// ArmyConfig is the externally supplied description of an army.
// Names are parsed with ParseStructure and ParseLeader.
type ArmyConfig struct {
	MenAtArms int    `json:"men_at_arms" mapstructure:"menAtArms"`
	Knights   int    `json:"knights" mapstructure:"knights"`
	Structure string `json:"structure" mapstructure:"structure"`
	Leader    string `json:"leader" mapstructure:"leader"`
}

// ToArmy converts the configuration into a validated Army
func (c ArmyConfig) ToArmy() (Army, error) {
	structure, err := ParseStructure(c.Structure)
	if err != nil {
		return Army{}, err
	}
	leader, err := ParseLeader(c.Leader)
	if err != nil {
		return Army{}, err
	}

	army := NewArmy(c.MenAtArms, c.Knights, structure, leader)
	if err := army.Validate(); err != nil {
		return Army{}, err
	}
	return army, nil
}

// ConfigFromArmy returns the configuration describing an army
func ConfigFromArmy(a Army) ArmyConfig {
	return ArmyConfig{
		MenAtArms: a.MenAtArms,
		Knights:   a.Knights,
		Structure: a.Structure.String(),
		Leader:    a.Leader.String(),
	}
}

// Validate checks that counts and enums are within their domains
func (a *Army) Validate() error {
	if a.MenAtArms < 0 || a.MenAtArms > MaxMenAtArms {
		return fmt.Errorf("%w: men-at-arms %d not in [0, %d]", ErrInvalidConfiguration, a.MenAtArms, MaxMenAtArms)
	}
	if a.Knights < 0 || a.Knights > MaxKnights {
		return fmt.Errorf("%w: knights %d not in [0, %d]", ErrInvalidConfiguration, a.Knights, MaxKnights)
	}
	if !a.Structure.Valid() {
		return fmt.Errorf("%w: unknown structure %d", ErrInvalidConfiguration, int(a.Structure))
	}
	if !a.Leader.Valid() {
		return fmt.Errorf("%w: unknown leader %d", ErrInvalidConfiguration, int(a.Leader))
	}
	return nil
}

// DefaultAttacker returns the default configuration for army A
func DefaultAttacker() Army {
	return NewArmy(5, 3, NoStructure, NoneOrLady)
}

// DefaultDefender returns the default configuration for army B
func DefaultDefender() Army {
	return NewArmy(4, 2, Stronghold, NoneOrLady)
}
