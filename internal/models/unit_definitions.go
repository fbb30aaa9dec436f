package models

// UnitType identifies a troop type
type UnitType string

const (
	ManAtArms UnitType = "men_at_arms"
	Knight    UnitType = "knight"
)

// UnitDefinition contains static unit data
type UnitDefinition struct {
	Type     UnitType
	Name     string
	Strength int // army points and damage needed to remove one unit
	MaxCount int // most units of this type an army may field
}

const (
	MaxMenAtArms      = 13
	MaxKnights        = 8
	MenAtArmsStrength = 1
	KnightStrength    = 3
)

// AllUnitDefinitions returns definitions for all troop types
func AllUnitDefinitions() []*UnitDefinition {
	return []*UnitDefinition{
		{
			Type:     ManAtArms,
			Name:     "Men-at-arms",
			Strength: MenAtArmsStrength,
			MaxCount: MaxMenAtArms,
		},
		{
			Type:     Knight,
			Name:     "Knights",
			Strength: KnightStrength,
			MaxCount: MaxKnights,
		},
	}
}

// GetUnitDefinition returns the definition for a unit type
func GetUnitDefinition(ut UnitType) *UnitDefinition {
	for _, def := range AllUnitDefinitions() {
		if def.Type == ut {
			return def
		}
	}
	return nil
}
