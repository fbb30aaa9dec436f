package models

// Army represents one side's fighting force at a point in time
type Army struct {
	MenAtArms int
	Knights   int
	Structure Structure
	Leader    Leader
}

// Bit widths used by Key
const (
	keyBitsMenAtArms = 4 // holds 0..13
	keyBitsKnights   = 4 // holds 0..8
	keyBitsStructure = 2
	keyBitsLeader    = 2

	// KeyBits is the number of bits an army key occupies
	KeyBits = keyBitsMenAtArms + keyBitsKnights + keyBitsStructure + keyBitsLeader
)

// NewArmy creates an army with the given composition
func NewArmy(menAtArms, knights int, structure Structure, leader Leader) Army {
	return Army{
		MenAtArms: menAtArms,
		Knights:   knights,
		Structure: structure,
		Leader:    leader,
	}
}

// ArmyPoints returns raw combat strength
func (a *Army) ArmyPoints() int {
	return a.Knights*KnightStrength + a.MenAtArms*MenAtArmsStrength
}

// StrengthPoints returns army points plus the leader bonus
func (a *Army) StrengthPoints() int {
	if a.Leader.HasStrengthBonus() {
		return a.ArmyPoints() + 1
	}
	return a.ArmyPoints()
}

// Dice returns how many dice the army rolls given the penalty imposed
// by the opposing army's structure (floors at 0)
func (a *Army) Dice(penalty int) int {
	if a.ArmyPoints() == 0 {
		return 0
	}

	d := diceForStrength(a.StrengthPoints())
	d += penalty
	if a.Leader == DArc {
		d++
	}
	if d < 0 {
		d = 0
	}
	return d
}

// diceForStrength maps strength points to the base dice band
func diceForStrength(s int) int {
	switch {
	case s <= 0:
		return 0
	case s <= 6:
		return 1
	case s <= 12:
		return 2
	default:
		return 3
	}
}

// AttackerPenalty returns the dice modifier this army's structure imposes
// on whoever fights against it
func (a *Army) AttackerPenalty() int {
	switch a.Structure {
	case FortifiedCity:
		return -2
	case Stronghold:
		return -1
	}
	return 0
}

// ApplyDamage removes units according to the strategy and returns the
// leftover damage that no unit absorbed
func (a *Army) ApplyDamage(damage int, strategy DamageStrategy) int {
	alloc := strategy.Allocate(a.Knights, a.MenAtArms, damage)
	a.Knights = alloc.Knights
	a.MenAtArms = alloc.MenAtArms
	return alloc.Leftover
}

// TotalUnits returns the number of units still standing
func (a *Army) TotalUnits() int {
	return a.Knights + a.MenAtArms
}

// IsDefeated returns true if the army has no units left
func (a *Army) IsDefeated() bool {
	return a.TotalUnits() <= 0
}

// Clone returns a copy of the army
func (a *Army) Clone() Army {
	return Army{
		MenAtArms: a.MenAtArms,
		Knights:   a.Knights,
		Structure: a.Structure,
		Leader:    a.Leader,
	}
}

// Key packs the army state into a compact integer.
// The army must be valid; out-of-range counts collide.
func (a *Army) Key() uint32 {
	var k uint32
	offset := 0

	k |= uint32(a.MenAtArms) << offset
	offset += keyBitsMenAtArms

	k |= uint32(a.Knights) << offset
	offset += keyBitsKnights

	k |= uint32(a.Structure) << offset
	offset += keyBitsStructure

	k |= uint32(a.Leader) << offset

	return k
}
