package models

// Allocation is the outcome of spreading damage over a force
type Allocation struct {
	Knights   int
	MenAtArms int
	Leftover  int // damage no unit could absorb
}

// Absorbed returns the damage the allocation spent removing units
// from a force that started with the given counts
func (a Allocation) Absorbed(knights, menAtArms int) int {
	return (knights-a.Knights)*KnightStrength + (menAtArms - a.MenAtArms)
}

// Allocate spreads damage over knights and men-at-arms using the strategy.
// It is a pure function: callers decide whether to commit the result.
func (s DamageStrategy) Allocate(knights, menAtArms, damage int) Allocation {
	if damage < 0 {
		damage = 0
	}
	if knights < 0 {
		knights = 0
	}
	if menAtArms < 0 {
		menAtArms = 0
	}

	switch s {
	case KnightsFirst:
		return allocateKnightsFirst(knights, menAtArms, damage)
	default:
		return allocateMenAtArmsFirst(knights, menAtArms, damage)
	}
}

// allocateMenAtArmsFirst removes men-at-arms one point at a time, switching to
// knights while infantry is down to two or fewer and a full knight's worth of
// damage remains
func allocateMenAtArmsFirst(k, m, d int) Allocation {
	for d >= MenAtArmsStrength && m > 0 {
		if d >= KnightStrength && m <= 2 && k > 0 {
			k--
			d -= KnightStrength
			continue
		}
		m--
		d -= MenAtArmsStrength
	}
	for d >= KnightStrength && k > 0 {
		k--
		d -= KnightStrength
	}
	return Allocation{Knights: k, MenAtArms: m, Leftover: d}
}

// allocateKnightsFirst removes knights while damage allows, then men-at-arms
func allocateKnightsFirst(k, m, d int) Allocation {
	for d >= KnightStrength && k > 0 {
		k--
		d -= KnightStrength
	}
	for d >= MenAtArmsStrength && m > 0 {
		m--
		d -= MenAtArmsStrength
	}
	return Allocation{Knights: k, MenAtArms: m, Leftover: d}
}
