package models

import (
	"testing"
)

func TestAllocateMenAtArmsFirst(t *testing.T) {
	tests := []struct {
		name    string
		k, m, d int
		want    Allocation
	}{
		{"knight before last two men", 1, 2, 5, Allocation{Knights: 0, MenAtArms: 0, Leftover: 0}},
		{"men only", 0, 5, 3, Allocation{Knights: 0, MenAtArms: 2, Leftover: 0}},
		{"many men spare knights", 2, 6, 4, Allocation{Knights: 2, MenAtArms: 2, Leftover: 0}},
		{"overflow into knights", 3, 1, 10, Allocation{Knights: 0, MenAtArms: 0, Leftover: 0}},
		{"leftover below knight", 2, 0, 5, Allocation{Knights: 1, MenAtArms: 0, Leftover: 2}},
		{"zero damage", 3, 3, 0, Allocation{Knights: 3, MenAtArms: 3, Leftover: 0}},
		{"empty army", 0, 0, 6, Allocation{Knights: 0, MenAtArms: 0, Leftover: 6}},
		{"small hit on low infantry", 1, 2, 2, Allocation{Knights: 1, MenAtArms: 0, Leftover: 0}},
		{"negative damage", 1, 1, -4, Allocation{Knights: 1, MenAtArms: 1, Leftover: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MenAtArmsFirst.Allocate(tt.k, tt.m, tt.d)
			if got != tt.want {
				t.Errorf("Allocate(%d, %d, %d) = %+v, want %+v", tt.k, tt.m, tt.d, got, tt.want)
			}
		})
	}
}

func TestAllocateKnightsFirst(t *testing.T) {
	tests := []struct {
		name    string
		k, m, d int
		want    Allocation
	}{
		{"two knights then a man", 2, 3, 7, Allocation{Knights: 0, MenAtArms: 2, Leftover: 0}},
		{"remainder to men", 1, 5, 4, Allocation{Knights: 0, MenAtArms: 4, Leftover: 0}},
		{"too little for a knight", 2, 2, 2, Allocation{Knights: 2, MenAtArms: 0, Leftover: 0}},
		{"knights only leftover", 1, 0, 5, Allocation{Knights: 0, MenAtArms: 0, Leftover: 2}},
		{"everything gone", 2, 2, 20, Allocation{Knights: 0, MenAtArms: 0, Leftover: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KnightsFirst.Allocate(tt.k, tt.m, tt.d)
			if got != tt.want {
				t.Errorf("Allocate(%d, %d, %d) = %+v, want %+v", tt.k, tt.m, tt.d, got, tt.want)
			}
		})
	}
}

func TestUnknownStrategyUsesMenAtArmsFirst(t *testing.T) {
	want := MenAtArmsFirst.Allocate(2, 4, 6)
	got := DamageStrategy(42).Allocate(2, 4, 6)
	if got != want {
		t.Errorf("unknown strategy = %+v, want %+v", got, want)
	}
}

// TestAllocateExhaustive checks conservation over the whole valid domain
func TestAllocateExhaustive(t *testing.T) {
	for _, s := range []DamageStrategy{MenAtArmsFirst, KnightsFirst} {
		for k := 0; k <= MaxKnights; k++ {
			for m := 0; m <= MaxMenAtArms; m++ {
				for d := 0; d <= 20; d++ {
					checkAllocation(t, s, k, m, d)
				}
			}
		}
	}
}

func FuzzAllocate(f *testing.F) {
	f.Add(1, 2, 5, false)
	f.Add(2, 3, 7, true)
	f.Add(8, 13, 12, false)
	f.Add(0, 0, 3, true)

	f.Fuzz(func(t *testing.T, k, m, d int, knightsFirst bool) {
		// Skip invalid inputs
		if k < 0 || m < 0 || d < 0 {
			return
		}
		// Cap at reasonable values
		if k > 1000 || m > 1000 || d > 10000 {
			return
		}

		s := MenAtArmsFirst
		if knightsFirst {
			s = KnightsFirst
		}
		checkAllocation(t, s, k, m, d)
	})
}

func checkAllocation(t *testing.T, s DamageStrategy, k, m, d int) {
	t.Helper()

	got := s.Allocate(k, m, d)

	// Invariant 1: damage is conserved
	if absorbed := got.Absorbed(k, m); absorbed+got.Leftover != d {
		t.Errorf("%s(%d, %d, %d): absorbed %d + leftover %d != %d", s, k, m, d, absorbed, got.Leftover, d)
	}

	// Invariant 2: counts never grow or go negative
	if got.Knights < 0 || got.Knights > k {
		t.Errorf("%s(%d, %d, %d): knights %d out of [0, %d]", s, k, m, d, got.Knights, k)
	}
	if got.MenAtArms < 0 || got.MenAtArms > m {
		t.Errorf("%s(%d, %d, %d): men %d out of [0, %d]", s, k, m, d, got.MenAtArms, m)
	}

	// Invariant 3: leftover is never negative
	if got.Leftover < 0 {
		t.Errorf("%s(%d, %d, %d): negative leftover %d", s, k, m, d, got.Leftover)
	}

	// Invariant 4: leftover only remains when nothing more can be removed
	if got.Leftover >= MenAtArmsStrength && got.MenAtArms > 0 {
		t.Errorf("%s(%d, %d, %d): leftover %d with %d men standing", s, k, m, d, got.Leftover, got.MenAtArms)
	}
	if got.Leftover >= KnightStrength && got.Knights > 0 {
		t.Errorf("%s(%d, %d, %d): leftover %d with %d knights standing", s, k, m, d, got.Leftover, got.Knights)
	}
}
