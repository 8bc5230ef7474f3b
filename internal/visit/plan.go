// Package visit plans the patient-to-visit distribution and
// synthesizes one flat output row per planned visit.
package visit

import (
	"fmt"
	"math/rand/v2"

	"github.com/mrsinham/hospitalforge/internal/pool"
)

// MaxVisitsPerPatient caps how many rows a single patient contributes.
const MaxVisitsPerPatient = 4

// Plan is the precomputed visit distribution: per-patient counts and a
// fully shuffled sequence of patient pool indices, one per output row.
type Plan struct {
	Counts   map[string]int
	Sequence []int
}

// PlanVisits assigns every patient between 1 and MaxVisitsPerPatient
// visits so that the counts sum to target exactly. Every patient gets
// floor(target/P) visits; the remainder is distributed by giving one
// extra visit to a randomly chosen subset of patients. Infeasible
// targets are rejected up front rather than silently breaking the
// per-patient cap.
func PlanVisits(patients []pool.Patient, target int, rng *rand.Rand) (*Plan, error) {
	p := len(patients)
	if p == 0 {
		return nil, fmt.Errorf("patient pool is empty")
	}
	if target < p {
		return nil, fmt.Errorf("target row count %d is smaller than patient pool size %d (every patient needs at least one visit)", target, p)
	}
	if target > MaxVisitsPerPatient*p {
		return nil, fmt.Errorf("target row count %d exceeds %d visits per patient cap for %d patients (max %d rows)", target, MaxVisitsPerPatient, p, MaxVisitsPerPatient*p)
	}

	base := target / p
	remainder := target % p

	counts := make([]int, p)
	for i := range counts {
		counts[i] = base
	}
	// base <= 3 whenever remainder > 0, so a single +1 never breaks
	// the cap.
	for _, idx := range rng.Perm(p)[:remainder] {
		counts[idx]++
	}

	sequence := make([]int, 0, target)
	byID := make(map[string]int, p)
	for i, c := range counts {
		byID[patients[i].ID] = c
		for v := 0; v < c; v++ {
			sequence = append(sequence, i)
		}
	}
	rng.Shuffle(len(sequence), func(i, j int) {
		sequence[i], sequence[j] = sequence[j], sequence[i]
	})

	return &Plan{Counts: byID, Sequence: sequence}, nil
}
