package pool

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/mrsinham/hospitalforge/internal/catalog"
)

// OverlapLinks records which doctors share an identity with a staff
// member. The resolver builds the link table once; row synthesis only
// performs lookups against it (plus the prefix-substitution fallback
// for coincidental identifier collisions).
type OverlapLinks struct {
	links map[string]string // doctor ID -> staff ID
	staff *StaffPool
}

// ResolveOverlap selects round(fraction x |doctors|) doctors uniformly
// without replacement and inserts a merged staff record for each into
// the staff pool, overwriting any pre-existing entry at the derived
// identifier. The merged record keeps the doctor's personal attributes
// (name, gender, shift, employment type, state, city, phone, email)
// and re-randomizes role and department.
//
// Mutates the staff pool in place. Must run exactly once, before any
// row synthesis.
func ResolveOverlap(cat *catalog.Catalog, doctors []Doctor, staff *StaffPool, fraction float64, rng *rand.Rand) *OverlapLinks {
	result := &OverlapLinks{
		links: make(map[string]string),
		staff: staff,
	}

	n := int(math.Round(fraction * float64(len(doctors))))
	if n > len(doctors) {
		n = len(doctors)
	}
	if n <= 0 {
		return result
	}

	perm := rng.Perm(len(doctors))
	for _, idx := range perm[:n] {
		doc := doctors[idx]
		staffID, ok := DeriveStaffID(doc.ID)
		if !ok {
			continue
		}
		staff.put(Staff{
			ID:             staffID,
			Name:           strings.TrimPrefix(doc.Name, "Dr. "),
			Gender:         doc.Gender,
			Role:           cat.Pick(catalog.StaffRole, rng),
			Department:     cat.Pick(catalog.Department, rng),
			Shift:          doc.Shift,
			EmploymentType: doc.EmploymentType,
			State:          doc.State,
			City:           doc.City,
			Phone:          doc.Phone,
			Email:          doc.Email,
		})
		result.links[doc.ID] = staffID
	}
	return result
}

// StaffFor resolves the staff identity shared with the given doctor.
// The explicit link table is checked first; identifiers outside the
// table still resolve when the derived staff ID happens to exist in
// the pool, so a coincidental collision counts as "also staff" exactly
// like a deliberate overlap.
func (l *OverlapLinks) StaffFor(doctorID string) (Staff, bool) {
	if staffID, ok := l.links[doctorID]; ok {
		return l.staff.Get(staffID)
	}
	staffID, ok := DeriveStaffID(doctorID)
	if !ok {
		return Staff{}, false
	}
	return l.staff.Get(staffID)
}

// Len returns the number of deliberate overlap links.
func (l *OverlapLinks) Len() int {
	return len(l.links)
}
