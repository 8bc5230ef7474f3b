package pool

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/mrsinham/hospitalforge/internal/catalog"
)

func TestResolveOverlapLinkCount(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		doctors  int
		want     int
	}{
		{"zero fraction", 0, 20, 0},
		{"fifth of pool", 0.2, 20, 4},
		{"rounds to nearest", 0.33, 20, 7}, // round(6.6)
		{"all doctors", 1.0, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pools := buildTestPools(t, 9)
			doctors := pools.Doctors[:tt.doctors]
			rng := rand.New(rand.NewPCG(9, 9))
			links := ResolveOverlap(catalog.Build(), doctors, pools.Staff, tt.fraction, rng)
			if got := links.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
			if want := int(math.Round(tt.fraction * float64(tt.doctors))); want != tt.want {
				t.Fatalf("test fixture inconsistent: computed %d, table says %d", want, tt.want)
			}
		})
	}
}

func TestResolveOverlapMergedRecord(t *testing.T) {
	pools := buildTestPools(t, 11)
	cat := catalog.Build()
	rng := rand.New(rand.NewPCG(11, 11))
	links := ResolveOverlap(cat, pools.Doctors, pools.Staff, 1.0, rng)

	for _, doc := range pools.Doctors {
		staff, ok := links.StaffFor(doc.ID)
		if !ok {
			t.Fatalf("doctor %s has no staff identity after full overlap", doc.ID)
		}

		wantID, _ := DeriveStaffID(doc.ID)
		if staff.ID != wantID {
			t.Errorf("doctor %s: staff ID = %q, want %q", doc.ID, staff.ID, wantID)
		}
		if want := strings.TrimPrefix(doc.Name, "Dr. "); staff.Name != want {
			t.Errorf("doctor %s: staff name = %q, want %q", doc.ID, staff.Name, want)
		}
		if staff.Gender != doc.Gender {
			t.Errorf("doctor %s: gender not copied", doc.ID)
		}
		if staff.Shift != doc.Shift || staff.EmploymentType != doc.EmploymentType {
			t.Errorf("doctor %s: shift/employment not copied", doc.ID)
		}
		if staff.Phone != doc.Phone || staff.Email != doc.Email {
			t.Errorf("doctor %s: contact not copied", doc.ID)
		}
		if staff.Role.ID == 0 || staff.Department.ID == 0 {
			t.Errorf("doctor %s: role/department not assigned", doc.ID)
		}
	}
}

func TestResolveOverlapKeepsPoolSizeWhenIDsCollide(t *testing.T) {
	// Staff pool is larger than the doctor pool, so every derived
	// STF id already exists and the merge overwrites in place.
	pools := buildTestPools(t, 13)
	before := pools.Staff.Len()
	rng := rand.New(rand.NewPCG(13, 13))
	ResolveOverlap(catalog.Build(), pools.Doctors, pools.Staff, 1.0, rng)
	if after := pools.Staff.Len(); after != before {
		t.Fatalf("pool size changed %d -> %d; overwrites must be in place", before, after)
	}
}

func TestStaffForFallsBackToDerivedID(t *testing.T) {
	pools := buildTestPools(t, 17)
	rng := rand.New(rand.NewPCG(17, 17))
	links := ResolveOverlap(catalog.Build(), pools.Doctors, pools.Staff, 0, rng)

	// No deliberate links, but DOC000001 derives to STF000001 which
	// exists in the pool: the coincidental collision still resolves.
	staff, ok := links.StaffFor("DOC000001")
	if !ok {
		t.Fatal("coincidental collision did not resolve")
	}
	if staff.ID != "STF000001" {
		t.Fatalf("resolved to %q, want STF000001", staff.ID)
	}

	// A doctor whose derived ID is past the staff pool does not
	// resolve.
	if _, ok := links.StaffFor(FormatID(DoctorPrefix, EntityIDWidth, pools.Staff.Len()+1)); ok {
		t.Fatal("resolved a staff identity past the pool end")
	}

	// Malformed identifiers never resolve.
	if _, ok := links.StaffFor("DOC01"); ok {
		t.Fatal("resolved a narrow identifier")
	}
}

func TestResolveOverlapIsDeterministic(t *testing.T) {
	run := func() map[string]string {
		pools := buildTestPools(t, 23)
		rng := rand.New(rand.NewPCG(23, 23))
		links := ResolveOverlap(catalog.Build(), pools.Doctors, pools.Staff, 0.4, rng)
		out := make(map[string]string)
		for _, doc := range pools.Doctors {
			if staff, ok := links.StaffFor(doc.ID); ok {
				out[doc.ID] = staff.ID + "/" + staff.Name
			}
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("link counts diverged: %d vs %d", len(a), len(b))
	}
	for id, va := range a {
		if vb, ok := b[id]; !ok || vb != va {
			t.Fatalf("doctor %s diverged: %q vs %q", id, va, b[id])
		}
	}
}
