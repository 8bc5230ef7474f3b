package catalog

import (
	"math/rand/v2"
	"testing"
)

func TestBuildAssignsPositionalIDs(t *testing.T) {
	cat := Build()
	for axis, names := range labels {
		entries := cat.Entries(axis)
		if len(entries) != len(names) {
			t.Errorf("axis %s: got %d entries, want %d", axis, len(entries), len(names))
			continue
		}
		for i, e := range entries {
			if e.ID != i+1 {
				t.Errorf("axis %s entry %d: ID = %d, want %d", axis, i, e.ID, i+1)
			}
			if e.Label != names[i] {
				t.Errorf("axis %s entry %d: label = %q, want %q", axis, i, e.Label, names[i])
			}
		}
	}
}

func TestAxisSizes(t *testing.T) {
	cat := Build()
	tests := []struct {
		axis Axis
		want int
	}{
		{Gender, 3},
		{BloodGroup, 8},
		{MaritalStatus, 4},
		{VisitType, 4},
		{AdmissionType, 4},
		{DischargeStatus, 5},
		{Department, 14},
		{Specialization, 14},
		{BedType, 5},
		{TestName, 12},
		{Diagnosis, 30},
		{PaymentStatus, 4},
		{PaymentMethod, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.axis), func(t *testing.T) {
			if got := cat.Size(tt.axis); got != tt.want {
				t.Errorf("Size(%s) = %d, want %d", tt.axis, got, tt.want)
			}
		})
	}
}

func TestEntriesUnknownAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown axis")
		}
	}()
	Build().Entries(Axis("no_such_axis"))
}

func TestPickIsDeterministic(t *testing.T) {
	cat := Build()
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		ea := cat.Pick(Diagnosis, a)
		eb := cat.Pick(Diagnosis, b)
		if ea != eb {
			t.Fatalf("draw %d diverged: %v vs %v", i, ea, eb)
		}
	}
}

func TestPickDistinct(t *testing.T) {
	cat := Build()
	rng := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 50; i++ {
		pair := cat.PickDistinct(Diagnosis, 2, rng)
		if len(pair) != 2 {
			t.Fatalf("got %d entries, want 2", len(pair))
		}
		if pair[0].ID == pair[1].ID {
			t.Fatalf("iteration %d: entries not distinct: %v", i, pair)
		}
	}
}

func TestFind(t *testing.T) {
	cat := Build()

	e, ok := cat.Find(VisitType, "Inpatient")
	if !ok {
		t.Fatal("Inpatient not found in visit_type")
	}
	if e.ID != 2 {
		t.Errorf("Inpatient ID = %d, want 2", e.ID)
	}

	if _, ok := cat.Find(VisitType, "Teleconsultation"); ok {
		t.Error("unexpected match for absent label")
	}
}
