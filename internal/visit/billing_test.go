package visit

import (
	"math/rand/v2"
	"testing"
)

func TestBedRate(t *testing.T) {
	tests := []struct {
		bedType string
		want    int
	}{
		{"ICU", 5000},
		{"General", 2000},
		{"Private", 4000},
		{"Semi-Private", 3000},
		{"Pediatric", 2500},
		{"Cryogenic", 2000}, // unknown types fall back to the default
	}
	for _, tt := range tests {
		if got := BedRate(tt.bedType); got != tt.want {
			t.Errorf("BedRate(%q) = %d, want %d", tt.bedType, got, tt.want)
		}
	}
}

func TestComputeBillingTotalIsComponentSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < 500; i++ {
		b := computeBilling(rng, i%2 == 0, 3, "ICU", "Paid")
		if sum := b.BaseVisitFee + b.TestCharge + b.BedCharge + b.MedicineCharge; b.Total != sum {
			t.Fatalf("iteration %d: total %d != component sum %d", i, b.Total, sum)
		}
		if b.BaseVisitFee < 200 || b.BaseVisitFee > 2000 {
			t.Fatalf("iteration %d: base fee %d out of [200,2000]", i, b.BaseVisitFee)
		}
		if b.TestCharge < 0 || b.TestCharge > 6000 {
			t.Fatalf("iteration %d: test charge %d out of [0,6000]", i, b.TestCharge)
		}
		if b.MedicineCharge < 50 || b.MedicineCharge > 2000 {
			t.Fatalf("iteration %d: medicine charge %d out of [50,2000]", i, b.MedicineCharge)
		}
	}
}

func TestComputeBillingBedCharge(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))

	b := computeBilling(rng, true, 4, "ICU", "Paid")
	if b.BedCharge != 4*5000 {
		t.Errorf("admitted ICU 4 days: bed charge %d, want %d", b.BedCharge, 4*5000)
	}

	b = computeBilling(rng, false, 1, "ICU", "Paid")
	if b.BedCharge != 0 {
		t.Errorf("outpatient row: bed charge %d, want 0", b.BedCharge)
	}
}

func TestComputeBillingPaidByStatus(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < 500; i++ {
		for _, status := range []string{"Paid", "Pending", "Partially Paid", "Rejected"} {
			b := computeBilling(rng, true, 2, "General", status)
			switch status {
			case "Paid":
				if b.Paid != b.Total {
					t.Fatalf("Paid: paid %d != total %d", b.Paid, b.Total)
				}
			case "Pending":
				if b.Paid < 0 || b.Paid > b.Total/2 {
					t.Fatalf("Pending: paid %d out of [0,%d]", b.Paid, b.Total/2)
				}
			case "Partially Paid":
				lo, hi := (b.Total*4)/10, (b.Total*9)/10
				if b.Paid < lo || b.Paid > hi {
					t.Fatalf("Partially Paid: paid %d out of [%d,%d]", b.Paid, lo, hi)
				}
			case "Rejected":
				if b.Paid != 0 {
					t.Fatalf("Rejected: paid %d, want 0", b.Paid)
				}
			}
		}
	}
}
