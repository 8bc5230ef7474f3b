package visit

import "math/rand/v2"

// bedRates maps a bed-type label to its per-day charge.
var bedRates = map[string]int{
	"ICU":          5000,
	"General":      2000,
	"Private":      4000,
	"Semi-Private": 3000,
	"Pediatric":    2500,
}

// defaultBedRate applies to bed types missing from the rate table.
const defaultBedRate = 2000

// testChargeProbability is the chance a visit includes billed tests.
const testChargeProbability = 0.55

// BedRate returns the daily charge for a bed-type label.
func BedRate(bedType string) int {
	if rate, ok := bedRates[bedType]; ok {
		return rate
	}
	return defaultBedRate
}

// Billing holds the computed charges for one visit row. All amounts
// are whole currency units; Total is always the exact sum of the four
// charge components.
type Billing struct {
	BaseVisitFee   int
	TestCharge     int
	BedCharge      int
	MedicineCharge int
	Total          int
	Paid           int
}

// computeBilling draws the charge components in a fixed order and
// derives the paid amount from the payment status label.
func computeBilling(rng *rand.Rand, admitted bool, stayDays int, bedType string, paymentStatus string) Billing {
	b := Billing{
		BaseVisitFee: rng.IntN(1801) + 200, // [200,2000]
	}
	if rng.Float64() < testChargeProbability {
		b.TestCharge = rng.IntN(6001) // [0,6000]
	}
	if admitted {
		b.BedCharge = stayDays * BedRate(bedType)
	}
	b.MedicineCharge = rng.IntN(1951) + 50 // [50,2000]
	b.Total = b.BaseVisitFee + b.TestCharge + b.BedCharge + b.MedicineCharge

	switch paymentStatus {
	case "Paid":
		b.Paid = b.Total
	case "Pending":
		b.Paid = rng.IntN(b.Total/2 + 1) // [0, 0.5*total]
	case "Partially Paid":
		lo := (b.Total * 4) / 10
		hi := (b.Total * 9) / 10
		b.Paid = lo + rng.IntN(hi-lo+1) // [0.4*total, 0.9*total]
	default: // Rejected or anything unexpected
		b.Paid = 0
	}
	return b
}
