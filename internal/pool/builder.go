package pool

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/mrsinham/hospitalforge/internal/catalog"
)

// MedicineNames is the label material for medicine records.
var MedicineNames = []string{
	"Atorvastatin", "Levothyroxine", "Lisinopril", "Metformin", "Amlodipine",
	"Metoprolol", "Omeprazole", "Simvastatin", "Losartan", "Albuterol",
	"Gabapentin", "Hydrochlorothiazide", "Sertraline", "Furosemide", "Fluticasone",
	"Acetaminophen", "Prednisone", "Tramadol", "Amoxicillin", "Pantoprazole",
	"Citalopram", "Cetirizine", "Trazodone", "Clopidogrel", "Atenolol",
	"Azithromycin", "Ceftriaxone", "Vancomycin", "Fluconazole", "Metronidazole",
	"Ondansetron", "Propranolol", "Lorazepam", "Diazepam", "Ibuprofen",
}

// MedicineStrengths is the set of dose strengths printed on rows.
var MedicineStrengths = []string{"100mg", "250mg", "500mg", "10mg/ml", "20mg/ml", "5mg", "50mg"}

// MedicineManufacturers is the set of pharma manufacturers.
var MedicineManufacturers = []string{"Pfizer", "Roche", "Novartis", "Cipla", "Sun Pharma"}

// EquipmentManufacturers is the set of medical device manufacturers.
var EquipmentManufacturers = []string{
	"GE Healthcare", "Philips Medical", "Siemens Healthineers", "Medtronic", "Dräger",
}

// Fixed calendar anchors for entity-level dates. Generation must not
// read the wall clock: identical seed and configuration has to produce
// byte-identical output.
var (
	patientDOBStart   = time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC)
	patientDOBEnd     = time.Date(2007, 12, 31, 0, 0, 0, 0, time.UTC)
	purchaseStart     = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	purchaseEnd       = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	medicineExpiryMin = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	medicineExpiryMax = time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Sizes configures the member count of every pool.
type Sizes struct {
	Patients  int
	Doctors   int
	Staff     int
	Beds      int
	Equipment int
	Medicines int
	Hospitals int
}

// Validate rejects empty pools before generation begins.
func (s Sizes) Validate() error {
	checks := []struct {
		name  string
		count int
	}{
		{"patients", s.Patients},
		{"doctors", s.Doctors},
		{"staff", s.Staff},
		{"beds", s.Beds},
		{"equipment", s.Equipment},
		{"medicines", s.Medicines},
		{"hospitals", s.Hospitals},
	}
	for _, c := range checks {
		if c.count <= 0 {
			return fmt.Errorf("pool size for %s must be > 0, got %d", c.name, c.count)
		}
	}
	return nil
}

// Build constructs every entity pool. Attribute draws happen in a
// fixed order per entity so that a given seed always yields the same
// pools. Cannot fail once sizes have been validated.
func Build(cat *catalog.Catalog, sizes Sizes, rng *rand.Rand, faker *gofakeit.Faker) *Pools {
	return &Pools{
		Patients:  buildPatients(cat, sizes.Patients, rng, faker),
		Doctors:   buildDoctors(cat, sizes.Doctors, rng, faker),
		Staff:     NewStaffPool(buildStaff(cat, sizes.Staff, rng, faker)),
		Beds:      buildBeds(cat, sizes.Beds, rng),
		Equipment: buildEquipment(cat, sizes.Equipment, rng, faker),
		Medicines: buildMedicines(cat, sizes.Medicines, rng, faker),
		Hospitals: buildHospitals(cat, sizes.Hospitals, rng, faker),
	}
}

func buildPatients(cat *catalog.Catalog, count int, rng *rand.Rand, faker *gofakeit.Faker) []Patient {
	patients := make([]Patient, count)
	for i := range patients {
		patients[i] = Patient{
			ID:                FormatID(PatientPrefix, PatientIDWidth, i+1),
			FirstName:         faker.FirstName(),
			LastName:          faker.LastName(),
			Gender:            cat.Pick(catalog.Gender, rng),
			DateOfBirth:       faker.DateRange(patientDOBStart, patientDOBEnd),
			BloodGroup:        cat.Pick(catalog.BloodGroup, rng),
			MaritalStatus:     cat.Pick(catalog.MaritalStatus, rng),
			Address:           faker.Street(),
			City:              faker.City(),
			State:             faker.State(),
			ZipCode:           faker.Zip(),
			Phone:             faker.PhoneFormatted(),
			Email:             faker.Email(),
			InsuranceProvider: cat.Pick(catalog.InsuranceProvider, rng),
			InsuranceNumber:   fmt.Sprintf("INS%08d", rng.IntN(90000000)+10000000),
		}
	}
	return patients
}

func buildDoctors(cat *catalog.Catalog, count int, rng *rand.Rand, faker *gofakeit.Faker) []Doctor {
	doctors := make([]Doctor, count)
	for i := range doctors {
		doctors[i] = Doctor{
			ID:              FormatID(DoctorPrefix, EntityIDWidth, i+1),
			Name:            fmt.Sprintf("Dr. %s %s", faker.FirstName(), faker.LastName()),
			Gender:          cat.Pick(catalog.Gender, rng),
			Specialization:  cat.Pick(catalog.Specialization, rng),
			Qualification:   cat.Pick(catalog.Qualification, rng),
			ExperienceYears: rng.IntN(40) + 1,
			Shift:           cat.Pick(catalog.Shift, rng),
			EmploymentType:  cat.Pick(catalog.EmploymentType, rng),
			State:           faker.State(),
			City:            faker.City(),
			Phone:           faker.PhoneFormatted(),
			Email:           faker.Email(),
		}
	}
	return doctors
}

func buildStaff(cat *catalog.Catalog, count int, rng *rand.Rand, faker *gofakeit.Faker) []Staff {
	members := make([]Staff, count)
	for i := range members {
		members[i] = Staff{
			ID:             FormatID(StaffPrefix, EntityIDWidth, i+1),
			Name:           fmt.Sprintf("%s %s", faker.FirstName(), faker.LastName()),
			Gender:         cat.Pick(catalog.Gender, rng),
			Role:           cat.Pick(catalog.StaffRole, rng),
			Department:     cat.Pick(catalog.Department, rng),
			Shift:          cat.Pick(catalog.Shift, rng),
			EmploymentType: cat.Pick(catalog.EmploymentType, rng),
			State:          faker.State(),
			City:           faker.City(),
			Phone:          faker.PhoneFormatted(),
			Email:          faker.Email(),
		}
	}
	return members
}

func buildBeds(cat *catalog.Catalog, count int, rng *rand.Rand) []Bed {
	beds := make([]Bed, count)
	for i := range beds {
		beds[i] = Bed{
			ID:         FormatID(BedPrefix, EntityIDWidth, i+1),
			Type:       cat.Pick(catalog.BedType, rng),
			Status:     cat.Pick(catalog.BedStatus, rng),
			RoomType:   cat.Pick(catalog.RoomType, rng),
			WardNumber: rng.IntN(10) + 1,
			RoomNumber: rng.IntN(900) + 100,
		}
	}
	return beds
}

func buildEquipment(cat *catalog.Catalog, count int, rng *rand.Rand, faker *gofakeit.Faker) []Equipment {
	equipment := make([]Equipment, count)
	for i := range equipment {
		typ := cat.Pick(catalog.EquipmentType, rng)
		purchase := faker.DateRange(purchaseStart, purchaseEnd)
		equipment[i] = Equipment{
			ID:            FormatID(EquipmentPrefix, EntityIDWidth, i+1),
			Name:          fmt.Sprintf("%s Unit %d", typ.Label, rng.IntN(900)+100),
			Type:          typ,
			Manufacturer:  EquipmentManufacturers[rng.IntN(len(EquipmentManufacturers))],
			PurchaseDate:  purchase,
			WarrantyUntil: purchase.AddDate(rng.IntN(5)+1, 0, 0),
			Status:        cat.Pick(catalog.EquipmentStatus, rng),
		}
	}
	return equipment
}

func buildMedicines(cat *catalog.Catalog, count int, rng *rand.Rand, faker *gofakeit.Faker) []Medicine {
	medicines := make([]Medicine, count)
	for i := range medicines {
		medicines[i] = Medicine{
			ID:           FormatID(MedicinePrefix, EntityIDWidth, i+1),
			Name:         MedicineNames[rng.IntN(len(MedicineNames))],
			Category:     cat.Pick(catalog.MedicineCategory, rng),
			DosageForm:   cat.Pick(catalog.DosageForm, rng),
			Manufacturer: MedicineManufacturers[rng.IntN(len(MedicineManufacturers))],
			Strength:     MedicineStrengths[rng.IntN(len(MedicineStrengths))],
			UnitPrice:    faker.Price(5, 500),
			ExpiryDate:   faker.DateRange(medicineExpiryMin, medicineExpiryMax),
		}
	}
	return medicines
}

func buildHospitals(cat *catalog.Catalog, count int, rng *rand.Rand, faker *gofakeit.Faker) []Hospital {
	hospitals := make([]Hospital, count)
	for i := range hospitals {
		hospitals[i] = Hospital{
			ID:              FormatID(HospitalPrefix, EntityIDWidth, i+1),
			Name:            fmt.Sprintf("%s Hospital", faker.Company()),
			Type:            cat.Pick(catalog.HospitalType, rng),
			Ownership:       cat.Pick(catalog.Ownership, rng),
			Accreditation:   cat.Pick(catalog.Accreditation, rng),
			BedCapacity:     rng.IntN(950) + 50,
			EstablishedYear: rng.IntN(75) + 1950,
			State:           faker.State(),
			City:            faker.City(),
			Phone:           faker.PhoneFormatted(),
		}
	}
	return hospitals
}
