// Package catalog builds the immutable dimension tables that every
// generated entity and visit row references. Each axis is an ordered
// list of (ID, label) pairs where the ID is the 1-based position of the
// label within its axis; IDs are unique per axis, not globally.
package catalog

import (
	"fmt"
	"math/rand/v2"
)

// Axis names a single categorical dimension.
type Axis string

const (
	Gender            Axis = "gender"
	BloodGroup        Axis = "blood_group"
	MaritalStatus     Axis = "marital_status"
	InsuranceProvider Axis = "insurance_provider"
	VisitType         Axis = "visit_type"
	AdmissionType     Axis = "admission_type"
	DischargeStatus   Axis = "discharge_status"
	Department        Axis = "department"
	Specialization    Axis = "specialization"
	Qualification     Axis = "qualification"
	Shift             Axis = "shift"
	EmploymentType    Axis = "employment_type"
	StaffRole         Axis = "staff_role"
	BedType           Axis = "bed_type"
	BedStatus         Axis = "bed_status"
	RoomType          Axis = "room_type"
	EquipmentType     Axis = "equipment_type"
	EquipmentStatus   Axis = "equipment_status"
	MedicineCategory  Axis = "medicine_category"
	DosageForm        Axis = "dosage_form"
	TestName          Axis = "test_name"
	Diagnosis         Axis = "diagnosis"
	HospitalType      Axis = "hospital_type"
	Ownership         Axis = "ownership"
	Accreditation     Axis = "accreditation"
	PaymentStatus     Axis = "payment_status"
	PaymentMethod     Axis = "payment_method"
)

// Entry is a single dimension value.
type Entry struct {
	ID    int
	Label string
}

// Catalog maps each axis to its ordered entries. Built once at startup
// and read-only for the rest of the run.
type Catalog struct {
	axes map[Axis][]Entry
}

// labels holds the raw label lists, in catalog order. ID assignment is
// purely positional (1-based), so reordering a list changes the IDs in
// every generated dataset.
var labels = map[Axis][]string{
	Gender:            {"Male", "Female", "Other"},
	BloodGroup:        {"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
	MaritalStatus:     {"Single", "Married", "Divorced", "Widowed"},
	InsuranceProvider: {"MediCare Plus", "HealthFirst", "UnitedCare", "Aetna Shield", "BlueCross", "Cigna Secure", "None"},
	VisitType:         {"Outpatient", "Inpatient", "Emergency", "Follow-up"},
	AdmissionType:     {"Elective", "Emergency", "Transfer", "Observation"},
	DischargeStatus:   {"Recovered", "Referred", "Discharged Against Medical Advice", "Under Observation", "Deceased"},
	Department: {
		"Cardiology", "Neurology", "Orthopedics", "Pediatrics", "Oncology",
		"General Medicine", "Gynecology", "Dermatology", "ENT", "Urology",
		"Gastroenterology", "Psychiatry", "Radiology", "Emergency",
	},
	Specialization: {
		"Cardiologist", "Neurologist", "Orthopedic Surgeon", "Pediatrician",
		"Oncologist", "General Physician", "Gynecologist", "Dermatologist",
		"ENT Specialist", "Urologist", "Gastroenterologist", "Psychiatrist",
		"Radiologist", "Anesthesiologist",
	},
	Qualification:  {"MBBS", "MBBS, MD", "MBBS, MS", "MBBS, DNB", "MBBS, MD, DM", "MBBS, MS, MCh"},
	Shift:          {"Morning", "Evening", "Night", "Rotating"},
	EmploymentType: {"Full-time", "Part-time", "Contract", "Visiting"},
	StaffRole: {
		"Nurse", "Head Nurse", "Lab Technician", "Pharmacist", "Radiographer",
		"Physiotherapist", "Ward Assistant", "Receptionist", "Billing Clerk", "Paramedic",
	},
	BedType:   {"General", "ICU", "Private", "Semi-Private", "Pediatric"},
	BedStatus: {"Occupied", "Available", "Under Maintenance", "Reserved"},
	RoomType:  {"Standard", "Deluxe", "Suite", "Isolation"},
	EquipmentType: {
		"Ventilator", "ECG Monitor", "Defibrillator", "Infusion Pump", "X-Ray Machine",
		"Ultrasound Scanner", "Dialysis Machine", "Anesthesia Machine", "Patient Monitor", "Syringe Pump",
	},
	EquipmentStatus: {"Operational", "Under Maintenance", "Out of Service"},
	MedicineCategory: {
		"Antibiotic", "Analgesic", "Antipyretic", "Antihypertensive", "Antidiabetic",
		"Antihistamine", "Antacid", "Sedative", "Steroid", "Vitamin Supplement",
	},
	DosageForm: {"Tablet", "Capsule", "Injection", "Syrup", "Ointment"},
	TestName: {
		"Complete Blood Count", "Lipid Profile", "Liver Function Test", "Kidney Function Test",
		"Blood Glucose", "Thyroid Profile", "Urinalysis", "Chest X-Ray", "ECG", "MRI Scan",
		"CT Scan", "Ultrasound Abdomen",
	},
	Diagnosis: {
		"Hypertension", "Type 2 Diabetes Mellitus", "Hyperlipidemia", "Asthma",
		"Chronic Obstructive Pulmonary Disease", "Acute Bronchitis", "Pneumonia",
		"Upper Respiratory Infection", "Gastroesophageal Reflux Disease",
		"Urinary Tract Infection", "Osteoarthritis", "Rheumatoid Arthritis",
		"Migraine", "Major Depressive Disorder", "Generalized Anxiety Disorder",
		"Hypothyroidism", "Anemia", "Gout", "Coronary Artery Disease", "Heart Failure",
		"Atrial Fibrillation", "Deep Vein Thrombosis", "Cholelithiasis", "Pancreatitis",
		"Appendicitis", "Conjunctivitis", "Dermatitis", "Epilepsy", "Influenza", "COVID-19",
	},
	HospitalType:  {"Multi-Specialty", "Super-Specialty", "General", "Teaching", "Community"},
	Ownership:     {"Government", "Private", "Trust", "Public-Private Partnership"},
	Accreditation: {"JCI", "NABH", "ISO 9001", "None"},
	PaymentStatus: {"Paid", "Pending", "Partially Paid", "Rejected"},
	PaymentMethod: {"Cash", "Credit Card", "Debit Card", "Insurance", "Online Transfer"},
}

// Build constructs the full catalog. Pure construction, no error
// conditions.
func Build() *Catalog {
	axes := make(map[Axis][]Entry, len(labels))
	for axis, names := range labels {
		entries := make([]Entry, len(names))
		for i, name := range names {
			entries[i] = Entry{ID: i + 1, Label: name}
		}
		axes[axis] = entries
	}
	return &Catalog{axes: axes}
}

// Entries returns the ordered entries for an axis. Panics on an unknown
// axis: axis names are compile-time constants, so a miss is a
// programming error, not a runtime condition.
func (c *Catalog) Entries(axis Axis) []Entry {
	entries, ok := c.axes[axis]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown axis %q", axis))
	}
	return entries
}

// Pick returns a uniformly random entry from the axis.
func (c *Catalog) Pick(axis Axis, rng *rand.Rand) Entry {
	entries := c.Entries(axis)
	return entries[rng.IntN(len(entries))]
}

// PickDistinct returns n distinct entries from the axis, sampled
// without replacement. n must not exceed the axis size.
func (c *Catalog) PickDistinct(axis Axis, n int, rng *rand.Rand) []Entry {
	entries := c.Entries(axis)
	perm := rng.Perm(len(entries))
	picked := make([]Entry, n)
	for i := 0; i < n; i++ {
		picked[i] = entries[perm[i]]
	}
	return picked
}

// Find returns the entry with the given label, if the axis defines it.
func (c *Catalog) Find(axis Axis, label string) (Entry, bool) {
	for _, e := range c.Entries(axis) {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

// Size returns the number of entries in an axis.
func (c *Catalog) Size(axis Axis) int {
	return len(c.Entries(axis))
}
