package visit

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/mrsinham/hospitalforge/internal/catalog"
	"github.com/mrsinham/hospitalforge/internal/pool"
)

// VisitIDPrefix and VisitIDWidth define the per-row visit identifier
// format ("VIS00000001").
const (
	VisitIDPrefix = "VIS"
	VisitIDWidth  = 8
)

// staffSelectionProbability is the chance that a doctor's shared staff
// identity, when it exists, is selected as the row's staff member.
const staffSelectionProbability = 0.5

// Config holds the per-row probabilities and the visit date range.
type Config struct {
	AdmissionProb           float64
	SameDayDischargeProb    float64
	StaffActingAsDoctorProb float64
	MultiDiagnosisProb      float64
	StartDate               time.Time
	EndDate                 time.Time
}

// Synthesizer produces one output row per planned visit. All random
// draws go through the single run RNG in a fixed order, so a given
// seed reproduces every row exactly.
type Synthesizer struct {
	cat     *catalog.Catalog
	pools   *pool.Pools
	overlap *pool.OverlapLinks
	cfg     Config
	rng     *rand.Rand

	seq          int
	dateSpanDays int
	inpatient    catalog.Entry
	outpatient   []catalog.Entry
}

// NewSynthesizer wires the synthesizer to its upstream stages. The
// catalog, pools and overlap links must be fully built; nothing here
// mutates them.
func NewSynthesizer(cat *catalog.Catalog, pools *pool.Pools, overlap *pool.OverlapLinks, cfg Config, rng *rand.Rand) *Synthesizer {
	inpatient, _ := cat.Find(catalog.VisitType, "Inpatient")
	var outpatient []catalog.Entry
	for _, e := range cat.Entries(catalog.VisitType) {
		if e.ID != inpatient.ID {
			outpatient = append(outpatient, e)
		}
	}
	return &Synthesizer{
		cat:          cat,
		pools:        pools,
		overlap:      overlap,
		cfg:          cfg,
		rng:          rng,
		dateSpanDays: int(cfg.EndDate.Sub(cfg.StartDate).Hours() / 24),
		inpatient:    inpatient,
		outpatient:   outpatient,
	}
}

// Next synthesizes the row for the next planned visit of the patient
// at the given pool index. Every draw is from a statically nonempty
// pool, so synthesis itself cannot fail.
func (s *Synthesizer) Next(patientIdx int) Row {
	s.seq++
	rng := s.rng
	patient := s.pools.Patients[patientIdx]

	var row Row
	row.VisitID = pool.FormatID(VisitIDPrefix, VisitIDWidth, s.seq)

	// Dates. Discharge never precedes admission and neither is ever
	// empty: outpatient rows collapse all three dates to the visit
	// date.
	row.VisitDate = s.cfg.StartDate.AddDate(0, 0, rng.IntN(s.dateSpanDays+1))
	admitted := rng.Float64() < s.cfg.AdmissionProb
	row.AdmissionDate = row.VisitDate
	row.DischargeDate = row.VisitDate
	row.StayDays = 1
	if admitted {
		row.VisitType = s.inpatient
		if rng.Float64() >= s.cfg.SameDayDischargeProb {
			extra := rng.IntN(14) + 1 // [1,14] days
			row.DischargeDate = row.AdmissionDate.AddDate(0, 0, extra)
			row.StayDays = extra + 1
		}
		row.AdmissionType = s.cat.Pick(catalog.AdmissionType, rng)
		row.DischargeStatus = s.cat.Pick(catalog.DischargeStatus, rng)
	} else {
		row.VisitType = s.outpatient[rng.IntN(len(s.outpatient))]
	}

	// Patient attributes are copied verbatim from the pool.
	row.PatientID = patient.ID
	row.PatientFirstName = patient.FirstName
	row.PatientLastName = patient.LastName
	row.PatientGender = patient.Gender
	row.PatientDateOfBirth = patient.DateOfBirth
	row.PatientBloodGroup = patient.BloodGroup
	row.PatientMaritalStatus = patient.MaritalStatus
	row.PatientAddress = patient.Address
	row.PatientCity = patient.City
	row.PatientState = patient.State
	row.PatientZipCode = patient.ZipCode
	row.PatientPhone = patient.Phone
	row.PatientEmail = patient.Email
	row.PatientInsuranceProvider = patient.InsuranceProvider
	row.PatientInsuranceNumber = patient.InsuranceNumber

	// Linkage: hospital and doctor are uniform per row, no per-patient
	// stickiness.
	hospital := s.pools.Hospitals[rng.IntN(len(s.pools.Hospitals))]
	doctor := s.pools.Doctors[rng.IntN(len(s.pools.Doctors))]

	// The "also staff" flag follows the chosen doctor's shared
	// identity, independent of which staff member the row ends up
	// with.
	sharedStaff, alsoStaff := s.overlap.StaffFor(doctor.ID)
	var staff pool.Staff
	if alsoStaff && rng.Float64() < staffSelectionProbability {
		staff = sharedStaff
	} else {
		staff = s.pools.Staff.At(rng.IntN(s.pools.Staff.Len()))
	}

	actingAsDoctor := rng.Float64() < s.cfg.StaffActingAsDoctorProb
	if actingAsDoctor {
		doctor = s.doctorFromStaff(staff, doctor)
	}

	row.DoctorID = doctor.ID
	row.DoctorName = doctor.Name
	row.DoctorGender = doctor.Gender
	row.DoctorSpecialization = doctor.Specialization
	row.DoctorQualification = doctor.Qualification
	row.DoctorExperienceYears = doctor.ExperienceYears
	row.DoctorShift = doctor.Shift
	row.DoctorEmploymentType = doctor.EmploymentType
	row.DoctorState = doctor.State
	row.DoctorCity = doctor.City
	row.DoctorPhone = doctor.Phone
	row.DoctorEmail = doctor.Email
	row.DoctorAlsoStaff = alsoStaff

	row.StaffID = staff.ID
	row.StaffName = staff.Name
	row.StaffGender = staff.Gender
	row.StaffRole = staff.Role
	row.StaffDepartment = staff.Department
	row.StaffShift = staff.Shift
	row.StaffEmploymentType = staff.EmploymentType
	row.StaffState = staff.State
	row.StaffCity = staff.City
	row.StaffPhone = staff.Phone
	row.StaffEmail = staff.Email
	row.StaffActingAsDoctor = actingAsDoctor

	row.HospitalID = hospital.ID
	row.HospitalName = hospital.Name
	row.HospitalType = hospital.Type
	row.HospitalOwnership = hospital.Ownership
	row.HospitalAccreditation = hospital.Accreditation
	row.HospitalBedCapacity = hospital.BedCapacity
	row.HospitalEstablishedYear = hospital.EstablishedYear
	row.HospitalState = hospital.State
	row.HospitalCity = hospital.City
	row.HospitalPhone = hospital.Phone

	// Visit department is drawn from the catalog, deliberately
	// independent of the staff member's own department.
	row.Department = s.cat.Pick(catalog.Department, rng)

	bed := s.pools.Beds[rng.IntN(len(s.pools.Beds))]
	row.BedID = bed.ID
	row.BedType = bed.Type
	row.BedStatus = bed.Status
	row.RoomType = bed.RoomType
	row.WardNumber = bed.WardNumber
	row.RoomNumber = bed.RoomNumber

	equipment := s.pools.Equipment[rng.IntN(len(s.pools.Equipment))]
	row.EquipmentID = equipment.ID
	row.EquipmentName = equipment.Name
	row.EquipmentType = equipment.Type
	row.EquipmentManufacturer = equipment.Manufacturer
	row.EquipmentPurchaseDate = equipment.PurchaseDate
	row.EquipmentWarrantyUntil = equipment.WarrantyUntil
	row.EquipmentStatus = equipment.Status

	medicine := s.pools.Medicines[rng.IntN(len(s.pools.Medicines))]
	row.MedicineID = medicine.ID
	row.MedicineName = medicine.Name
	row.MedicineCategory = medicine.Category
	row.MedicineDosageForm = medicine.DosageForm
	row.MedicineManufacturer = medicine.Manufacturer
	row.MedicineStrength = medicine.Strength
	row.MedicineUnitPrice = medicine.UnitPrice
	row.MedicineExpiryDate = medicine.ExpiryDate

	row.DiagnosisIDs, row.DiagnosisLabels = s.drawDiagnoses()
	row.Test = s.cat.Pick(catalog.TestName, rng)

	row.PaymentMethod = s.cat.Pick(catalog.PaymentMethod, rng)
	row.PaymentStatus = s.cat.Pick(catalog.PaymentStatus, rng)
	row.Billing = computeBilling(rng, admitted, row.StayDays, row.BedType.Label, row.PaymentStatus.Label)

	return row
}

// doctorFromStaff synthesizes the row's effective doctor record from a
// staff member acting as doctor: personal attributes are copied,
// education and specialization are re-randomized, and the identifier
// is derived from the staff identifier. If the derivation cannot
// produce a doctor identifier the original doctor is kept.
func (s *Synthesizer) doctorFromStaff(staff pool.Staff, original pool.Doctor) pool.Doctor {
	id, ok := pool.DeriveDoctorID(staff.ID)
	if !ok {
		return original
	}
	return pool.Doctor{
		ID:              id,
		Name:            "Dr. " + staff.Name,
		Gender:          staff.Gender,
		Specialization:  s.cat.Pick(catalog.Specialization, s.rng),
		Qualification:   s.cat.Pick(catalog.Qualification, s.rng),
		ExperienceYears: s.rng.IntN(40) + 1,
		Shift:           staff.Shift,
		EmploymentType:  staff.EmploymentType,
		State:           staff.State,
		City:            staff.City,
		Phone:           staff.Phone,
		Email:           staff.Email,
	}
}

// drawDiagnoses samples one diagnosis, or two distinct diagnoses with
// the configured probability, and encodes IDs and labels comma-joined.
func (s *Synthesizer) drawDiagnoses() (ids, descriptions string) {
	if s.rng.Float64() < s.cfg.MultiDiagnosisProb {
		pair := s.cat.PickDistinct(catalog.Diagnosis, 2, s.rng)
		ids = strconv.Itoa(pair[0].ID) + "," + strconv.Itoa(pair[1].ID)
		descriptions = strings.Join([]string{pair[0].Label, pair[1].Label}, ",")
		return ids, descriptions
	}
	d := s.cat.Pick(catalog.Diagnosis, s.rng)
	return strconv.Itoa(d.ID), d.Label
}
