package visit

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mrsinham/hospitalforge/internal/catalog"
)

// dateLayout renders all dates as ISO-8601 calendar dates.
const dateLayout = "2006-01-02"

// Row is one flat output record. Rows are write-once: the synthesizer
// fills every field and the writer renders it; nothing mutates a row
// after creation.
type Row struct {
	// Visit
	VisitID         string
	VisitDate       time.Time
	VisitType       catalog.Entry
	AdmissionType   catalog.Entry // zero for outpatient rows
	AdmissionDate   time.Time
	DischargeDate   time.Time
	StayDays        int
	DischargeStatus catalog.Entry // zero for outpatient rows

	// Patient
	PatientID                string
	PatientFirstName         string
	PatientLastName          string
	PatientGender            catalog.Entry
	PatientDateOfBirth       time.Time
	PatientBloodGroup        catalog.Entry
	PatientMaritalStatus     catalog.Entry
	PatientAddress           string
	PatientCity              string
	PatientState             string
	PatientZipCode           string
	PatientPhone             string
	PatientEmail             string
	PatientInsuranceProvider catalog.Entry
	PatientInsuranceNumber   string

	// Doctor (effective: may be synthesized from staff)
	DoctorID              string
	DoctorName            string
	DoctorGender          catalog.Entry
	DoctorSpecialization  catalog.Entry
	DoctorQualification   catalog.Entry
	DoctorExperienceYears int
	DoctorShift           catalog.Entry
	DoctorEmploymentType  catalog.Entry
	DoctorState           string
	DoctorCity            string
	DoctorPhone           string
	DoctorEmail           string
	DoctorAlsoStaff       bool

	// Staff
	StaffID             string
	StaffName           string
	StaffGender         catalog.Entry
	StaffRole           catalog.Entry
	StaffDepartment     catalog.Entry
	StaffShift          catalog.Entry
	StaffEmploymentType catalog.Entry
	StaffState          string
	StaffCity           string
	StaffPhone          string
	StaffEmail          string
	StaffActingAsDoctor bool

	// Hospital
	HospitalID              string
	HospitalName            string
	HospitalType            catalog.Entry
	HospitalOwnership       catalog.Entry
	HospitalAccreditation   catalog.Entry
	HospitalBedCapacity     int
	HospitalEstablishedYear int
	HospitalState           string
	HospitalCity            string
	HospitalPhone           string

	// Visit department (independent of the staff member's own)
	Department catalog.Entry

	// Bed
	BedID      string
	BedType    catalog.Entry
	BedStatus  catalog.Entry
	RoomType   catalog.Entry
	WardNumber int
	RoomNumber int

	// Equipment
	EquipmentID            string
	EquipmentName          string
	EquipmentType          catalog.Entry
	EquipmentManufacturer  string
	EquipmentPurchaseDate  time.Time
	EquipmentWarrantyUntil time.Time
	EquipmentStatus        catalog.Entry

	// Medicine
	MedicineID           string
	MedicineName         string
	MedicineCategory     catalog.Entry
	MedicineDosageForm   catalog.Entry
	MedicineManufacturer string
	MedicineStrength     string
	MedicineUnitPrice    float64
	MedicineExpiryDate   time.Time

	// Clinical
	DiagnosisIDs    string // comma-joined when multi-diagnosis
	DiagnosisLabels string
	Test            catalog.Entry

	// Billing
	Billing       Billing
	PaymentStatus catalog.Entry
	PaymentMethod catalog.Entry
}

// Header is the fixed output column order. Record must render fields
// in exactly this order; TestHeaderMatchesRecord guards the pairing.
func Header() []string {
	return []string{
		"visit_id", "visit_date", "visit_type_id", "visit_type",
		"admission_type_id", "admission_type", "admission_date", "discharge_date",
		"stay_days", "discharge_status_id", "discharge_status",

		"patient_id", "patient_first_name", "patient_last_name",
		"patient_gender_id", "patient_gender", "patient_date_of_birth",
		"patient_blood_group_id", "patient_blood_group",
		"patient_marital_status_id", "patient_marital_status",
		"patient_address", "patient_city", "patient_state", "patient_zip_code",
		"patient_phone", "patient_email",
		"patient_insurance_provider_id", "patient_insurance_provider",
		"patient_insurance_number",

		"doctor_id", "doctor_name", "doctor_gender_id", "doctor_gender",
		"doctor_specialization_id", "doctor_specialization",
		"doctor_qualification_id", "doctor_qualification",
		"doctor_experience_years", "doctor_shift_id", "doctor_shift",
		"doctor_employment_type_id", "doctor_employment_type",
		"doctor_state", "doctor_city", "doctor_phone", "doctor_email",
		"doctor_also_staff",

		"staff_id", "staff_name", "staff_gender_id", "staff_gender",
		"staff_role_id", "staff_role", "staff_department_id", "staff_department",
		"staff_shift_id", "staff_shift",
		"staff_employment_type_id", "staff_employment_type",
		"staff_state", "staff_city", "staff_phone", "staff_email",
		"staff_acting_as_doctor",

		"hospital_id", "hospital_name", "hospital_type_id", "hospital_type",
		"hospital_ownership_id", "hospital_ownership",
		"hospital_accreditation_id", "hospital_accreditation",
		"hospital_bed_capacity", "hospital_established_year",
		"hospital_state", "hospital_city", "hospital_phone",

		"department_id", "department",

		"bed_id", "bed_type_id", "bed_type", "bed_status_id", "bed_status",
		"room_type_id", "room_type", "ward_number", "room_number",

		"equipment_id", "equipment_name", "equipment_type_id", "equipment_type",
		"equipment_manufacturer", "equipment_purchase_date",
		"equipment_warranty_until", "equipment_status_id", "equipment_status",

		"medicine_id", "medicine_name", "medicine_category_id", "medicine_category",
		"medicine_dosage_form_id", "medicine_dosage_form",
		"medicine_manufacturer", "medicine_strength", "medicine_unit_price",
		"medicine_expiry_date",

		"diagnosis_ids", "diagnosis_descriptions", "test_id", "test_name",

		"base_visit_fee", "test_charge", "bed_charge", "medicine_charge",
		"total_amount", "payment_status_id", "payment_status",
		"payment_method_id", "payment_method", "paid_amount",
	}
}

// entryID renders a dimension ID, leaving the column empty for axes
// that do not apply to the row (zero entry).
func entryID(e catalog.Entry) string {
	if e.ID == 0 {
		return ""
	}
	return strconv.Itoa(e.ID)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Record renders the row in Header order.
func (r *Row) Record() []string {
	return []string{
		r.VisitID, r.VisitDate.Format(dateLayout), entryID(r.VisitType), r.VisitType.Label,
		entryID(r.AdmissionType), r.AdmissionType.Label,
		r.AdmissionDate.Format(dateLayout), r.DischargeDate.Format(dateLayout),
		strconv.Itoa(r.StayDays), entryID(r.DischargeStatus), r.DischargeStatus.Label,

		r.PatientID, r.PatientFirstName, r.PatientLastName,
		entryID(r.PatientGender), r.PatientGender.Label,
		r.PatientDateOfBirth.Format(dateLayout),
		entryID(r.PatientBloodGroup), r.PatientBloodGroup.Label,
		entryID(r.PatientMaritalStatus), r.PatientMaritalStatus.Label,
		r.PatientAddress, r.PatientCity, r.PatientState, r.PatientZipCode,
		r.PatientPhone, r.PatientEmail,
		entryID(r.PatientInsuranceProvider), r.PatientInsuranceProvider.Label,
		r.PatientInsuranceNumber,

		r.DoctorID, r.DoctorName, entryID(r.DoctorGender), r.DoctorGender.Label,
		entryID(r.DoctorSpecialization), r.DoctorSpecialization.Label,
		entryID(r.DoctorQualification), r.DoctorQualification.Label,
		strconv.Itoa(r.DoctorExperienceYears),
		entryID(r.DoctorShift), r.DoctorShift.Label,
		entryID(r.DoctorEmploymentType), r.DoctorEmploymentType.Label,
		r.DoctorState, r.DoctorCity, r.DoctorPhone, r.DoctorEmail,
		flag(r.DoctorAlsoStaff),

		r.StaffID, r.StaffName, entryID(r.StaffGender), r.StaffGender.Label,
		entryID(r.StaffRole), r.StaffRole.Label,
		entryID(r.StaffDepartment), r.StaffDepartment.Label,
		entryID(r.StaffShift), r.StaffShift.Label,
		entryID(r.StaffEmploymentType), r.StaffEmploymentType.Label,
		r.StaffState, r.StaffCity, r.StaffPhone, r.StaffEmail,
		flag(r.StaffActingAsDoctor),

		r.HospitalID, r.HospitalName, entryID(r.HospitalType), r.HospitalType.Label,
		entryID(r.HospitalOwnership), r.HospitalOwnership.Label,
		entryID(r.HospitalAccreditation), r.HospitalAccreditation.Label,
		strconv.Itoa(r.HospitalBedCapacity), strconv.Itoa(r.HospitalEstablishedYear),
		r.HospitalState, r.HospitalCity, r.HospitalPhone,

		entryID(r.Department), r.Department.Label,

		r.BedID, entryID(r.BedType), r.BedType.Label,
		entryID(r.BedStatus), r.BedStatus.Label,
		entryID(r.RoomType), r.RoomType.Label,
		strconv.Itoa(r.WardNumber), strconv.Itoa(r.RoomNumber),

		r.EquipmentID, r.EquipmentName, entryID(r.EquipmentType), r.EquipmentType.Label,
		r.EquipmentManufacturer, r.EquipmentPurchaseDate.Format(dateLayout),
		r.EquipmentWarrantyUntil.Format(dateLayout),
		entryID(r.EquipmentStatus), r.EquipmentStatus.Label,

		r.MedicineID, r.MedicineName, entryID(r.MedicineCategory), r.MedicineCategory.Label,
		entryID(r.MedicineDosageForm), r.MedicineDosageForm.Label,
		r.MedicineManufacturer, r.MedicineStrength,
		fmt.Sprintf("%.2f", r.MedicineUnitPrice),
		r.MedicineExpiryDate.Format(dateLayout),

		r.DiagnosisIDs, r.DiagnosisLabels, entryID(r.Test), r.Test.Label,

		strconv.Itoa(r.Billing.BaseVisitFee), strconv.Itoa(r.Billing.TestCharge),
		strconv.Itoa(r.Billing.BedCharge), strconv.Itoa(r.Billing.MedicineCharge),
		strconv.Itoa(r.Billing.Total),
		entryID(r.PaymentStatus), r.PaymentStatus.Label,
		entryID(r.PaymentMethod), r.PaymentMethod.Label,
		strconv.Itoa(r.Billing.Paid),
	}
}
