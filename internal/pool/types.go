// Package pool builds the fixed-size entity pools (patients, doctors,
// staff, beds, equipment, medicines, hospitals) that visit rows link
// to. Pools are constructed once; after ResolveOverlap has run they are
// read-only for the rest of the generation pass.
package pool

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrsinham/hospitalforge/internal/catalog"
)

// Identifier prefixes and zero-pad widths. Patients get a wider
// sequence because patient pools are expected to dwarf the others.
const (
	PatientPrefix   = "PAT"
	DoctorPrefix    = "DOC"
	StaffPrefix     = "STF"
	BedPrefix       = "BED"
	EquipmentPrefix = "EQP"
	MedicinePrefix  = "MED"
	HospitalPrefix  = "HOS"

	PatientIDWidth = 7
	EntityIDWidth  = 6
)

// FormatID renders a prefixed, zero-padded entity identifier,
// e.g. FormatID("DOC", 6, 123) == "DOC000123".
func FormatID(prefix string, width, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// Patient is one member of the patient pool.
type Patient struct {
	ID                string
	FirstName         string
	LastName          string
	Gender            catalog.Entry
	DateOfBirth       time.Time
	BloodGroup        catalog.Entry
	MaritalStatus     catalog.Entry
	Address           string
	City              string
	State             string
	ZipCode           string
	Phone             string
	Email             string
	InsuranceProvider catalog.Entry
	InsuranceNumber   string
}

// Doctor is one member of the doctor pool.
type Doctor struct {
	ID              string
	Name            string
	Gender          catalog.Entry
	Specialization  catalog.Entry
	Qualification   catalog.Entry
	ExperienceYears int
	Shift           catalog.Entry
	EmploymentType  catalog.Entry
	State           string
	City            string
	Phone           string
	Email           string
}

// Staff is one member of the staff pool.
type Staff struct {
	ID             string
	Name           string
	Gender         catalog.Entry
	Role           catalog.Entry
	Department     catalog.Entry
	Shift          catalog.Entry
	EmploymentType catalog.Entry
	State          string
	City           string
	Phone          string
	Email          string
}

// Bed is one member of the bed pool.
type Bed struct {
	ID         string
	Type       catalog.Entry
	Status     catalog.Entry
	RoomType   catalog.Entry
	WardNumber int
	RoomNumber int
}

// Equipment is one member of the equipment pool.
type Equipment struct {
	ID            string
	Name          string
	Type          catalog.Entry
	Manufacturer  string
	PurchaseDate  time.Time
	WarrantyUntil time.Time
	Status        catalog.Entry
}

// Medicine is one member of the medicine pool.
type Medicine struct {
	ID           string
	Name         string
	Category     catalog.Entry
	DosageForm   catalog.Entry
	Manufacturer string
	Strength     string
	UnitPrice    float64
	ExpiryDate   time.Time
}

// Hospital is one member of the hospital pool.
type Hospital struct {
	ID              string
	Name            string
	Type            catalog.Entry
	Ownership       catalog.Entry
	Accreditation   catalog.Entry
	BedCapacity     int
	EstablishedYear int
	State           string
	City            string
	Phone           string
}

// StaffPool is an indexed collection of staff records. It is the only
// pool that is mutated after construction: ResolveOverlap inserts or
// overwrites merged records exactly once, before row synthesis begins.
type StaffPool struct {
	members []Staff
	index   map[string]int
}

// NewStaffPool builds an indexed pool from an ordered member slice.
func NewStaffPool(members []Staff) *StaffPool {
	p := &StaffPool{
		members: members,
		index:   make(map[string]int, len(members)),
	}
	for i, m := range members {
		p.index[m.ID] = i
	}
	return p
}

// Get returns the staff record with the given identifier.
func (p *StaffPool) Get(id string) (Staff, bool) {
	i, ok := p.index[id]
	if !ok {
		return Staff{}, false
	}
	return p.members[i], true
}

// At returns the i-th staff record in pool order.
func (p *StaffPool) At(i int) Staff {
	return p.members[i]
}

// Len returns the pool size.
func (p *StaffPool) Len() int {
	return len(p.members)
}

// put inserts a record, overwriting any existing entry with the same
// identifier. Only the overlap resolver calls this.
func (p *StaffPool) put(s Staff) {
	if i, ok := p.index[s.ID]; ok {
		p.members[i] = s
		return
	}
	p.index[s.ID] = len(p.members)
	p.members = append(p.members, s)
}

// Pools bundles every entity pool for the run.
type Pools struct {
	Patients  []Patient
	Doctors   []Doctor
	Staff     *StaffPool
	Beds      []Bed
	Equipment []Equipment
	Medicines []Medicine
	Hospitals []Hospital
}

// DeriveStaffID maps a doctor identifier into the staff namespace by
// prefix substitution, keeping the numeric suffix ("DOC000123" ->
// "STF000123"). If the identifier is not a doctor ID or its suffix
// width does not match the staff namespace, the derivation reports
// not-found rather than fabricating an identifier.
func DeriveStaffID(doctorID string) (string, bool) {
	suffix, ok := strings.CutPrefix(doctorID, DoctorPrefix)
	if !ok || len(suffix) != EntityIDWidth {
		return "", false
	}
	return StaffPrefix + suffix, true
}

// DeriveDoctorID is the reverse mapping, used when a staff member acts
// as the row's doctor ("STF000045" -> "DOC000045").
func DeriveDoctorID(staffID string) (string, bool) {
	suffix, ok := strings.CutPrefix(staffID, StaffPrefix)
	if !ok || len(suffix) != EntityIDWidth {
		return "", false
	}
	return DoctorPrefix + suffix, true
}
