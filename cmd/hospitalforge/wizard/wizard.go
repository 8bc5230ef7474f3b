// Package wizard provides the interactive configuration form and the
// YAML config round-trip for the hospitalforge CLI.
package wizard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/hospitalforge/internal/gen"
)

// Run launches the interactive configuration form, pre-filled from the
// given options, and returns the options the user confirmed.
func Run(defaults gen.Options) (gen.Options, error) {
	opts := defaults

	// huh binds to strings; numeric fields are parsed after the form
	// completes.
	rowsStr := strconv.Itoa(opts.TotalRows)
	seedStr := strconv.FormatInt(opts.Seed, 10)
	patientsStr := strconv.Itoa(opts.Pools.Patients)
	doctorsStr := strconv.Itoa(opts.Pools.Doctors)
	staffStr := strconv.Itoa(opts.Pools.Staff)
	bedsStr := strconv.Itoa(opts.Pools.Beds)
	equipmentStr := strconv.Itoa(opts.Pools.Equipment)
	medicinesStr := strconv.Itoa(opts.Pools.Medicines)
	hospitalsStr := strconv.Itoa(opts.Pools.Hospitals)
	admissionStr := formatProb(opts.AdmissionProb)
	sameDayStr := formatProb(opts.SameDayDischargeProb)
	overlapStr := formatProb(opts.DoctorAlsoStaffFraction)
	actingStr := formatProb(opts.StaffActingAsDoctorProb)
	multiDiagStr := formatProb(opts.MultiDiagnosisProb)
	startStr := opts.StartDate.Format(dateLayout)
	endStr := opts.EndDate.Format(dateLayout)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total rows").
				Description("Number of visit rows to generate").
				Value(&rowsStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Title("Output file").
				Value(&opts.Output).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output file is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Seed").
				Description("0 derives the seed from the output name").
				Value(&seedStr).
				Validate(validateInt64),
		),
		huh.NewGroup(
			huh.NewInput().Title("Patients").Value(&patientsStr).Validate(validatePositiveInt),
			huh.NewInput().Title("Doctors").Value(&doctorsStr).Validate(validatePositiveInt),
			huh.NewInput().Title("Staff").Value(&staffStr).Validate(validatePositiveInt),
			huh.NewInput().Title("Beds").Value(&bedsStr).Validate(validatePositiveInt),
			huh.NewInput().Title("Equipment").Value(&equipmentStr).Validate(validatePositiveInt),
			huh.NewInput().Title("Medicines").Value(&medicinesStr).Validate(validatePositiveInt),
			huh.NewInput().Title("Hospitals").Value(&hospitalsStr).Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Admission probability").Value(&admissionStr).Validate(validateProb),
			huh.NewInput().Title("Same-day discharge probability").Value(&sameDayStr).Validate(validateProb),
			huh.NewInput().Title("Doctor-also-staff fraction").Value(&overlapStr).Validate(validateProb),
			huh.NewInput().Title("Staff-acting-as-doctor probability").Value(&actingStr).Validate(validateProb),
			huh.NewInput().Title("Multi-diagnosis probability").Value(&multiDiagStr).Validate(validateProb),
		),
		huh.NewGroup(
			huh.NewInput().Title("First visit date").Placeholder("YYYY-MM-DD").Value(&startStr).Validate(validateDate),
			huh.NewInput().Title("Last visit date").Placeholder("YYYY-MM-DD").Value(&endStr).Validate(validateDate),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("wizard: %w", err)
	}

	// All inputs passed field validation above; parse errors here
	// would be programming errors, but keep the checks anyway.
	var err error
	if opts.TotalRows, err = strconv.Atoi(rowsStr); err != nil {
		return opts, fmt.Errorf("parse rows: %w", err)
	}
	if opts.Seed, err = strconv.ParseInt(seedStr, 10, 64); err != nil {
		return opts, fmt.Errorf("parse seed: %w", err)
	}
	if opts.Pools.Patients, err = strconv.Atoi(patientsStr); err != nil {
		return opts, fmt.Errorf("parse patients: %w", err)
	}
	if opts.Pools.Doctors, err = strconv.Atoi(doctorsStr); err != nil {
		return opts, fmt.Errorf("parse doctors: %w", err)
	}
	if opts.Pools.Staff, err = strconv.Atoi(staffStr); err != nil {
		return opts, fmt.Errorf("parse staff: %w", err)
	}
	if opts.Pools.Beds, err = strconv.Atoi(bedsStr); err != nil {
		return opts, fmt.Errorf("parse beds: %w", err)
	}
	if opts.Pools.Equipment, err = strconv.Atoi(equipmentStr); err != nil {
		return opts, fmt.Errorf("parse equipment: %w", err)
	}
	if opts.Pools.Medicines, err = strconv.Atoi(medicinesStr); err != nil {
		return opts, fmt.Errorf("parse medicines: %w", err)
	}
	if opts.Pools.Hospitals, err = strconv.Atoi(hospitalsStr); err != nil {
		return opts, fmt.Errorf("parse hospitals: %w", err)
	}
	if opts.AdmissionProb, err = strconv.ParseFloat(admissionStr, 64); err != nil {
		return opts, fmt.Errorf("parse admission probability: %w", err)
	}
	if opts.SameDayDischargeProb, err = strconv.ParseFloat(sameDayStr, 64); err != nil {
		return opts, fmt.Errorf("parse same-day discharge probability: %w", err)
	}
	if opts.DoctorAlsoStaffFraction, err = strconv.ParseFloat(overlapStr, 64); err != nil {
		return opts, fmt.Errorf("parse doctor-staff fraction: %w", err)
	}
	if opts.StaffActingAsDoctorProb, err = strconv.ParseFloat(actingStr, 64); err != nil {
		return opts, fmt.Errorf("parse staff-as-doctor probability: %w", err)
	}
	if opts.MultiDiagnosisProb, err = strconv.ParseFloat(multiDiagStr, 64); err != nil {
		return opts, fmt.Errorf("parse multi-diagnosis probability: %w", err)
	}
	if opts.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return opts, fmt.Errorf("parse start date: %w", err)
	}
	if opts.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return opts, fmt.Errorf("parse end date: %w", err)
	}

	return opts, nil
}

func formatProb(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be > 0")
	}
	return nil
}

func validateInt64(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateProb(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("must be YYYY-MM-DD")
	}
	return nil
}
