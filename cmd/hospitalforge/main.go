package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrsinham/hospitalforge/cmd/hospitalforge/wizard"
	"github.com/mrsinham/hospitalforge/internal/gen"
	"github.com/mrsinham/hospitalforge/internal/output"
)

// version is set at build time via -ldflags
var version = "dev"

const dateLayout = "2006-01-02"

func main() {
	defaults := gen.DefaultOptions()

	rows := flag.Int("rows", defaults.TotalRows, "Total number of visit rows to generate")
	outputPath := flag.String("output", defaults.Output, "Output CSV file")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (derived from output name if not specified)")
	chunkSize := flag.Int("chunk-size", output.DefaultChunkSize, "Rows buffered per output flush")

	patients := flag.Int("patients", defaults.Pools.Patients, "Patient pool size")
	doctors := flag.Int("doctors", defaults.Pools.Doctors, "Doctor pool size")
	staff := flag.Int("staff", defaults.Pools.Staff, "Staff pool size")
	beds := flag.Int("beds", defaults.Pools.Beds, "Bed pool size")
	equipment := flag.Int("equipment", defaults.Pools.Equipment, "Equipment pool size")
	medicines := flag.Int("medicines", defaults.Pools.Medicines, "Medicine pool size")
	hospitals := flag.Int("hospitals", defaults.Pools.Hospitals, "Hospital pool size")

	doctorStaffFraction := flag.Float64("doctor-staff-fraction", defaults.DoctorAlsoStaffFraction, "Fraction of doctors who are also staff members (0-1)")
	staffAsDoctorProb := flag.Float64("staff-as-doctor-prob", defaults.StaffActingAsDoctorProb, "Probability a row's staff member acts as its doctor (0-1)")
	admissionProb := flag.Float64("admission-prob", defaults.AdmissionProb, "Probability a visit is an inpatient admission (0-1)")
	sameDayProb := flag.Float64("same-day-discharge-prob", defaults.SameDayDischargeProb, "Probability an admission discharges the same day (0-1)")
	multiDiagnosisProb := flag.Float64("multi-diagnosis-prob", defaults.MultiDiagnosisProb, "Probability a visit records two diagnoses (0-1)")

	startDate := flag.String("start-date", defaults.StartDate.Format(dateLayout), "First possible visit date (YYYY-MM-DD)")
	endDate := flag.String("end-date", defaults.EndDate.Format(dateLayout), "Last possible visit date (YYYY-MM-DD)")

	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	quiet := flag.Bool("quiet", false, "Suppress progress logging")
	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("hospitalforge %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	opts := defaults

	switch {
	case *interactive:
		wizardOpts, err := wizard.Run(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = wizardOpts
	case *configFile != "":
		cfg, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		opts, err = cfg.ToOptions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
	default:
		start, err := time.Parse(dateLayout, *startDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --start-date %q: %v\n", *startDate, err)
			os.Exit(1)
		}
		end, err := time.Parse(dateLayout, *endDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --end-date %q: %v\n", *endDate, err)
			os.Exit(1)
		}
		opts.TotalRows = *rows
		opts.Output = *outputPath
		opts.Seed = *seed
		opts.ChunkSize = *chunkSize
		opts.Pools.Patients = *patients
		opts.Pools.Doctors = *doctors
		opts.Pools.Staff = *staff
		opts.Pools.Beds = *beds
		opts.Pools.Equipment = *equipment
		opts.Pools.Medicines = *medicines
		opts.Pools.Hospitals = *hospitals
		opts.DoctorAlsoStaffFraction = *doctorStaffFraction
		opts.StaffActingAsDoctorProb = *staffAsDoctorProb
		opts.AdmissionProb = *admissionProb
		opts.SameDayDischargeProb = *sameDayProb
		opts.MultiDiagnosisProb = *multiDiagnosisProb
		opts.StartDate = start
		opts.EndDate = end
	}

	opts.Quiet = *quiet

	// Fail fast: reject infeasible configurations before building any
	// pool.
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	fmt.Println("hospitalforge")
	fmt.Println("=============")
	fmt.Println()

	summary, err := gen.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating dataset: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig != "" {
		cfg := wizard.FromOptions(opts)
		if err := wizard.SaveToYAML(cfg, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	fmt.Println("\n✓ Generation complete!")
	fmt.Printf("  Rows:   %d\n", summary.Rows)
	fmt.Printf("  Seed:   %d\n", summary.Seed)
	fmt.Printf("  Output: %s\n", opts.Output)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  hospitalforge --rows <N> --patients <N> [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("hospitalforge")
	fmt.Println("=============")
	fmt.Println()
	fmt.Println("Generate a synthetic hospital-visit CSV dataset for testing analytics pipelines.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hospitalforge --rows <N> [options]")
	fmt.Println()
	fmt.Println("Main arguments:")
	fmt.Println("  --rows <N>            Total number of visit rows (default: 100000)")
	fmt.Println("  --output <FILE>       Output CSV file (default: 'hospital_visits.csv')")
	fmt.Println("  --seed <N>            Seed for reproducibility (derived from output name if not specified)")
	fmt.Println("  --chunk-size <N>      Rows buffered per output flush (default: 50000)")
	fmt.Println()
	fmt.Println("Pool sizes:")
	fmt.Println("  --patients <N>        Patient pool size (default: 40000)")
	fmt.Println("  --doctors <N>         Doctor pool size (default: 500)")
	fmt.Println("  --staff <N>           Staff pool size (default: 800)")
	fmt.Println("  --beds <N>            Bed pool size (default: 1200)")
	fmt.Println("  --equipment <N>       Equipment pool size (default: 600)")
	fmt.Println("  --medicines <N>       Medicine pool size (default: 400)")
	fmt.Println("  --hospitals <N>       Hospital pool size (default: 25)")
	fmt.Println()
	fmt.Println("  Each patient contributes between 1 and 4 visits, so --rows must be")
	fmt.Println("  between --patients and 4 x --patients.")
	fmt.Println()
	fmt.Println("Probabilities:")
	fmt.Println("  --doctor-staff-fraction <F>    Fraction of doctors also on staff (default: 0.20)")
	fmt.Println("  --staff-as-doctor-prob <F>     Staff acting as the row's doctor (default: 0.10)")
	fmt.Println("  --admission-prob <F>           Inpatient admission probability (default: 0.30)")
	fmt.Println("  --same-day-discharge-prob <F>  Same-day discharge for admissions (default: 0.25)")
	fmt.Println("  --multi-diagnosis-prob <F>     Two diagnoses on one visit (default: 0.30)")
	fmt.Println()
	fmt.Println("Date range:")
	fmt.Println("  --start-date <DATE>   First possible visit date (default: 2020-01-01)")
	fmt.Println("  --end-date <DATE>     Last possible visit date (default: 2024-12-31)")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  -i, --interactive     Launch the interactive wizard")
	fmt.Println("  --config <FILE>       Load configuration from YAML file")
	fmt.Println("  --save-config <FILE>  Save configuration to YAML file after generation")
	fmt.Println()
	fmt.Println("  --quiet               Suppress progress logging")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Generate 100k rows with the default pools")
	fmt.Println("  hospitalforge --rows 100000")
	fmt.Println()
	fmt.Println("  # Small deterministic dataset")
	fmt.Println("  hospitalforge --rows 1000 --patients 400 --seed 42 --output sample.csv")
	fmt.Println()
	fmt.Println("  # Heavier inpatient mix")
	fmt.Println("  hospitalforge --rows 50000 --patients 20000 --admission-prob 0.6")
	fmt.Println()
	fmt.Println("  # Save the run configuration for replay")
	fmt.Println("  hospitalforge --rows 1000 --patients 400 --save-config run.yaml")
	fmt.Println("  hospitalforge --config run.yaml")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  The same seed and configuration produce byte-identical output.")
	fmt.Println("  Without --seed, the seed is derived from the output file name, so")
	fmt.Println("  the same destination generates the same dataset.")
}
