// Package gen orchestrates a full generation run: catalog, entity
// pools, identity overlap, visit plan, row synthesis and chunked CSV
// output, in that order. Data flows strictly downward; no stage reads
// back from a later one.
package gen

import (
	"fmt"
	"hash/fnv"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/mrsinham/hospitalforge/internal/catalog"
	"github.com/mrsinham/hospitalforge/internal/output"
	"github.com/mrsinham/hospitalforge/internal/pool"
	"github.com/mrsinham/hospitalforge/internal/visit"
)

// Options contains all parameters of a generation run.
type Options struct {
	TotalRows int
	Output    string
	Seed      int64 // 0 = derive deterministically from the output name
	ChunkSize int

	Pools pool.Sizes

	// Probabilities, all in [0,1].
	DoctorAlsoStaffFraction float64
	StaffActingAsDoctorProb float64
	AdmissionProb           float64
	SameDayDischargeProb    float64
	MultiDiagnosisProb      float64

	// Visit date range, inclusive on both ends.
	StartDate time.Time
	EndDate   time.Time

	// Output control
	Quiet            bool
	ProgressCallback func(done, total int)
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		TotalRows: 100000,
		Output:    "hospital_visits.csv",
		ChunkSize: output.DefaultChunkSize,
		Pools: pool.Sizes{
			Patients:  40000,
			Doctors:   500,
			Staff:     800,
			Beds:      1200,
			Equipment: 600,
			Medicines: 400,
			Hospitals: 25,
		},
		DoctorAlsoStaffFraction: 0.20,
		StaffActingAsDoctorProb: 0.10,
		AdmissionProb:           0.30,
		SameDayDischargeProb:    0.25,
		MultiDiagnosisProb:      0.30,
		StartDate:               time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                 time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Validate rejects infeasible configurations before any generation
// work starts. Out-of-range values are never clamped silently.
func (o *Options) Validate() error {
	if o.TotalRows <= 0 {
		return fmt.Errorf("total rows must be > 0, got %d", o.TotalRows)
	}
	if o.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be > 0, got %d", o.ChunkSize)
	}
	if err := o.Pools.Validate(); err != nil {
		return err
	}
	if o.TotalRows < o.Pools.Patients {
		return fmt.Errorf("total rows (%d) cannot be smaller than the patient pool (%d): every patient gets at least one visit", o.TotalRows, o.Pools.Patients)
	}
	if o.TotalRows > visit.MaxVisitsPerPatient*o.Pools.Patients {
		return fmt.Errorf("total rows (%d) cannot exceed %d visits per patient for %d patients (max %d)", o.TotalRows, visit.MaxVisitsPerPatient, o.Pools.Patients, visit.MaxVisitsPerPatient*o.Pools.Patients)
	}
	probs := []struct {
		name  string
		value float64
	}{
		{"doctor-staff-fraction", o.DoctorAlsoStaffFraction},
		{"staff-as-doctor-prob", o.StaffActingAsDoctorProb},
		{"admission-prob", o.AdmissionProb},
		{"same-day-discharge-prob", o.SameDayDischargeProb},
		{"multi-diagnosis-prob", o.MultiDiagnosisProb},
	}
	for _, p := range probs {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %g", p.name, p.value)
		}
	}
	if o.EndDate.Before(o.StartDate) {
		return fmt.Errorf("visit date range is inverted: end %s is before start %s", o.EndDate.Format("2006-01-02"), o.StartDate.Format("2006-01-02"))
	}
	return nil
}

// ResolveSeed returns the effective seed for the run. Seed 0 derives a
// deterministic seed from the output name, so the same destination
// yields the same dataset.
func (o *Options) ResolveSeed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(o.Output)) // hash.Write never returns an error
	return int64(h.Sum64())
}

// Summary reports what a completed run produced.
type Summary struct {
	Rows         int
	Seed         int64
	OverlapLinks int
	Elapsed      time.Duration
}

// Generate runs the full pipeline and writes the dataset to
// opts.Output. The output file is created eagerly so sink problems
// surface before any synthesis work.
func Generate(opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return Summary{}, fmt.Errorf("create output file: %w", err)
	}
	summary, genErr := GenerateTo(f, opts)
	if closeErr := f.Close(); genErr == nil && closeErr != nil {
		return Summary{}, fmt.Errorf("close output file: %w", closeErr)
	}
	return summary, genErr
}

// GenerateTo runs the full pipeline against an arbitrary sink. The
// caller is expected to have validated the options (Generate does).
func GenerateTo(w io.Writer, opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}

	logger := newLogger(opts.Quiet)
	seed := opts.ResolveSeed()
	if opts.Seed == 0 {
		logger.Info().Int64("seed", seed).Str("output", opts.Output).Msg("derived seed from output name")
	} else {
		logger.Info().Int64("seed", seed).Msg("using configured seed")
	}

	start := time.Now()

	// One RNG and one faker for the whole run, both derived from the
	// seed. Every consumer draws in a fixed order; reordering draws
	// changes every subsequent row.
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	faker := gofakeit.NewFaker(rand.NewPCG(uint64(seed), uint64(seed)+1), false)

	cat := catalog.Build()
	pools := pool.Build(cat, opts.Pools, rng, faker)
	overlap := pool.ResolveOverlap(cat, pools.Doctors, pools.Staff, opts.DoctorAlsoStaffFraction, rng)
	logger.Info().
		Int("patients", len(pools.Patients)).
		Int("doctors", len(pools.Doctors)).
		Int("staff", pools.Staff.Len()).
		Int("overlap_links", overlap.Len()).
		Msg("entity pools built")

	plan, err := visit.PlanVisits(pools.Patients, opts.TotalRows, rng)
	if err != nil {
		return Summary{}, fmt.Errorf("plan visits: %w", err)
	}

	writer, err := output.NewChunkedWriter(w, visit.Header(), opts.ChunkSize)
	if err != nil {
		return Summary{}, err
	}

	synth := visit.NewSynthesizer(cat, pools, overlap, visit.Config{
		AdmissionProb:           opts.AdmissionProb,
		SameDayDischargeProb:    opts.SameDayDischargeProb,
		StaffActingAsDoctorProb: opts.StaffActingAsDoctorProb,
		MultiDiagnosisProb:      opts.MultiDiagnosisProb,
		StartDate:               opts.StartDate,
		EndDate:                 opts.EndDate,
	}, rng)

	total := len(plan.Sequence)
	for i, patientIdx := range plan.Sequence {
		row := synth.Next(patientIdx)
		if err := writer.Write(row.Record()); err != nil {
			return Summary{}, err
		}
		done := i + 1
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(done, total)
		}
		if done%opts.ChunkSize == 0 {
			logger.Info().Int("rows", done).Int("total", total).Msg("chunk flushed")
		}
	}
	if err := writer.Flush(); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Rows:         writer.Rows(),
		Seed:         seed,
		OverlapLinks: overlap.Len(),
		Elapsed:      time.Since(start),
	}
	logger.Info().
		Int("rows", summary.Rows).
		Dur("elapsed", summary.Elapsed).
		Msg("generation complete")
	return summary, nil
}

// newLogger builds the run logger. Quiet runs log nothing; everything
// else goes to stderr so the data stream can use stdout.
func newLogger(quiet bool) zerolog.Logger {
	if quiet {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
