package wizard

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/hospitalforge/internal/gen"
	"github.com/mrsinham/hospitalforge/internal/pool"
)

const dateLayout = "2006-01-02"

// Config is the YAML representation of a generation run, used by
// --config and --save-config.
type Config struct {
	Rows      int    `yaml:"rows"`
	Output    string `yaml:"output"`
	Seed      int64  `yaml:"seed"`
	ChunkSize int    `yaml:"chunk_size"`

	Pools PoolConfig `yaml:"pools"`

	DoctorStaffFraction  float64 `yaml:"doctor_staff_fraction"`
	StaffAsDoctorProb    float64 `yaml:"staff_as_doctor_prob"`
	AdmissionProb        float64 `yaml:"admission_prob"`
	SameDayDischargeProb float64 `yaml:"same_day_discharge_prob"`
	MultiDiagnosisProb   float64 `yaml:"multi_diagnosis_prob"`

	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

// PoolConfig holds the per-entity pool sizes.
type PoolConfig struct {
	Patients  int `yaml:"patients"`
	Doctors   int `yaml:"doctors"`
	Staff     int `yaml:"staff"`
	Beds      int `yaml:"beds"`
	Equipment int `yaml:"equipment"`
	Medicines int `yaml:"medicines"`
	Hospitals int `yaml:"hospitals"`
}

// LoadFromYAML reads a run configuration from a YAML file.
func LoadFromYAML(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveToYAML writes a run configuration to a YAML file.
func SaveToYAML(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ToOptions converts the YAML configuration into generator options.
// Validation of the resulting options is the caller's job.
func (c Config) ToOptions() (gen.Options, error) {
	opts := gen.DefaultOptions()
	opts.TotalRows = c.Rows
	if c.Output != "" {
		opts.Output = c.Output
	}
	opts.Seed = c.Seed
	if c.ChunkSize != 0 {
		opts.ChunkSize = c.ChunkSize
	}
	opts.Pools = pool.Sizes{
		Patients:  c.Pools.Patients,
		Doctors:   c.Pools.Doctors,
		Staff:     c.Pools.Staff,
		Beds:      c.Pools.Beds,
		Equipment: c.Pools.Equipment,
		Medicines: c.Pools.Medicines,
		Hospitals: c.Pools.Hospitals,
	}
	opts.DoctorAlsoStaffFraction = c.DoctorStaffFraction
	opts.StaffActingAsDoctorProb = c.StaffAsDoctorProb
	opts.AdmissionProb = c.AdmissionProb
	opts.SameDayDischargeProb = c.SameDayDischargeProb
	opts.MultiDiagnosisProb = c.MultiDiagnosisProb

	if c.StartDate != "" {
		start, err := time.Parse(dateLayout, c.StartDate)
		if err != nil {
			return opts, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
		}
		opts.StartDate = start
	}
	if c.EndDate != "" {
		end, err := time.Parse(dateLayout, c.EndDate)
		if err != nil {
			return opts, fmt.Errorf("invalid end_date %q: %w", c.EndDate, err)
		}
		opts.EndDate = end
	}
	return opts, nil
}

// FromOptions exports generator options as a YAML configuration, used
// by --save-config.
func FromOptions(opts gen.Options) Config {
	return Config{
		Rows:      opts.TotalRows,
		Output:    opts.Output,
		Seed:      opts.Seed,
		ChunkSize: opts.ChunkSize,
		Pools: PoolConfig{
			Patients:  opts.Pools.Patients,
			Doctors:   opts.Pools.Doctors,
			Staff:     opts.Pools.Staff,
			Beds:      opts.Pools.Beds,
			Equipment: opts.Pools.Equipment,
			Medicines: opts.Pools.Medicines,
			Hospitals: opts.Pools.Hospitals,
		},
		DoctorStaffFraction:  opts.DoctorAlsoStaffFraction,
		StaffAsDoctorProb:    opts.StaffActingAsDoctorProb,
		AdmissionProb:        opts.AdmissionProb,
		SameDayDischargeProb: opts.SameDayDischargeProb,
		MultiDiagnosisProb:   opts.MultiDiagnosisProb,
		StartDate:            opts.StartDate.Format(dateLayout),
		EndDate:              opts.EndDate.Format(dateLayout),
	}
}
