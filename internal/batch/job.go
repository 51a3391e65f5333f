// Package batch evaluates many transformation jobs concurrently and
// reports their results in input order.
package batch

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvtext/datefmt"
	"github.com/katalvlaran/lvtext/freqsub"
	"github.com/katalvlaran/lvtext/internal/config"
	"github.com/katalvlaran/lvtext/rle"
)

// Op names a transformation.
type Op string

// Supported operations.
const (
	OpEncode   Op = "encode"
	OpDecode   Op = "decode"
	OpFind     Op = "find"
	OpReformat Op = "reformat"
)

// ErrInvalidJob indicates a job that fails structural validation.
var ErrInvalidJob = errors.New("batch: invalid job")

// Job is one unit of work. K is only read by OpFind.
type Job struct {
	ID    string `yaml:"id" toml:"id" json:"id,omitempty" validate:"max=128"`
	Op    Op     `yaml:"op" toml:"op" json:"op" validate:"required,oneof=encode decode find reformat"`
	Input string `yaml:"input" toml:"input" json:"input"`
	K     uint   `yaml:"k" toml:"k" json:"k,omitempty"`
}

// jobFile is the on-disk shape: a top-level "jobs" list.
type jobFile struct {
	Jobs []Job `yaml:"jobs" toml:"jobs"`
}

var validate = validator.New()

// ValidateJobs checks every job and reports the first failure with its index.
func ValidateJobs(jobs []Job) error {
	for i, j := range jobs {
		if err := validate.Struct(j); err != nil {
			return fmt.Errorf("%w: job %d: %v", ErrInvalidJob, i, err)
		}
	}
	return nil
}

// LoadJobs reads a YAML (.yaml, .yml) or TOML (.toml) job file.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	var f jobFile
	if err := config.Unmarshal(path, data, &f); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if err := ValidateJobs(f.Jobs); err != nil {
		return nil, err
	}
	return f.Jobs, nil
}

// Settings carries the per-operation knobs a job is evaluated with.
type Settings struct {
	MaxDecodedLen int
	Strategy      freqsub.Strategy
}

// Eval runs a single job synchronously.
func Eval(j Job, s Settings) (string, error) {
	switch j.Op {
	case OpEncode:
		return rle.Encode(j.Input)
	case OpDecode:
		var opts []rle.DecodeOption
		if s.MaxDecodedLen > 0 {
			opts = append(opts, rle.WithMaxLen(s.MaxDecodedLen))
		}
		return rle.Decode(j.Input, opts...)
	case OpFind:
		return freqsub.Find(j.Input, j.K, freqsub.WithStrategy(s.Strategy)), nil
	case OpReformat:
		return datefmt.Reformat(j.Input)
	default:
		return "", fmt.Errorf("%w: unknown op %q", ErrInvalidJob, j.Op)
	}
}

// IsInvalidInput reports whether err is a caller-input error from one of
// the transformations, as opposed to an operational failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, rle.ErrInvalidCharacter) ||
		errors.Is(err, rle.ErrMalformed) ||
		errors.Is(err, rle.ErrTooLarge) ||
		errors.Is(err, datefmt.ErrInvalidFormat)
}
