// Package job loads YAML job files that name the three input reports and
// the spreadsheet to write.
//
//	name: access-sw3
//	running_config: sw3/show_run.txt
//	interface_status: sw3/show_int_status.txt
//	cdp_neighbors: sw3/show_cdp_detail.txt
//	output: reports/access-sw3.xlsx
//	options:
//	  canonical_keys: true
//	  lenient_cdp: false
package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/newtron-network/ios2xlsx/pkg/util"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// Job is one export run.
type Job struct {
	Name            string  `yaml:"name,omitempty" validate:"omitempty,max=64"`
	RunningConfig   string  `yaml:"running_config" validate:"required"`
	InterfaceStatus string  `yaml:"interface_status" validate:"required"`
	CDPNeighbors    string  `yaml:"cdp_neighbors" validate:"required"`
	Output          string  `yaml:"output,omitempty" validate:"omitempty,endswith=.xlsx"`
	Options         Options `yaml:"options,omitempty"`
}

// Options are tri-state so an unset value falls through to settings.
type Options struct {
	CanonicalKeys *bool `yaml:"canonical_keys,omitempty"`
	LenientCDP    *bool `yaml:"lenient_cdp,omitempty"`
}

// Load reads, validates and resolves a job file. Relative paths in the file
// are taken relative to the file's directory. Errors wrap util.ErrInvalidJob.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", util.ErrInvalidJob, path, err)
	}

	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", util.ErrInvalidJob, path, err)
	}

	j.Resolve(filepath.Dir(path))
	return j, nil
}

// Parse decodes and validates a job document. Unknown keys are rejected.
func Parse(data []byte) (*Job, error) {
	var j Job
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("parsing job YAML: %w", err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks required fields and that the three inputs are distinct.
func (j *Job) Validate() error {
	vb := &util.ValidationBuilder{}

	if err := validate.Struct(j); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, e := range verrs {
			vb.AddError(describe(e))
		}
	}

	seen := map[string]string{}
	for _, in := range []struct{ field, path string }{
		{"running_config", j.RunningConfig},
		{"interface_status", j.InterfaceStatus},
		{"cdp_neighbors", j.CDPNeighbors},
	} {
		if in.path == "" {
			continue
		}
		clean := filepath.Clean(in.path)
		if prev, ok := seen[clean]; ok {
			vb.AddErrorf("%s: same file as %s", in.field, prev)
		}
		seen[clean] = in.field
	}

	return vb.Build()
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", e.Field())
	case "max":
		return fmt.Sprintf("%s: must not exceed %s characters", e.Field(), e.Param())
	case "endswith":
		return fmt.Sprintf("%s: must end with %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s: validation failed (%s)", e.Field(), e.Tag())
	}
}

// Resolve makes relative paths relative to dir.
func (j *Job) Resolve(dir string) {
	for _, p := range []*string{&j.RunningConfig, &j.InterfaceStatus, &j.CDPNeighbors, &j.Output} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
