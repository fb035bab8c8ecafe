// Package column holds the authoritative column-to-bucket configuration and
// the integrity gate that validates it against a dataset header.
package column

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"surveyprep/domain/core"
)

// Bucket is the mutually-exclusive semantic category of a column. It drives
// both cleaning and artifact generation.
type Bucket string

const (
	BucketKey         Bucket = "key"
	BucketTarget      Bucket = "target"
	BucketNumerical   Bucket = "numerical"
	BucketSingleLabel Bucket = "single_label"
	BucketMultiLabel  Bucket = "multi_label"
)

// Spec is the configuration entry for one column. AsciiFilter is explicit
// configuration: no column is ever special-cased by name in code.
type Spec struct {
	Name        string
	Bucket      Bucket
	AsciiFilter bool
}

// Table is the immutable column-to-bucket configuration, constructed once
// from a data file and passed explicitly to every component that needs it.
type Table struct {
	specs  map[string]Spec
	target string
	hash   core.TableHash
}

// tableFile is the YAML shape of a column table. It mirrors how a curator
// registers columns: five bucket lists plus the ascii-filter flags.
type tableFile struct {
	Target      string   `yaml:"target"`
	Key         []string `yaml:"key"`
	Numerical   []string `yaml:"numerical"`
	SingleLabel []string `yaml:"single_label"`
	MultiLabel  []string `yaml:"multi_label"`
	AsciiFilter []string `yaml:"ascii_filter"`
}

// LoadTable reads and validates a column table from a YAML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.NewMissingInputError(path, "provide a column table, see configs/columns.yaml")
		}
		return nil, fmt.Errorf("read column table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable builds a Table from YAML bytes. Registering a column in two
// buckets, registering none, or flagging an unregistered column for ascii
// filtering are all configuration errors.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, core.NewInvalidConfigError("column table", err.Error())
	}
	if file.Target == "" {
		return nil, core.NewInvalidConfigError("column table", "target column is required")
	}

	specs := make(map[string]Spec)
	register := func(names []string, bucket Bucket) error {
		for _, name := range names {
			if name == "" {
				return core.NewInvalidConfigError("column table", fmt.Sprintf("empty column name in %s bucket", bucket))
			}
			if prev, dup := specs[name]; dup {
				return core.NewInvalidConfigError("column table",
					fmt.Sprintf("column %q registered in both %s and %s", name, prev.Bucket, bucket))
			}
			specs[name] = Spec{Name: name, Bucket: bucket}
		}
		return nil
	}

	if err := register([]string{file.Target}, BucketTarget); err != nil {
		return nil, err
	}
	if err := register(file.Key, BucketKey); err != nil {
		return nil, err
	}
	if err := register(file.Numerical, BucketNumerical); err != nil {
		return nil, err
	}
	if err := register(file.SingleLabel, BucketSingleLabel); err != nil {
		return nil, err
	}
	if err := register(file.MultiLabel, BucketMultiLabel); err != nil {
		return nil, err
	}

	for _, name := range file.AsciiFilter {
		spec, ok := specs[name]
		if !ok {
			return nil, core.NewInvalidConfigError("column table",
				fmt.Sprintf("ascii_filter names unregistered column %q", name))
		}
		spec.AsciiFilter = true
		specs[name] = spec
	}

	return &Table{specs: specs, target: file.Target, hash: core.NewTableHash(data)}, nil
}

// Lookup returns the spec for one column.
func (t *Table) Lookup(name string) (Spec, bool) {
	spec, ok := t.specs[name]
	return spec, ok
}

// Target returns the designated target column name.
func (t *Table) Target() string { return t.target }

// Len returns the number of registered columns.
func (t *Table) Len() int { return len(t.specs) }

// Hash identifies this table revision for the run manifest.
func (t *Table) Hash() core.TableHash { return t.hash }
