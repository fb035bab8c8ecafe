// Package emit derives and serializes the output artifacts: the field
// schema, the transform directives, the dataset profile, and the run
// manifest.
package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"surveyprep/domain/column"
	"surveyprep/domain/core"
	"surveyprep/internal/profile"
)

// Schema types understood by the downstream preparation tool.
const (
	TypeFloat   = "FLOAT"
	TypeInteger = "INTEGER"
	TypeString  = "STRING"
)

// Transform names understood by the downstream preparation tool.
const (
	TransformScale      = "scale"
	TransformKey        = "key"
	TransformTarget     = "target"
	TransformBagOfWords = "bag_of_words"
	TransformOneHot     = "one_hot"
)

// Artifact file names, fixed relative to the output directory.
const (
	SchemaFile     = "schema.json"
	TransformsFile = "transforms.json"
	ProfileFile    = "profile.json"
	ManifestFile   = "run_manifest.json"
)

// SchemaEntry describes one output field.
type SchemaEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransformDirective names the encoding for one column.
type TransformDirective struct {
	Transform string `json:"transform"`
}

// SchemaEntries derives the field schema, one entry per header in header
// order. An unknown bucket fails with ErrUnclassifiedColumn: the classifier
// already guarantees coverage, so hitting this means a logic bug in the
// bucket table, and no partial artifact must be written.
func SchemaEntries(cls *column.Classification) ([]SchemaEntry, error) {
	entries := make([]SchemaEntry, 0, len(cls.Specs()))
	for _, spec := range cls.Specs() {
		var fieldType string
		switch spec.Bucket {
		case column.BucketNumerical:
			fieldType = TypeFloat
		case column.BucketKey:
			fieldType = TypeInteger
		case column.BucketTarget, column.BucketSingleLabel, column.BucketMultiLabel:
			fieldType = TypeString
		default:
			return nil, core.NewUnclassifiedColumnError(spec.Name, string(spec.Bucket))
		}
		entries = append(entries, SchemaEntry{Name: spec.Name, Type: fieldType})
	}
	return entries, nil
}

// TransformDirectives derives the transform for every header.
func TransformDirectives(cls *column.Classification) (map[string]TransformDirective, error) {
	directives := make(map[string]TransformDirective, len(cls.Specs()))
	for _, spec := range cls.Specs() {
		var transform string
		switch spec.Bucket {
		case column.BucketNumerical:
			transform = TransformScale
		case column.BucketKey:
			transform = TransformKey
		case column.BucketTarget:
			transform = TransformTarget
		case column.BucketMultiLabel:
			transform = TransformBagOfWords
		case column.BucketSingleLabel:
			transform = TransformOneHot
		default:
			return nil, core.NewUnclassifiedColumnError(spec.Name, string(spec.Bucket))
		}
		directives[spec.Name] = TransformDirective{Transform: transform}
	}
	return directives, nil
}

// Emitter writes artifacts under one output directory. There is no partial
// write recovery: a failed run is retried from scratch, so derivation happens
// before the first byte is written.
type Emitter struct {
	dir string
	log *zap.Logger
}

// New creates an emitter rooted at dir.
func New(dir string, log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{dir: dir, log: log}
}

// WriteSchema derives and writes schema.json.
func (e *Emitter) WriteSchema(cls *column.Classification) error {
	entries, err := SchemaEntries(cls)
	if err != nil {
		return err
	}
	return e.writeJSON(SchemaFile, entries)
}

// WriteTransforms derives and writes transforms.json.
func (e *Emitter) WriteTransforms(cls *column.Classification) error {
	directives, err := TransformDirectives(cls)
	if err != nil {
		return err
	}
	return e.writeJSON(TransformsFile, directives)
}

// WriteProfile writes profile.json.
func (e *Emitter) WriteProfile(profiles []profile.ColumnProfile) error {
	return e.writeJSON(ProfileFile, profiles)
}

// WriteManifest writes run_manifest.json.
func (e *Emitter) WriteManifest(m *RunManifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return e.writeJSON(ManifestFile, m)
}

func (e *Emitter) writeJSON(name string, payload any) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	e.log.Debug("wrote artifact", zap.String("path", path), zap.Int("bytes", len(data)+1))
	return nil
}
