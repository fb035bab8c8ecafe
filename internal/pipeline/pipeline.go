// Package pipeline wires the whole preparation run: read, classify, clean,
// split, profile, emit. The run is single-threaded and one-shot; the dataset
// fits in memory and has exactly one reader and one writer at any time.
package pipeline

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"surveyprep/adapters/csvio"
	"surveyprep/adapters/excel"
	"surveyprep/domain/column"
	"surveyprep/domain/core"
	"surveyprep/domain/table"
	"surveyprep/internal/clean"
	"surveyprep/internal/config"
	"surveyprep/internal/emit"
	"surveyprep/internal/profile"
	"surveyprep/internal/split"
)

// Output partition file names, fixed relative to the output directory.
const (
	TrainFile = "train.csv"
	EvalFile  = "eval.csv"
)

// Pipeline runs the preparation steps against one configuration.
type Pipeline struct {
	cfg *config.Config
	log *zap.Logger
}

// New builds a pipeline.
func New(cfg *config.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Check runs only the configuration-integrity gate: the column table must
// cover the schema CSV header exactly. Nothing is written.
func (p *Pipeline) Check() (*column.Classification, error) {
	cls, err := p.classify()
	if err != nil {
		return nil, err
	}
	p.log.Info("column table matches header",
		zap.Int("columns", len(cls.Headers())),
		zap.String("target", cls.Target()))
	return cls, nil
}

// Profile loads and cleans the dataset, then writes profile.json only.
func (p *Pipeline) Profile() error {
	cls, err := p.classify()
	if err != nil {
		return err
	}
	ds, err := p.loadDataset(cls.Headers())
	if err != nil {
		return err
	}
	clean.New(cls, p.log).Clean(ds)

	profiles, err := profile.Build(ds, cls)
	if err != nil {
		return err
	}
	return emit.New(p.cfg.OutputDir(), p.log).WriteProfile(profiles)
}

// Run executes the full pipeline and returns the run manifest.
func (p *Pipeline) Run() (*emit.RunManifest, error) {
	cls, err := p.classify()
	if err != nil {
		return nil, err
	}

	// Derive both artifact payloads before anything is written: a bucket
	// that maps to no schema type or transform halts the run with no
	// partial output.
	if _, err := emit.SchemaEntries(cls); err != nil {
		return nil, err
	}
	if _, err := emit.TransformDirectives(cls); err != nil {
		return nil, err
	}

	ds, err := p.loadDataset(cls.Headers())
	if err != nil {
		return nil, err
	}
	p.log.Info("dataset loaded",
		zap.String("file", p.cfg.DataFile),
		zap.Int("rows", ds.NumRows()),
		zap.Int("columns", ds.NumColumns()))

	cellsCleaned := clean.New(cls, p.log).Clean(ds)
	p.log.Info("dataset cleaned", zap.Int("cells_changed", cellsCleaned))

	partitioner, err := split.New(p.cfg.TrainRatio, p.cfg.Seed)
	if err != nil {
		return nil, err
	}
	res := partitioner.Split(ds)
	p.log.Info("rows partitioned",
		zap.Int("train", res.Stats.TrainRows),
		zap.Int("eval", res.Stats.EvalRows),
		zap.Int64("seed", res.Stats.Seed))

	profiles, err := profile.Build(ds, cls)
	if err != nil {
		return nil, err
	}

	outDir := p.cfg.OutputDir()
	if err := csvio.WriteDataset(filepath.Join(outDir, TrainFile), res.Train); err != nil {
		return nil, err
	}
	if err := csvio.WriteDataset(filepath.Join(outDir, EvalFile), res.Eval); err != nil {
		return nil, err
	}

	emitter := emit.New(outDir, p.log)
	if err := emitter.WriteSchema(cls); err != nil {
		return nil, err
	}
	if err := emitter.WriteTransforms(cls); err != nil {
		return nil, err
	}
	if err := emitter.WriteProfile(profiles); err != nil {
		return nil, err
	}

	manifest := emit.NewRunManifest(p.cfg.SchemaFile, p.cfg.DataFile)
	manifest.ColumnCount = ds.NumColumns()
	manifest.RowCount = ds.NumRows()
	manifest.CellsCleaned = cellsCleaned
	manifest.TableHash = cls.TableHash()
	manifest.HeaderHash = core.ComputeHeaderHash(cls.Headers())
	manifest.Split = res.Stats
	if err := emitter.WriteManifest(manifest); err != nil {
		return nil, err
	}

	p.log.Info("artifacts written", zap.String("dir", outDir))
	return manifest, nil
}

func (p *Pipeline) classify() (*column.Classification, error) {
	tbl, err := column.LoadTable(p.cfg.ColumnTable)
	if err != nil {
		return nil, err
	}
	headers, err := csvio.ReadHeader(p.cfg.SchemaFile)
	if err != nil {
		return nil, err
	}
	return column.Classify(headers, tbl)
}

func (p *Pipeline) loadDataset(headers []string) (*table.Dataset, error) {
	if strings.EqualFold(filepath.Ext(p.cfg.DataFile), ".xlsx") {
		return excel.ReadDataset(p.cfg.DataFile, headers)
	}
	return csvio.ReadDataset(p.cfg.DataFile, headers)
}
