package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock_exporter.go -package=sheetmock github.com/smkun/MarvelPowers/internal/sheet Exporter

// Exporter writes a record as a PDF sheet
type Exporter interface {
	// Export renders input.Record to input.Path.
	// Returns a notice (FailedPrecondition) when nothing is selected
	// Returns errors.IO (KindExport) when the destination cannot be written
	// Returns errors.Render (KindExport) when drawing fails
	// No file is left at input.Path on failure
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
}

// ExportInput defines the input for exporting a sheet
type ExportInput struct {
	Path   string
	Record entities.Record
}

// ExportOutput defines the output of an export
type ExportOutput struct {
	Path  string
	Pages int
}

// Config holds the dependencies for an Exporter
type Config struct {
	Powers Source
	Traits Source
	Preset entities.Preset

	// Layout defaults to LayoutFor(Preset)
	Layout *Layout

	// NewDocument defaults to NewPDFDocument
	NewDocument func(Layout) Document

	// Clock stamps the document dates. Defaults to the system clock.
	Clock clock.Clock
}

// Validate ensures the config is complete
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Powers == nil {
		vb.RequiredField("Powers")
	}
	if c.Preset.IncludeTraits && c.Traits == nil {
		vb.RequiredField("Traits")
	}
	if c.Preset.Name == "" {
		vb.RequiredField("Preset")
	}
	if c.Layout != nil {
		if err := c.Layout.Validate(); err != nil {
			vb.Field("Layout", errors.GetMessage(err))
		}
	}

	return vb.Build()
}

type exporter struct {
	powers      Source
	traits      Source
	preset      entities.Preset
	layout      Layout
	newDocument func(Layout) Document
	clock       clock.Clock
}

// NewExporter creates an Exporter
func NewExporter(cfg *Config) (Exporter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	layout := LayoutFor(cfg.Preset)
	if cfg.Layout != nil {
		layout = *cfg.Layout
	}

	newDocument := cfg.NewDocument
	if newDocument == nil {
		newDocument = func(l Layout) Document { return NewPDFDocument(l) }
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &exporter{
		powers:      cfg.Powers,
		traits:      cfg.Traits,
		preset:      cfg.Preset,
		layout:      layout,
		newDocument: newDocument,
		clock:       clk,
	}, nil
}

func (e *exporter) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Path) == "" {
		return nil, errors.InvalidArgument("path is required").WithKind(errors.KindExport)
	}
	if e.isEmpty(input.Record) {
		return nil, errors.Notice(errors.CodeFailedPrecondition, e.preset.EmptyNotice)
	}

	doc := e.newDocument(e.layout)
	doc.SetCreationDate(e.clock.Now())
	if hero := strings.TrimSpace(input.Record.HeroName); hero != "" {
		doc.SetTitle(fmt.Sprintf(e.preset.HeaderFormat, hero))
	}

	sections := BuildSections(&BuildInput{
		Record:   input.Record,
		Powers:   e.powers,
		Traits:   e.traits,
		Preset:   e.preset,
		Layout:   e.layout,
		Measurer: doc,
	})
	pages := Paginate(sections, e.layout)

	if err := Render(pages, e.layout, doc); err != nil {
		return nil, errors.Wrap(err, "An error occurred while generating the PDF").
			WithKind(errors.KindExport).
			WithMeta("path", input.Path)
	}

	if err := writeAtomic(input.Path, doc); err != nil {
		return nil, err
	}

	slog.Info("Sheet exported",
		"path", input.Path,
		"preset", e.preset.Name,
		"pages", len(pages),
		"powers", len(input.Record.SelectedPowers),
		"traits", len(input.Record.SelectedTraits),
	)

	return &ExportOutput{
		Path:  input.Path,
		Pages: len(pages),
	}, nil
}

func (e *exporter) isEmpty(rec entities.Record) bool {
	if len(rec.SelectedPowers) > 0 {
		return false
	}
	return !e.preset.IncludeTraits || len(rec.SelectedTraits) == 0
}

// writeAtomic writes doc to a temp file beside path and renames it into place
func writeAtomic(path string, doc Document) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeIO, "Could not open '%s' for writing", path).
			WithKind(errors.KindExport).
			WithMeta("path", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = doc.Output(tmp); err != nil {
		if derr := doc.Error(); derr != nil {
			return errors.WrapWithCodef(derr, errors.CodeRender, "An error occurred while generating the PDF").
				WithKind(errors.KindExport).
				WithMeta("path", path)
		}
		return errors.WrapWithCodef(err, errors.CodeIO, "Could not write '%s'", path).
			WithKind(errors.KindExport).
			WithMeta("path", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.WrapWithCodef(err, errors.CodeIO, "Could not write '%s'", path).
			WithKind(errors.KindExport).
			WithMeta("path", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapWithCodef(err, errors.CodeIO, "Could not write '%s'", path).
			WithKind(errors.KindExport).
			WithMeta("path", path)
	}
	return nil
}
