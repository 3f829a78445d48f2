package sheet_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	mockclock "github.com/smkun/MarvelPowers/internal/pkg/clock/mock"
	"github.com/smkun/MarvelPowers/internal/sheet"
	"github.com/smkun/MarvelPowers/internal/testutils"
)

type drawCall struct {
	font  sheet.Font
	color sheet.Color
	x, y  float64
	text  string
}

// recordingDocument captures drawing calls instead of producing a PDF
type recordingDocument struct {
	sheet.MonospaceMeasurer
	pages     int
	font      sheet.Font
	color     sheet.Color
	calls     []drawCall
	title     string
	created   time.Time
	drawErr   error
	outputErr error
}

func (d *recordingDocument) AddPage()               { d.pages++ }
func (d *recordingDocument) SetFont(f sheet.Font)   { d.font = f }
func (d *recordingDocument) SetColor(c sheet.Color) { d.color = c }
func (d *recordingDocument) SetTitle(title string)  { d.title = title }
func (d *recordingDocument) Error() error           { return d.drawErr }
func (d *recordingDocument) SetCreationDate(t time.Time) {
	d.created = t
}
func (d *recordingDocument) Text(x, y float64, text string) {
	d.calls = append(d.calls, drawCall{font: d.font, color: d.color, x: x, y: y, text: text})
}

func (d *recordingDocument) Output(w io.Writer) error {
	if d.outputErr != nil {
		return d.outputErr
	}
	_, err := w.Write([]byte("%PDF-fake"))
	return err
}

type ExporterTestSuite struct {
	suite.Suite
	ctx    context.Context
	dir    string
	record entities.Record
}

func (s *ExporterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
	s.record = entities.Record{
		HeroName:       "Thor",
		SelectedPowers: []string{"Fireball", "Flight"},
		SelectedTraits: []string{"Asgardian"},
	}
}

func (s *ExporterTestSuite) newExporter(preset entities.Preset, doc *recordingDocument) sheet.Exporter {
	cfg := &sheet.Config{
		Powers: testutils.TestPowers(),
		Traits: testutils.TestTraits(),
		Preset: preset,
	}
	if doc != nil {
		cfg.NewDocument = func(sheet.Layout) sheet.Document { return doc }
	}
	e, err := sheet.NewExporter(cfg)
	s.Require().NoError(err)
	return e
}

func (s *ExporterTestSuite) dirEntries() []string {
	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (s *ExporterTestSuite) TestNewExporter() {
	s.Run("nil config", func() {
		_, err := sheet.NewExporter(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("combined needs traits", func() {
		_, err := sheet.NewExporter(&sheet.Config{
			Powers: testutils.TestPowers(),
			Preset: entities.Combined,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("powers only does not", func() {
		_, err := sheet.NewExporter(&sheet.Config{
			Powers: testutils.TestPowers(),
			Preset: entities.PowersOnly,
		})
		s.NoError(err)
	})

	s.Run("bad layout", func() {
		layout := sheet.LetterOneColumn
		layout.Columns = 0
		_, err := sheet.NewExporter(&sheet.Config{
			Powers: testutils.TestPowers(),
			Preset: entities.PowersOnly,
			Layout: &layout,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ExporterTestSuite) TestExportWritesPDF() {
	path := filepath.Join(s.dir, "Thor_powers_and_traits.pdf")

	out, err := s.newExporter(entities.Combined, nil).Export(s.ctx, &sheet.ExportInput{
		Path:   path,
		Record: s.record,
	})
	s.Require().NoError(err)
	s.Equal(path, out.Path)
	s.Equal(1, out.Pages)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(data, []byte("%PDF-")))
	s.Equal([]string{"Thor_powers_and_traits.pdf"}, s.dirEntries(), "no temp files left behind")
}

func (s *ExporterTestSuite) TestExportStampsCreationDate() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	at := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	clk := mockclock.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(at)

	doc := &recordingDocument{MonospaceMeasurer: sheet.MonospaceMeasurer{Advance: 0.01}}
	e, err := sheet.NewExporter(&sheet.Config{
		Powers:      testutils.TestPowers(),
		Traits:      testutils.TestTraits(),
		Preset:      entities.Combined,
		NewDocument: func(sheet.Layout) sheet.Document { return doc },
		Clock:       clk,
	})
	s.Require().NoError(err)

	_, err = e.Export(s.ctx, &sheet.ExportInput{Path: filepath.Join(s.dir, "a.pdf"), Record: s.record})
	s.Require().NoError(err)
	s.Equal(at, doc.created)
}

func (s *ExporterTestSuite) TestExportReplacesExistingFile() {
	path := filepath.Join(s.dir, "sheet.pdf")
	s.Require().NoError(os.WriteFile(path, []byte("old"), 0o600))

	_, err := s.newExporter(entities.PowersOnly, nil).Export(s.ctx, &sheet.ExportInput{Path: path, Record: s.record})
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(data, []byte("%PDF-")))
}

func (s *ExporterTestSuite) TestExportStylesLines() {
	doc := &recordingDocument{MonospaceMeasurer: sheet.MonospaceMeasurer{Advance: 0.01}}
	_, err := s.newExporter(entities.Combined, doc).Export(s.ctx, &sheet.ExportInput{
		Path:   filepath.Join(s.dir, "out.pdf"),
		Record: s.record,
	})
	s.Require().NoError(err)

	s.Equal(1, doc.pages)
	s.Equal("Thor's Powers and Traits", doc.title)

	byText := make(map[string]drawCall)
	for _, c := range doc.calls {
		s.NotEmpty(c.text, "blank lines are not drawn")
		byText[c.text] = c
	}

	header := byText["Thor's Powers and Traits"]
	s.Equal(sheet.Black, header.color)
	s.Equal(sheet.FontBold, header.font.Style)
	s.InDelta(11, header.font.Size, 1e-9)
	s.InDelta(50, header.y, 1e-9)

	title := byText[sheet.PowersTitle]
	s.Equal(sheet.FontBold, title.font.Style)
	s.InDelta(10, title.font.Size, 1e-9)

	s.Equal(sheet.Red, byText["Fireball"].color)
	s.Equal(sheet.FontBold, byText["Fireball"].font.Style)
	s.Equal(sheet.Blue, byText["Asgardian"].color)

	desc := byText["Description: Hurl a ball of flame."]
	s.Equal(sheet.Black, desc.color)
	s.Equal(sheet.FontRegular, desc.font.Style)
	s.InDelta(9, desc.font.Size, 1e-9)
}

func (s *ExporterTestSuite) TestExportEmptySelection() {
	testCases := []struct {
		name    string
		preset  entities.Preset
		record  entities.Record
		message string
	}{
		{
			name:    "combined",
			preset:  entities.Combined,
			record:  entities.Record{HeroName: "Thor", SelectedPowers: []string{}, SelectedTraits: []string{}},
			message: "Your selected powers and traits list is empty.",
		},
		{
			name:    "powers only ignores traits",
			preset:  entities.PowersOnly,
			record:  entities.Record{HeroName: "Thor", SelectedTraits: []string{"Brave"}},
			message: "Your selected powers list is empty.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := filepath.Join(s.dir, tc.name+".pdf")
			out, err := s.newExporter(tc.preset, nil).Export(s.ctx, &sheet.ExportInput{Path: path, Record: tc.record})
			s.Require().Error(err)
			s.Nil(out)
			s.True(errors.IsNotice(err))
			s.True(errors.IsFailedPrecondition(err))
			s.Equal(tc.message, errors.GetMessage(err))
			s.NoFileExists(path)
		})
	}
}

func (s *ExporterTestSuite) TestExportTraitsOnlyIsNotEmpty() {
	doc := &recordingDocument{MonospaceMeasurer: sheet.MonospaceMeasurer{Advance: 0.01}}
	_, err := s.newExporter(entities.Combined, doc).Export(s.ctx, &sheet.ExportInput{
		Path:   filepath.Join(s.dir, "traits.pdf"),
		Record: entities.Record{SelectedTraits: []string{"Brave"}},
	})
	s.NoError(err)
}

func (s *ExporterTestSuite) TestExportUnwritableDestination() {
	path := filepath.Join(s.dir, "missing", "dir", "out.pdf")

	_, err := s.newExporter(entities.Combined, nil).Export(s.ctx, &sheet.ExportInput{Path: path, Record: s.record})
	s.Require().Error(err)
	s.True(errors.IsIO(err))
	s.Equal(errors.KindExport, errors.GetKind(err))
	s.False(errors.IsFatal(err))
	s.NoFileExists(path)
}

func (s *ExporterTestSuite) TestExportDrawingFailure() {
	doc := &recordingDocument{
		MonospaceMeasurer: sheet.MonospaceMeasurer{Advance: 0.01},
		drawErr:           errors.Internal("font not found"),
	}
	path := filepath.Join(s.dir, "out.pdf")

	_, err := s.newExporter(entities.Combined, doc).Export(s.ctx, &sheet.ExportInput{Path: path, Record: s.record})
	s.Require().Error(err)
	s.True(errors.IsRender(err))
	s.Equal(errors.KindExport, errors.GetKind(err))
	s.Empty(s.dirEntries())
}

func (s *ExporterTestSuite) TestExportOutputFailureLeavesNothing() {
	doc := &recordingDocument{
		MonospaceMeasurer: sheet.MonospaceMeasurer{Advance: 0.01},
		outputErr:         errors.New(errors.CodeInternal, "disk full"),
	}
	path := filepath.Join(s.dir, "out.pdf")

	_, err := s.newExporter(entities.Combined, doc).Export(s.ctx, &sheet.ExportInput{Path: path, Record: s.record})
	s.Require().Error(err)
	s.True(errors.IsIO(err))
	s.Empty(s.dirEntries())
}

func (s *ExporterTestSuite) TestExportRequiresPath() {
	_, err := s.newExporter(entities.Combined, nil).Export(s.ctx, &sheet.ExportInput{Record: s.record})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.newExporter(entities.Combined, nil).Export(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExporterTestSuite) TestExportManyPagesWithRealFonts() {
	powers := make([]string, 0, 120)
	for i := 0; i < 40; i++ {
		powers = append(powers, "Fireball", "Flight", "Blizzard")
	}
	// duplicates are fine for the sheet; the selection model prevents them upstream
	out, err := s.newExporter(entities.PowersOnly, nil).Export(s.ctx, &sheet.ExportInput{
		Path:   filepath.Join(s.dir, "long.pdf"),
		Record: entities.Record{HeroName: "Storm", SelectedPowers: powers},
	})
	s.Require().NoError(err)
	s.Greater(out.Pages, 1)
}

func TestExporterTestSuite(t *testing.T) {
	suite.Run(t, new(ExporterTestSuite))
}
