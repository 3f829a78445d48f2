// Package builder implements the orchestrator behind every user action of
// the powers and traits builder: browsing the catalogs, editing the
// selection, saving and loading sessions and exporting sheets.
package builder

//go:generate mockgen -destination=mock/mock_service.go -package=buildermock github.com/smkun/MarvelPowers/internal/orchestrators/builder Service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/smkun/MarvelPowers/internal/catalog"
	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/pkg/filename"
	"github.com/smkun/MarvelPowers/internal/repositories/session"
	"github.com/smkun/MarvelPowers/internal/selection"
	"github.com/smkun/MarvelPowers/internal/sheet"
)

const (
	// DefaultSuggestions is used when SuggestInput.Limit is not set
	DefaultSuggestions = 3

	msgHeroNameRequired = "Please enter a hero name before saving."
)

// Service defines the user actions of the builder
type Service interface {
	// Catalog browsing
	ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error)
	FilterPowers(ctx context.Context, input *FilterPowersInput) (*FilterPowersOutput, error)
	ListTraits(ctx context.Context, input *ListTraitsInput) (*ListTraitsOutput, error)
	GetDetails(ctx context.Context, input *GetDetailsInput) (*GetDetailsOutput, error)
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)

	// Selection editing
	SetHeroName(ctx context.Context, input *SetHeroNameInput) (*SetHeroNameOutput, error)
	AddSelection(ctx context.Context, input *AddSelectionInput) (*AddSelectionOutput, error)
	RemoveSelection(ctx context.Context, input *RemoveSelectionInput) (*RemoveSelectionOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
	GetSelection(ctx context.Context, input *GetSelectionInput) (*GetSelectionOutput, error)

	// Persistence and export
	SaveSession(ctx context.Context, input *SaveSessionInput) (*SaveSessionOutput, error)
	LoadSession(ctx context.Context, input *LoadSessionInput) (*LoadSessionOutput, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)
	ExportSheet(ctx context.Context, input *ExportSheetInput) (*ExportSheetOutput, error)
	DefaultNames(ctx context.Context, input *DefaultNamesInput) (*DefaultNamesOutput, error)
}

// Config holds the dependencies for the builder orchestrator
type Config struct {
	Preset      entities.Preset
	Powers      *catalog.Catalog
	Traits      *catalog.Catalog
	Selection   *selection.Model
	SessionRepo session.Repository
	Exporter    sheet.Exporter

	// ExportDir receives sheets exported without an explicit path
	ExportDir string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Preset.Name == "" {
		vb.RequiredField("Preset")
	}
	if c.Powers == nil {
		vb.RequiredField("Powers")
	}
	if c.Preset.IncludeTraits && c.Traits == nil {
		vb.RequiredField("Traits")
	}
	if c.Selection == nil {
		vb.RequiredField("Selection")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Exporter == nil {
		vb.RequiredField("Exporter")
	}

	return vb.Build()
}

type orchestrator struct {
	preset      entities.Preset
	powers      *catalog.Catalog
	traits      *catalog.Catalog
	selection   *selection.Model
	sessionRepo session.Repository
	exporter    sheet.Exporter
	exportDir   string
}

// NewOrchestrator creates a new builder orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	return &orchestrator{
		preset:      cfg.Preset,
		powers:      cfg.Powers,
		traits:      cfg.Traits,
		selection:   cfg.Selection,
		sessionRepo: cfg.SessionRepo,
		exporter:    cfg.Exporter,
		exportDir:   exportDir,
	}, nil
}

func (o *orchestrator) ListGroups(_ context.Context, _ *ListGroupsInput) (*ListGroupsOutput, error) {
	return &ListGroupsOutput{Groups: o.powers.Groups()}, nil
}

func (o *orchestrator) FilterPowers(_ context.Context, input *FilterPowersInput) (*FilterPowersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Group != "" {
		return &FilterPowersOutput{Names: o.powers.ByGroup(input.Group, o.preset.GroupOrder)}, nil
	}
	return &FilterPowersOutput{Names: o.powers.BySubstring(input.Search, o.preset.SearchOrder)}, nil
}

func (o *orchestrator) ListTraits(_ context.Context, input *ListTraitsInput) (*ListTraitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.preset.IncludeTraits {
		return nil, errors.FailedPreconditionf("the %s variant has no traits", o.preset.Name)
	}

	return &ListTraitsOutput{Names: o.traits.BySubstring(input.Search, entities.OrderCatalog)}, nil
}

func (o *orchestrator) GetDetails(_ context.Context, input *GetDetailsInput) (*GetDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.catalogFor(input.Category)
	if err != nil {
		return nil, err
	}

	entry, ok := c.Get(input.Name)
	if !ok {
		return nil, o.unknownEntry(c, input.Name)
	}

	return &GetDetailsOutput{
		Entry: entry,
		Lines: catalog.Details(entry, o.preset),
	}, nil
}

func (o *orchestrator) Suggest(_ context.Context, input *SuggestInput) (*SuggestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.catalogFor(input.Category)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	return &SuggestOutput{Names: c.Suggest(input.Name, limit)}, nil
}

func (o *orchestrator) SetHeroName(ctx context.Context, input *SetHeroNameInput) (*SetHeroNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.selection.SetHeroName(ctx, input.HeroName)
	return &SetHeroNameOutput{}, nil
}

func (o *orchestrator) AddSelection(ctx context.Context, input *AddSelectionInput) (*AddSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.catalogFor(input.Category)
	if err != nil {
		return nil, err
	}
	if !c.Has(input.Name) {
		return nil, o.unknownEntry(c, input.Name)
	}

	if err := o.selection.Add(ctx, input.Category, input.Name); err != nil {
		return nil, err
	}

	slog.Debug("Selection added", "category", input.Category, "name", input.Name)
	return &AddSelectionOutput{Selected: o.selection.Selected(input.Category)}, nil
}

func (o *orchestrator) RemoveSelection(ctx context.Context, input *RemoveSelectionInput) (*RemoveSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.catalogFor(input.Category); err != nil {
		return nil, err
	}

	if !o.selection.Remove(ctx, input.Category, input.Name) {
		return nil, errors.NotFoundf("'%s' is not in your list.", input.Name).
			WithMeta("category", input.Category.String())
	}

	return &RemoveSelectionOutput{Selected: o.selection.Selected(input.Category)}, nil
}

func (o *orchestrator) Reset(ctx context.Context, _ *ResetInput) (*ResetOutput, error) {
	o.selection.Reset(ctx)
	return &ResetOutput{}, nil
}

func (o *orchestrator) GetSelection(_ context.Context, _ *GetSelectionInput) (*GetSelectionOutput, error) {
	return &GetSelectionOutput{
		HeroName: o.selection.HeroName(),
		Powers:   o.selection.Powers(),
		Traits:   o.selection.Traits(),
	}, nil
}

func (o *orchestrator) SaveSession(ctx context.Context, input *SaveSessionInput) (*SaveSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec := o.record()
	if rec.HeroName == "" {
		return nil, errors.Notice(errors.CodeFailedPrecondition, msgHeroNameRequired)
	}

	name := input.Name
	if name == "" {
		name = filename.ForSession(rec.HeroName, o.preset)
	}

	out, err := o.sessionRepo.Save(ctx, session.SaveInput{
		Name:   name,
		Record: rec,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Session saved",
		"hero", rec.HeroName,
		"location", out.Location,
		"powers", len(rec.SelectedPowers),
		"traits", len(rec.SelectedTraits),
	)

	return &SaveSessionOutput{
		Location: out.Location,
		Message:  fmt.Sprintf("Hero details successfully saved to '%s'.", out.Location),
	}, nil
}

func (o *orchestrator) LoadSession(ctx context.Context, input *LoadSessionInput) (*LoadSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("session name is required")
	}

	out, err := o.sessionRepo.Load(ctx, session.LoadInput{Name: input.Name})
	if err != nil {
		// selection is left untouched
		return nil, err
	}

	o.selection.FromRecord(ctx, out.Record)

	slog.Info("Session loaded",
		"hero", out.Record.HeroName,
		"location", out.Location,
	)

	return &LoadSessionOutput{
		Location: out.Location,
		Record:   o.selection.ToRecord(),
	}, nil
}

func (o *orchestrator) ListSessions(ctx context.Context, _ *ListSessionsInput) (*ListSessionsOutput, error) {
	out, err := o.sessionRepo.List(ctx, session.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return &ListSessionsOutput{Names: out.Names}, nil
}

func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.sessionRepo.Delete(ctx, session.DeleteInput{Name: input.Name}); err != nil {
		return nil, err
	}

	slog.Info("Session deleted", "name", input.Name)
	return &DeleteSessionOutput{}, nil
}

func (o *orchestrator) ExportSheet(ctx context.Context, input *ExportSheetInput) (*ExportSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec := o.record()

	path := input.Path
	if path == "" {
		path = o.sheetPath(rec.HeroName)
	}

	out, err := o.exporter.Export(ctx, &sheet.ExportInput{
		Path:   path,
		Record: rec,
	})
	if err != nil {
		return nil, err
	}

	return &ExportSheetOutput{
		Path:    out.Path,
		Pages:   out.Pages,
		Message: fmt.Sprintf("%s successfully exported to '%s'.", o.exportSubject(), out.Path),
	}, nil
}

func (o *orchestrator) DefaultNames(_ context.Context, _ *DefaultNamesInput) (*DefaultNamesOutput, error) {
	hero := o.selection.HeroName()
	return &DefaultNamesOutput{
		Session: filename.ForSession(hero, o.preset),
		Sheet:   o.sheetPath(hero),
	}, nil
}

func (o *orchestrator) sheetPath(hero string) string {
	return filepath.Join(o.exportDir, filename.ForSheet(hero, o.preset))
}

// record is the selection with the hero name trimmed, as it is saved and
// printed
func (o *orchestrator) record() entities.Record {
	rec := o.selection.ToRecord()
	rec.HeroName = strings.TrimSpace(rec.HeroName)
	return rec
}

func (o *orchestrator) exportSubject() string {
	if o.preset.IncludeTraits {
		return "Powers and traits"
	}
	return "Selected powers"
}

func (o *orchestrator) catalogFor(category entities.Category) (*catalog.Catalog, error) {
	if !category.IsValid() {
		return nil, errors.InvalidArgumentf("unknown category %q", category)
	}
	if category == entities.CategoryTrait {
		if !o.preset.IncludeTraits {
			return nil, errors.InvalidArgumentf("the %s variant has no traits", o.preset.Name)
		}
		return o.traits, nil
	}
	return o.powers, nil
}

// unknownEntry builds a NotFound error carrying "did you mean" suggestions
func (o *orchestrator) unknownEntry(c *catalog.Catalog, name string) error {
	err := errors.NotFoundf("'%s' is not a known %s.", name, c.Category())
	if suggestions := c.Suggest(name, DefaultSuggestions); len(suggestions) > 0 {
		err = err.WithMeta("suggestions", suggestions)
	}
	return err
}
