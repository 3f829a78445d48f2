package builder

import (
	"github.com/smkun/MarvelPowers/internal/entities"
)

// ListGroupsInput defines the input for listing power sets
type ListGroupsInput struct{}

// ListGroupsOutput defines the output of listing power sets
type ListGroupsOutput struct {
	Groups []string
}

// FilterPowersInput narrows the power list. Group wins over Search; with
// neither set every power is returned.
type FilterPowersInput struct {
	Group  string
	Search string
}

// FilterPowersOutput defines the output of filtering powers
type FilterPowersOutput struct {
	Names []string
}

// ListTraitsInput defines the input for listing traits
type ListTraitsInput struct {
	Search string
}

// ListTraitsOutput defines the output of listing traits
type ListTraitsOutput struct {
	Names []string
}

// GetDetailsInput identifies a catalog entry
type GetDetailsInput struct {
	Category entities.Category
	Name     string
}

// GetDetailsOutput holds the entry and its formatted detail lines
type GetDetailsOutput struct {
	Entry entities.Entry
	Lines []string
}

// SuggestInput defines the input for name suggestions
type SuggestInput struct {
	Category entities.Category
	Name     string
	Limit    int
}

// SuggestOutput defines the output of name suggestions
type SuggestOutput struct {
	Names []string
}

// SetHeroNameInput defines the input for naming the hero
type SetHeroNameInput struct {
	HeroName string
}

// SetHeroNameOutput defines the output of naming the hero
type SetHeroNameOutput struct{}

// AddSelectionInput defines the input for selecting an entry
type AddSelectionInput struct {
	Category entities.Category
	Name     string
}

// AddSelectionOutput returns the category's selection after the add
type AddSelectionOutput struct {
	Selected []string
}

// RemoveSelectionInput defines the input for deselecting an entry
type RemoveSelectionInput struct {
	Category entities.Category
	Name     string
}

// RemoveSelectionOutput returns the category's selection after the remove
type RemoveSelectionOutput struct {
	Selected []string
}

// ResetInput defines the input for starting over
type ResetInput struct{}

// ResetOutput defines the output of starting over
type ResetOutput struct{}

// GetSelectionInput defines the input for reading the selection
type GetSelectionInput struct{}

// GetSelectionOutput is a snapshot of the session
type GetSelectionOutput struct {
	HeroName string
	Powers   []string
	Traits   []string
}

// SaveSessionInput defines the input for saving. An empty Name saves under
// the default session name for the hero.
type SaveSessionInput struct {
	Name string
}

// SaveSessionOutput defines the output of saving
type SaveSessionOutput struct {
	Location string
	Message  string
}

// LoadSessionInput defines the input for loading a session
type LoadSessionInput struct {
	Name string
}

// LoadSessionOutput defines the output of loading a session
type LoadSessionOutput struct {
	Location string
	Record   entities.Record
}

// ListSessionsInput defines the input for listing saved sessions
type ListSessionsInput struct{}

// ListSessionsOutput defines the output of listing saved sessions
type ListSessionsOutput struct {
	Names []string
}

// DeleteSessionInput defines the input for deleting a saved session
type DeleteSessionInput struct {
	Name string
}

// DeleteSessionOutput defines the output of deleting a saved session
type DeleteSessionOutput struct{}

// ExportSheetInput defines the input for exporting. An empty Path writes
// the default sheet name into the export directory.
type ExportSheetInput struct {
	Path string
}

// ExportSheetOutput defines the output of exporting
type ExportSheetOutput struct {
	Path    string
	Pages   int
	Message string
}

// DefaultNamesInput defines the input for default file names
type DefaultNamesInput struct{}

// DefaultNamesOutput holds the sanitized defaults for the current hero. Sheet
// is a path inside the export directory.
type DefaultNamesOutput struct {
	Session string
	Sheet   string
}
