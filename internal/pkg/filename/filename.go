// Package filename derives default file names for saved sessions and exported sheets
package filename

import (
	"strings"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// Extensions of the files the builder writes
const (
	ExtSession = ".json"
	ExtSheet   = ".pdf"
)

// illegal lists characters that are not allowed in file names on common platforms
const illegal = `\/*?:"<>|`

// Sanitize removes characters that are illegal in file names
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegal, r) {
			return -1
		}
		return r
	}, name)
}

// ForSheet returns the default export file name for a hero
func ForSheet(heroName string, preset entities.Preset) string {
	return build(heroName, preset, ExtSheet)
}

// ForSession returns the default session file name for a hero
func ForSession(heroName string, preset entities.Preset) string {
	return build(heroName, preset, ExtSession)
}

func build(heroName string, preset entities.Preset, ext string) string {
	heroName = strings.TrimSpace(heroName)
	if heroName == "" {
		return Sanitize(preset.FallbackStem + ext)
	}
	return Sanitize(heroName + "_" + preset.FileStem + ext)
}
