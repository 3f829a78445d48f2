package session

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/pkg/filename"
)

const (
	fileIndent = "    "
	filePerm   = 0o644

	errNameEmpty = "session name cannot be empty"
)

// FileConfig contains configuration for the JSON file repository
type FileConfig struct {
	// Dir is where relative names are resolved and List looks
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Dir == "" {
		return errors.InvalidArgument("dir cannot be empty")
	}
	return nil
}

type fileRepository struct {
	dir string
}

// NewFile creates a repository storing one JSON file per session
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

// path resolves name against the directory and adds the .json extension
// when the name has none
func (r *fileRepository) path(name string) string {
	if filepath.Ext(name) == "" {
		name += filename.ExtSession
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.dir, name)
}

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty).WithKind(errors.KindPersistence)
	}

	path := r.path(input.Name)
	data, err := json.MarshalIndent(input.Record, "", fileIndent)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode session").
			WithKind(errors.KindPersistence)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not save session to '%s'", path).
			WithKind(errors.KindPersistence).
			WithMeta("path", path)
	}

	return &SaveOutput{Location: path}, nil
}

func (r *fileRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty).WithKind(errors.KindPersistence)
	}

	path := r.path(input.Name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("The file '%s' was not found.", path).
				WithKind(errors.KindPersistence).
				WithMeta("path", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not read '%s'", path).
			WithKind(errors.KindPersistence).
			WithMeta("path", path)
	}

	rec, err := decodeRecord(data, path)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Location: path, Record: rec}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ListOutput{Names: []string{}}, nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not list '%s'", r.dir).
			WithKind(errors.KindPersistence)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != filename.ExtSession {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty).WithKind(errors.KindPersistence)
	}

	path := r.path(input.Name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("The file '%s' was not found.", path).
				WithKind(errors.KindPersistence).
				WithMeta("path", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not delete '%s'", path).
			WithKind(errors.KindPersistence).
			WithMeta("path", path)
	}

	return &DeleteOutput{}, nil
}

// decodeRecord reads a stored session; location names it in errors
func decodeRecord(data []byte, location string) (entities.Record, error) {
	var rec entities.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return entities.Record{}, errors.WrapWithCodef(err, errors.CodeMalformed, "Could not read session '%s'", location).
			WithKind(errors.KindPersistence).
			WithMeta("path", location)
	}
	return rec, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so a failed save never truncates an existing session
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			if rmErr := os.Remove(tmp.Name()); rmErr != nil {
				slog.Warn("Failed to remove temp file", "path", tmp.Name(), "error", rmErr)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
