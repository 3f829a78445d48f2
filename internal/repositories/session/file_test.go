package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/repositories/session"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	dir  string
	repo session.Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	repo, err := session.NewFile(&session.FileConfig{Dir: s.dir})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) TestNewFile() {
	_, err := session.NewFile(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = session.NewFile(&session.FileConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveWritesIndentedJSON() {
	out, err := s.repo.Save(s.ctx, session.SaveInput{
		Name: "Thor_powers_and_traits.json",
		Record: entities.Record{
			HeroName:       "Thor",
			SelectedPowers: []string{"Flight"},
			SelectedTraits: []string{},
		},
	})
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "Thor_powers_and_traits.json"), out.Location)

	data, err := os.ReadFile(out.Location)
	s.Require().NoError(err)
	s.Equal("{\n"+
		"    \"hero_name\": \"Thor\",\n"+
		"    \"selected_powers\": [\n"+
		"        \"Flight\"\n"+
		"    ],\n"+
		"    \"selected_traits\": []\n"+
		"}", string(data))
}

func (s *FileRepositoryTestSuite) TestSaveLoadRoundTrip() {
	rec := entities.Record{
		HeroName:       "Storm",
		SelectedPowers: []string{"Blizzard", "Flight"},
		SelectedTraits: []string{"Brave"},
	}

	_, err := s.repo.Save(s.ctx, session.SaveInput{Name: "storm", Record: rec})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, session.LoadInput{Name: "storm"})
	s.Require().NoError(err)
	s.Equal(rec, out.Record)
	s.Equal(filepath.Join(s.dir, "storm.json"), out.Location, "extension is added")
}

func (s *FileRepositoryTestSuite) TestSaveOverwrites() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{Name: "a.json", Record: entities.Record{HeroName: "one"}})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, session.SaveInput{Name: "a.json", Record: entities.Record{HeroName: "two"}})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, session.LoadInput{Name: "a.json"})
	s.Require().NoError(err)
	s.Equal("two", out.Record.HeroName)

	list, err := s.repo.List(s.ctx, session.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a.json"}, list.Names, "no temp files left behind")
}

func (s *FileRepositoryTestSuite) TestAbsolutePath() {
	other := s.T().TempDir()
	path := filepath.Join(other, "abs.json")

	out, err := s.repo.Save(s.ctx, session.SaveInput{Name: path, Record: entities.Record{HeroName: "X"}})
	s.Require().NoError(err)
	s.Equal(path, out.Location)
	s.FileExists(path)
}

func (s *FileRepositoryTestSuite) TestLoadErrors() {
	write := func(name, content string) {
		s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o600))
	}

	s.Run("missing file", func() {
		_, err := s.repo.Load(s.ctx, session.LoadInput{Name: "nope.json"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Equal(errors.KindPersistence, errors.GetKind(err))
		s.False(errors.IsFatal(err))
	})

	s.Run("invalid json", func() {
		write("bad.json", `{"hero_name": `)
		_, err := s.repo.Load(s.ctx, session.LoadInput{Name: "bad.json"})
		s.True(errors.IsMalformed(err))
		s.Equal(errors.KindPersistence, errors.GetKind(err))
	})

	s.Run("not an object", func() {
		write("list.json", `["Flight"]`)
		_, err := s.repo.Load(s.ctx, session.LoadInput{Name: "list.json"})
		s.True(errors.IsMalformed(err))
	})

	s.Run("empty name", func() {
		_, err := s.repo.Load(s.ctx, session.LoadInput{Name: " "})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *FileRepositoryTestSuite) TestLoadToleratesMissingKeys() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "old.json"), []byte(`{"hero_name": "Thor", "selected_powers": "oops"}`), 0o600))

	out, err := s.repo.Load(s.ctx, session.LoadInput{Name: "old.json"})
	s.Require().NoError(err)
	s.Equal("Thor", out.Record.HeroName)
	s.Empty(out.Record.SelectedPowers)
	s.Nil(out.Record.SelectedTraits)
}

func (s *FileRepositoryTestSuite) TestSaveToMissingDirectory() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{
		Name:   filepath.Join("missing", "x.json"),
		Record: entities.Record{HeroName: "X"},
	})
	s.Require().Error(err)
	s.True(errors.IsIO(err))
	s.Equal(errors.KindPersistence, errors.GetKind(err))
}

func (s *FileRepositoryTestSuite) TestListAndDelete() {
	for _, name := range []string{"b.json", "a.json"} {
		_, err := s.repo.Save(s.ctx, session.SaveInput{Name: name, Record: entities.Record{}})
		s.Require().NoError(err)
	}
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "notes.txt"), []byte("x"), 0o600))
	s.Require().NoError(os.Mkdir(filepath.Join(s.dir, "dir.json"), 0o755))

	list, err := s.repo.List(s.ctx, session.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a.json", "b.json"}, list.Names)

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{Name: "a.json"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{Name: "a.json"})
	s.True(errors.IsNotFound(err))

	list, err = s.repo.List(s.ctx, session.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"b.json"}, list.Names)
}

func (s *FileRepositoryTestSuite) TestListMissingDirectory() {
	repo, err := session.NewFile(&session.FileConfig{Dir: filepath.Join(s.dir, "nope")})
	s.Require().NoError(err)

	list, err := repo.List(s.ctx, session.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Names)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}
