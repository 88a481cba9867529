package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/vacuumarena/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads arenas from the embedded files. Pass a different
// fsys (os.DirFS) to load arenas from disk instead.
func NewLevelLoader(fsys ...fs.FS) *LevelLoader {
	l := &LevelLoader{fsys: assetFS}
	if len(fsys) > 0 && fsys[0] != nil {
		l.fsys = fsys[0]
	}
	return l
}

// LoadArena parses a single arena.
func (l *LevelLoader) LoadArena(path string) (*leveldata.Arena, error) {
	a, err := leveldata.LoadArena(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return a, nil
}

func (l *LevelLoader) MustLoadArena(path string) *leveldata.Arena {
	a, err := l.LoadArena(path)
	if err != nil {
		panic(err)
	}
	return a
}

// MustLoadArenas loads every arena under levels/, sorted by name.
func (l *LevelLoader) MustLoadArenas() []*leveldata.Arena {
	arenas, names, err := leveldata.LoadAllArenas(l.fsys, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to load arenas: %v", err))
	}
	out := make([]*leveldata.Arena, 0, len(names))
	for _, name := range names {
		out = append(out, arenas[name])
	}
	return out
}
