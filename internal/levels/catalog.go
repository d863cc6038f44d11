// Package levels finds the playable levels: the ones shipped inside the
// binary and any extra level files in a user directory.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forest-escape/internal/forest"
)

//go:embed data/*.txt
var embedded embed.FS

const ext = ".txt"

// Source labels for Info.Source.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
)

// ErrUnknownLevel is returned by Load for an id that matches nothing.
var ErrUnknownLevel = errors.New("levels: unknown level")

// Info describes a level available to play.
type Info struct {
	ID        string // file name without extension, e.g. "level1"
	Name      string // display name, e.g. "Level 1"
	Source    string // SourceEmbedded or SourceDir
	Mushrooms int
	Wolves    int
}

// Catalog merges the embedded levels with the *.txt files in Dir.
// A file in Dir replaces an embedded level with the same ID.
type Catalog struct {
	Dir    string
	Logger *log.Logger
}

// New returns a catalog over dir. dir may be empty.
func New(dir string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{Dir: dir, Logger: logger}
}

// List returns every valid level sorted by ID. Invalid files in Dir are
// skipped with a warning.
func (c *Catalog) List() ([]Info, error) {
	byID := make(map[string]Info)

	if err := c.scan(embeddedFS(), SourceEmbedded, byID); err != nil {
		return nil, err
	}
	if c.Dir != "" {
		err := c.scan(os.DirFS(c.Dir), SourceDir, byID)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("levels: scan %s: %w", c.Dir, err)
		}
	}

	infos := make([]Info, 0, len(byID))
	for _, info := range byID {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}

func (c *Catalog) scan(fsys fs.FS, source string, into map[string]Info) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		level, err := readLevel(fsys, e.Name())
		if err != nil {
			c.logger().Warn("skipping level", "file", e.Name(), "source", source, "error", err)
			continue
		}
		id := strings.TrimSuffix(e.Name(), ext)
		into[id] = Info{
			ID:        id,
			Name:      level.Name,
			Source:    source,
			Mushrooms: level.Mushrooms(),
			Wolves:    len(level.WolfStarts),
		}
	}
	return nil
}

// Load returns the level for id. An id naming an existing file is loaded
// from that path; otherwise Dir is searched before the embedded levels.
func (c *Catalog) Load(id string) (*forest.Level, error) {
	if st, err := os.Stat(id); err == nil && st.Mode().IsRegular() {
		return forest.LoadLevelFile(id)
	}

	name := strings.TrimSuffix(path.Base(id), ext) + ext
	if c.Dir != "" {
		level, err := readLevel(os.DirFS(c.Dir), name)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return level, err
		}
	}

	level, err := readLevel(embeddedFS(), name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}
	return level, err
}

func (c *Catalog) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

func readLevel(fsys fs.FS, name string) (*forest.Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &forest.IOError{Path: name, Err: err}
	}
	return forest.ParseLevel(string(data), name)
}

func embeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
