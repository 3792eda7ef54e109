package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"minisql/pkg/dberror"
	"minisql/pkg/types"
)

// manifestVersion is bumped whenever the snapshot format changes.
const manifestVersion = 1

// ManifestFileName is the default name of the schema manifest inside a data
// directory.
const ManifestFileName = "catalog.json"

// Manifest persists the schema of a catalog. Row data lives in the storage
// backend; the manifest records only names, column types and storage ids.
type Manifest interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// Snapshot is the serialized schema of a catalog.
type Snapshot struct {
	Version   int                `json:"version"`
	Databases []DatabaseSnapshot `json:"databases"`
}

type DatabaseSnapshot struct {
	Name   string          `json:"name"`
	Tables []TableSnapshot `json:"tables"`
}

type TableSnapshot struct {
	Name      string           `json:"name"`
	StorageID string           `json:"storage_id"`
	Columns   []ColumnSnapshot `json:"columns"`
}

type ColumnSnapshot struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Length int    `json:"length,omitempty"`
}

func snapshotColumn(c Column) ColumnSnapshot {
	cs := ColumnSnapshot{Name: c.Name, Type: c.Type.Type.String()}
	if c.Type.Type == types.CharType {
		cs.Length = c.Type.Length
	}
	return cs
}

func (cs ColumnSnapshot) column() (Column, error) {
	switch cs.Type {
	case types.IntType.String():
		return Column{Name: cs.Name, Type: types.Int()}, nil
	case types.CharType.String():
		return Column{Name: cs.Name, Type: types.Char(cs.Length)}, nil
	default:
		return Column{}, dberror.Newf(dberror.KindCorrupt,
			"column '%s' has unknown type %q in manifest", cs.Name, cs.Type)
	}
}

// FileManifest stores the snapshot as JSON at Path. Saves go through a
// temporary file and a rename so a crash never leaves a half-written file.
type FileManifest struct {
	Path string
}

func NewFileManifest(path string) *FileManifest {
	return &FileManifest{Path: path}
}

// Load reads the snapshot. A missing file is an empty catalog.
func (m *FileManifest) Load() (*Snapshot, error) {
	data, err := os.ReadFile(m.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Snapshot{Version: manifestVersion}, nil
	}
	if err != nil {
		return nil, dberror.Wrap(err, dberror.KindInternal, "Load", "FileManifest")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, dberror.Newf(dberror.KindCorrupt, "cannot decode manifest %s", m.Path).
			WithDetail(err.Error())
	}
	if snap.Version != manifestVersion {
		return nil, dberror.Newf(dberror.KindCorrupt,
			"manifest version %d is not supported", snap.Version).
			WithHint(fmt.Sprintf("this build reads version %d", manifestVersion))
	}
	return &snap, nil
}

func (m *FileManifest) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "Save", "FileManifest")
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.Path), filepath.Base(m.Path)+".*.tmp")
	if err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "Save", "FileManifest")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return dberror.Wrap(err, dberror.KindInternal, "Save", "FileManifest")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return dberror.Wrap(err, dberror.KindInternal, "Save", "FileManifest")
	}
	if err := tmp.Close(); err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "Save", "FileManifest")
	}
	if err := os.Rename(tmp.Name(), m.Path); err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "Save", "FileManifest")
	}
	return nil
}
