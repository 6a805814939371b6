package store

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/snappy"
)

const (
	metaFileName  = "meta.adb"
	dataFileExt   = ".adb"
	dataFilePerm  = 0644
	dataDirPerm   = 0755
)

// storeMeta is the small JSON header persisted next to the collection
// files. Version is the schema version the on-disk collections match.
type storeMeta struct {
	Version     int       `json:"version"`
	HandleId    string    `json:"handleId"`
	Collections []string  `json:"collections"`
	SavedAt     time.Time `json:"savedAt"`
}

// collectionData is the gob payload of one collection file.
type collectionData struct {
	IdTracker int64
	Rows      []Row
}

func GobRegisterTypes() {
	gob.Register(int(0))
	gob.Register(float64(0.))
	gob.Register(string(""))
	gob.Register(bool(false))
	gob.Register(time.Time{})
	gob.Register([]any{})
	gob.Register(Row{})
}

func collectionPath(dir, name string) string {
	return filepath.Join(dir, name+dataFileExt)
}

func writeCollectionFile(dir string, c *Collection) error {
	var buf bytes.Buffer
	data := collectionData{IdTracker: c.IdTracker.Load(), Rows: c.Rows.All()}
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, dataDirPerm); err != nil {
		return err
	}

	compressed := snappy.Encode(nil, buf.Bytes())
	return os.WriteFile(collectionPath(dir, c.Def.Name), compressed, dataFilePerm)
}

// readCollectionFile loads a collection's rows from disk. A missing file
// means the collection has never been flushed: not an error, just empty.
func readCollectionFile(dir string, c *Collection) error {
	compressed, err := os.ReadFile(collectionPath(dir, c.Def.Name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return err
	}

	data := collectionData{}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return err
	}

	for _, row := range data.Rows {
		c.Rows.Insert(GetPrimaryKey(row), row)
	}
	c.IdTracker.Store(data.IdTracker)
	c.rebuild()
	return nil
}

func removeCollectionFile(dir, name string) error {
	err := os.Remove(collectionPath(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func writeMeta(dir string, meta storeMeta) error {
	if err := os.MkdirAll(dir, dataDirPerm); err != nil {
		return err
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, metaFileName), data, dataFilePerm)
}

// readMeta returns a zero-version meta when no store exists yet.
func readMeta(dir string) (storeMeta, error) {
	meta := storeMeta{}
	data, err := os.ReadFile(filepath.Join(dir, metaFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return meta, nil
		}
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, err
	}
	return meta, nil
}
