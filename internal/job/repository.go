package job

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Repository persists a scraped batch as a single JSON file. The scrape
// path writes the whole batch at once and the matching path reads it back;
// the two never run concurrently.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load reads the persisted batch. A missing file means no scrape has run
// yet and is returned as an empty batch, not an error.
func (r *Repository) Load() ([]Record, error) {
	data, err := ioutil.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read jobs file %s", r.path)
	}
	if len(data) == 0 {
		return []Record{}, nil
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, errors.Wrapf(err, "unable to decode jobs file %s", r.path)
	}
	return recs, nil
}

// Save writes the batch atomically via a temp file and rename so an
// interrupted scrape never leaves a truncated batch behind.
func (r *Repository) Save(recs []Record) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode jobs batch")
	}
	tmp, err := ioutil.TempFile(filepath.Dir(r.path), "jobs-*.json")
	if err != nil {
		return errors.Wrap(err, "unable to create temp jobs file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "unable to write temp jobs file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "unable to close temp jobs file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "unable to move jobs file into place at %s", r.path)
	}
	return nil
}
