package job

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkarimatch/job-board/internal/qualification"
)

func TestLoadMissingFileIsEmptyBatch(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "jobs.json"))
	recs, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadEmptyFileIsEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, ioutil.WriteFile(path, nil, 0644))
	recs, err := NewRepository(path).Load()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	repo := NewRepository(path)
	batch := []Record{
		{
			ID:                  "1",
			PostName:            "Junior Engineer",
			DisplayTitle:        "Junior Engineer | 750 Posts",
			Qualification:       []qualification.Tag{qualification.TagBTech},
			MinAge:              18,
			MaxAge:              30,
			CategoryRelaxations: DefaultRelaxations(),
			Metadata:            Metadata{TotalVacancy: "750", PreviousCutoff: "Data not available"},
		},
	}
	require.NoError(t, repo.Save(batch))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, batch[0], got[0])
	assert.Equal(t, 3, got[0].CategoryRelaxations["OBC"])
}

func TestLoadCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("{not json"), 0644))
	_, err := NewRepository(path).Load()
	assert.Error(t, err)
}
