package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aecCSV = `Floor,Block/Area,Room/Counter No.,Operating Days,Department/Service,Notes
Ground Floor,A,12,Mon-Sat,Cornea Services,
First Floor,B,7,Mon-Fri,E.N.T. Department,Walk-in only
Second Floor,C,3,Mon-Fri,,Orphan row without a department
`

const pgiCSV = `Floor,Room_Numbers,Building,Operating_Days,Department,Special_Timings,Additional_Info,OPD_Type,Doctors,Counters
Ground Floor,12,Nehru Hospital,Mon-Sat,Cardiology,9AM-1PM,Bring referral slip,General,Dr. Sharma,10-15
Mezzanine, 201 ,New OPD,Mon-Fri,Neurology,,,SPECIALTY,Dr. Verma,9A
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	t.Cleanup(l.Close)
	return l
}

func TestLoadAEC(t *testing.T) {
	l := newTestLoader(t)

	t.Run("happy path", func(t *testing.T) {
		records, err := l.LoadAEC(writeFile(t, "aec.csv", aecCSV))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Cornea Services", records[0].Department)
		assert.Equal(t, "Ground Floor", records[0].Floor)
		assert.Equal(t, "12", records[0].RoomCounterNo)
		assert.NotZero(t, records[0].ID)

		assert.Equal(t, "E.N.T. Department", records[1].Department)
		assert.Equal(t, "Walk-in only", records[1].Notes)
	})

	t.Run("rows without a department are skipped", func(t *testing.T) {
		records, err := l.LoadAEC(writeFile(t, "aec.csv", aecCSV))
		require.NoError(t, err)
		for _, rec := range records {
			assert.NotEmpty(t, rec.Department)
		}
	})

	t.Run("stable content ids", func(t *testing.T) {
		a, err := l.LoadAEC(writeFile(t, "aec.csv", aecCSV))
		require.NoError(t, err)
		b, err := l.LoadAEC(writeFile(t, "aec.csv", aecCSV))
		require.NoError(t, err)
		assert.Equal(t, a[0].ID, b[0].ID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.LoadAEC(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeFile(t, "aec.csv", "Floor,Block/Area\nGround Floor,A\n")
		_, err := l.LoadAEC(path)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})
}

func TestLoadPGI(t *testing.T) {
	l := newTestLoader(t)

	t.Run("happy path", func(t *testing.T) {
		records, err := l.LoadPGI(writeFile(t, "pgi.csv", pgiCSV))
		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "Cardiology", first.Department)
		assert.Equal(t, "GROUND FLOOR", first.FloorText)
		require.NotNil(t, first.Level)
		assert.Equal(t, 0, *first.Level)
		assert.Equal(t, "Nehru Hospital", first.Building)
		assert.Equal(t, first.Building, first.Block)
		assert.Equal(t, "9AM-1PM | Bring referral slip", first.Notes)
		assert.Equal(t, "general", first.OPDType)
		assert.Equal(t, "10-15", first.Counters)
		assert.NotZero(t, first.ID)
	})

	t.Run("unmapped floor and trimmed cells", func(t *testing.T) {
		records, err := l.LoadPGI(writeFile(t, "pgi.csv", pgiCSV))
		require.NoError(t, err)

		second := records[1]
		assert.Nil(t, second.Level)
		assert.Equal(t, "MEZZANINE", second.FloorText)
		assert.Equal(t, "201", second.RoomNo)
		assert.Equal(t, " | ", second.Notes)
		assert.Equal(t, "specialty", second.OPDType)
	})

	t.Run("missing columns default to empty", func(t *testing.T) {
		path := writeFile(t, "pgi.csv", "Department,Counters\nCardiology,7\n")
		records, err := l.LoadPGI(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Cardiology", records[0].Department)
		assert.Empty(t, records[0].Building)
		assert.Nil(t, records[0].Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.LoadPGI(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func TestLoadAll(t *testing.T) {
	l := newTestLoader(t)

	t.Run("loads both stores", func(t *testing.T) {
		aecPath := writeFile(t, "aec.csv", aecCSV)
		pgiPath := writeFile(t, "pgi.csv", pgiCSV)

		aec, pgi := l.LoadAll(aecPath, pgiPath)
		assert.Equal(t, 2, aec.Len())
		assert.Equal(t, 2, pgi.Len())
	})

	t.Run("a failed file leaves only its store empty", func(t *testing.T) {
		pgiPath := writeFile(t, "pgi.csv", pgiCSV)

		aec, pgi := l.LoadAll(filepath.Join(t.TempDir(), "nope.csv"), pgiPath)
		assert.Zero(t, aec.Len())
		assert.Equal(t, 2, pgi.Len())
	})
}

func TestNewLoaderOptions(t *testing.T) {
	l, err := NewLoader(WithPoolSize(0))
	require.NoError(t, err)
	defer l.Close()
	assert.NotNil(t, l.pool)
}
