package opdnav

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
`

const pgiCSV = `Floor,Room_Numbers,Building,Operating_Days,Department,Special_Timings,Additional_Info,OPD_Type,Doctors,Counters
Ground Floor,12,Nehru Hospital,Mon-Sat,Cardiology,9AM-1PM,Bring referral slip,General,Dr. Sharma,10-15
First Floor,201,Nehru Hospital,Mon-Fri,Neurology,,,Specialty,Dr. Verma,9A
`

func openTestDirectory(t *testing.T) *Directory {
	t.Helper()

	dirPath := t.TempDir()
	aecPath := filepath.Join(dirPath, "aec.csv")
	pgiPath := filepath.Join(dirPath, "pgi.csv")
	require.NoError(t, os.WriteFile(aecPath, []byte(aecCSV), 0o644))
	require.NoError(t, os.WriteFile(pgiPath, []byte(pgiCSV), 0o644))

	dir, err := Open(Config{AECPath: aecPath, PGIPath: pgiPath})
	require.NoError(t, err)
	return dir
}

func TestOpen(t *testing.T) {
	t.Run("loads both stores", func(t *testing.T) {
		dir := openTestDirectory(t)
		assert.Equal(t, 2, dir.AECStore().Len())
		assert.Equal(t, 2, dir.PGIStore().Len())
	})

	t.Run("missing files leave empty stores", func(t *testing.T) {
		dir, err := Open(Config{
			AECPath: filepath.Join(t.TempDir(), "nope.csv"),
			PGIPath: filepath.Join(t.TempDir(), "nope.csv"),
		})
		require.NoError(t, err)
		assert.Zero(t, dir.AECStore().Len())
		assert.Zero(t, dir.PGIStore().Len())

		results, suggestion := dir.SearchAEC("cornea")
		assert.Empty(t, results)
		assert.Nil(t, suggestion)
	})
}

func TestDirectorySearchAEC(t *testing.T) {
	dir := openTestDirectory(t)

	t.Run("end to end", func(t *testing.T) {
		results, suggestion := dir.SearchAEC("cornea services")
		require.Len(t, results, 1)
		assert.Equal(t, "Cornea Services", results[0].Department)
		assert.Nil(t, suggestion)
	})

	t.Run("raw input is sanitized first", func(t *testing.T) {
		results, _ := dir.SearchAEC("cornea@@ services!!")
		require.Len(t, results, 1)
		assert.Equal(t, "Cornea Services", results[0].Department)
	})

	t.Run("misspelling yields a suggestion", func(t *testing.T) {
		results, suggestion := dir.SearchAEC("cornea servces")
		assert.Empty(t, results)
		require.NotNil(t, suggestion)
		assert.Equal(t, "Cornea Services", *suggestion)
	})
}

func TestDirectorySearchPGI(t *testing.T) {
	dir := openTestDirectory(t)

	t.Run("counter lookup", func(t *testing.T) {
		results, suggestion := dir.SearchPGI("counter 12")
		require.Len(t, results, 1)
		assert.Equal(t, "Cardiology", results[0].Department)
		assert.Empty(t, suggestion)
	})

	t.Run("department lookup", func(t *testing.T) {
		results, _ := dir.SearchPGI("neuro")
		require.Len(t, results, 1)
		assert.Equal(t, "Neurology", results[0].Department)
	})

	t.Run("no match and no close department", func(t *testing.T) {
		results, suggestion := dir.SearchPGI("zzzz")
		assert.Empty(t, results)
		assert.Empty(t, suggestion)
	})
}
