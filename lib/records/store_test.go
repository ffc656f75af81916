package records

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var sampleProperties = []Property{
	{
		Address: "123 N MAIN ST, PROVO",
		Owner:   "DOE, JANE",
		URL:     "http://www.utahcounty.gov/LandRecords/property.asp?av_serial=123450001",
		Docs: []DocumentRow{
			{"12345-2024", "ABC", "02/15/2024", "WD"},
			{"9876-2019", "", "11/03/2019", "Deed of Trust"},
		},
	},
	{
		Address: "45 S 100 E, PROVO",
		Owner:   "SMITH, JOHN",
		URL:     "http://www.utahcounty.gov/LandRecords/property.asp?av_serial=987650002",
		Docs:    []DocumentRow{},
	},
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "property-data.json")

	err := Save(path, sampleProperties)
	require.Nil(t, err)

	loaded, err := Load(path)
	require.Nil(t, err)
	require.Empty(t, cmp.Diff(sampleProperties, loaded))
}

func TestSaveSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "property-data.json")
	err := Save(path, sampleProperties[:1])
	require.Nil(t, err)

	contents, err := os.ReadFile(path)
	require.Nil(t, err)

	var raw []map[string]any
	err = json.Unmarshal(contents, &raw)
	require.Nil(t, err)
	require.Len(t, raw, 1)
	require.Equal(t, "123 N MAIN ST, PROVO", raw[0]["address"])
	require.Equal(t, "DOE, JANE", raw[0]["owner"])
	require.Equal(t, []any{"12345-2024", "ABC", "02/15/2024", "WD"}, raw[0]["docs"].([]any)[0])

	// pretty printed
	require.Contains(t, string(contents), "\n  {\n")
}

func TestSaveOverwrites(t *testing.T) {
	file := NewFile(filepath.Join(t.TempDir(), "checkpoint.json"))

	err := file.Save(sampleProperties)
	require.Nil(t, err)
	err = file.Save(sampleProperties[:1])
	require.Nil(t, err)

	loaded, err := file.Load()
	require.Nil(t, err)
	require.Len(t, loaded, 1)

	entries, err := os.ReadDir(filepath.Dir(file.Path))
	require.Nil(t, err)
	require.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	err := Save(path, nil)
	require.Nil(t, err)

	contents, err := os.ReadFile(path)
	require.Nil(t, err)
	require.Equal(t, "[]\n", string(contents))
}

func TestDocumentRowAccessors(t *testing.T) {
	row := DocumentRow{"1", "x", "03/01/2024", "Deed"}
	require.Equal(t, "1", row.ID())
	require.Equal(t, "03/01/2024", row.Date())
	require.Equal(t, "Deed", row.Type())

	short := DocumentRow{"1"}
	require.Equal(t, "", short.Date())
	require.Equal(t, "", short.Type())
}
