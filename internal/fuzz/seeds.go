package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"sheetnav/internal/driver"
	"sheetnav/internal/testkit"
)

const (
	maxSeedBytes = 4 << 10 // фрагменты короткие, длиннее не нужно
	maxFuzzInput = 16 << 10
)

func addCorpusSeeds(f *testing.F) {
	addSampleSeeds(f)
	addTestdataSeeds(f)
	for _, s := range edgeSeeds {
		f.Add(s)
	}
}

// addSampleSeeds adds the canonical fragment of every sample token.
func addSampleSeeds(f *testing.F) {
	for _, tok := range testkit.Samples() {
		f.Add(tok.Fragment())
	}
}

// addTestdataSeeds adds every fragment listed in testdata/*.txt.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		file, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer file.Close()
		inputs, err := driver.ReadInputs(file)
		if err != nil {
			return nil
		}
		for _, in := range inputs {
			if len(in.Text) <= maxSeedBytes {
				f.Add(in.Text)
			}
		}
		return nil
	})
}

var edgeSeeds = []string{
	"",
	"/",
	"//",
	"/%",
	"/%zz",
	"/123",
	"/123/",
	"/123/%E2%82",
	"/0/x/cell/A1",
	"/123/Sheet/cell/A1:",
	"/123/Sheet/cell/A1/top-left/formula/save/%3D1%2B2",
	"/123/Sheet/row/2/insert-after/-1",
	"/123/Sheet/column/A:Z/left/freeze",
	"/spreadsheet/99999999999999999999/1",
	"/plugin/plugin-1/save/%",
}
