package sexpcalc

import (
	"io"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/sexpcalc/statik"
)

//go:generate statik -src=samples -include=*.sexp,*.out -f

// Sample is one bundled expression and the output it should produce:
// the decimal result, or "invalid".
type Sample struct {
	Name       string
	Expression string
	Want       string
}

// LoadSamples returns the bundled samples sorted by name.
func LoadSamples() ([]Sample, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var samples []Sample
	for _, fi := range fis {
		name := fi.Name()
		if path.Ext(name) != ".sexp" {
			continue
		}
		expr, err := readFile(statikFS, path.Join("/", name))
		if err != nil {
			return nil, err
		}
		base := strings.TrimSuffix(name, ".sexp")
		want, err := readFile(statikFS, path.Join("/", base+".out"))
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{
			Name:       base,
			Expression: strings.TrimSpace(expr),
			Want:       strings.TrimSpace(want),
		})
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}

func readFile(hfs http.FileSystem, name string) (string, error) {
	f, err := hfs.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
