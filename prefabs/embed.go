package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Bundled tuning files and macro scripts. A copy under ./prefabs/ on disk
// shadows the bundled file of the same name.
var (
	//go:embed *.yaml
	PrefabsFS embed.FS

	//go:embed scripts/*.tengo
	ScriptsFS embed.FS
)

const diskDir = "prefabs"

// Load reads a tuning file such as "physics.yaml".
func Load(name string) ([]byte, error) {
	rel := strings.TrimPrefix(filepath.ToSlash(name), diskDir+"/")
	return readShadowed(PrefabsFS, rel)
}

// LoadScript reads a macro script. An existing file path is read as is;
// otherwise "demo", "scripts/demo" and "demo.tengo" all name the bundled
// scripts/demo.tengo.
func LoadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	rel := filepath.ToSlash(name)
	rel = strings.TrimPrefix(rel, diskDir+"/")
	rel = strings.TrimPrefix(rel, "scripts/")
	if path.Ext(rel) != ".tengo" {
		rel += ".tengo"
	}
	return readShadowed(ScriptsFS, path.Join("scripts", rel))
}

func readShadowed(bundled fs.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(diskDir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return fs.ReadFile(bundled, rel)
}
