// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Lower layers must stay importable without dragging in CLI or app
// wiring: pipeline and the renderers feed both binaries.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"jcdist/internal/pipeline": {
			"jcdist/internal/app", "jcdist/internal/sweepapp",
			"jcdist/internal/cli", "jcdist/internal/sweepcli",
			"jcdist/internal/writers", "jcdist/internal/output",
			"jcdist/cmd/",
		},
		"jcdist/internal/writers": {
			"jcdist/internal/app", "jcdist/internal/sweepapp",
			"jcdist/internal/cli", "jcdist/internal/sweepcli",
			"jcdist/internal/pipeline", "jcdist/cmd/",
		},
		"jcdist/internal/output": {
			"jcdist/internal/app", "jcdist/internal/sweepapp",
			"jcdist/internal/cli", "jcdist/internal/sweepcli",
			"jcdist/internal/pipeline", "jcdist/internal/writers",
			"jcdist/cmd/",
		},
		"jcdist/internal/jsonlutil": {
			"jcdist/internal/app", "jcdist/internal/sweepapp",
			"jcdist/internal/cli", "jcdist/internal/sweepcli",
			"jcdist/internal/pipeline", "jcdist/internal/writers",
			"jcdist/cmd/",
		},
		"jcdist/internal/clibase": {
			"jcdist/internal/app", "jcdist/internal/sweepapp",
			"jcdist/internal/pipeline", "jcdist/internal/writers",
			"jcdist/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "jcdist/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "jcdist/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
