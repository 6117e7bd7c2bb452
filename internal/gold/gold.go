// Package gold implements golden files.
package gold

import (
	"bytes"
	"encoding/hex"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// writeFile writes golden file, creating directories.
func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("golden dir: %+v", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}
}

// Str checks s against golden file.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()

	if Update {
		writeFile(t, []byte(s), name...)
		return
	}
	if expected := string(ReadFile(t, name...)); expected != s {
		t.Fatalf("golden file %s mismatch:\nexpected:\n%s\ngot:\n%s", path.Join(name...), expected, s)
	}
}

// Bytes checks data against golden raw file.
//
// If name is blank, test name is used.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = []string{t.Name()}
	}
	name[len(name)-1] += ".raw"

	if Update {
		writeFile(t, data, name...)
		return
	}
	if expected := ReadFile(t, name...); !bytes.Equal(expected, data) {
		t.Fatalf("golden file %s mismatch:\nexpected:\n%s\ngot:\n%s",
			path.Join(name...), hex.Dump(expected), hex.Dump(data),
		)
	}
}
