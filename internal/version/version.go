// Package version resolves module version and checks persisted buffer
// format compatibility.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/go-faster/errors"
	"github.com/hashicorp/go-version"
)

const pkg = "github.com/go-faster/zerocopy"

var once struct {
	module Module
	sync.Once
}

// Module describes zerocopy module version, recorded by writers.
type Module struct {
	Major int
	Minor int
	Patch int
	Name  string
	Raw   string
}

// Extract Module version from BuildInfo.
func Extract(info *debug.BuildInfo) Module {
	var raw string
	if strings.HasPrefix(info.Main.Path, pkg) {
		raw = info.Main.Version
	}
	for _, d := range info.Deps {
		if strings.HasPrefix(d.Path, pkg) {
			raw = d.Version
			break
		}
	}
	if v, err := version.NewVersion(raw); err == nil {
		m := Module{
			Name: v.Prerelease(), // "alpha", "beta.1"
			Raw:  raw,
		}
		if s := v.Segments(); len(s) > 2 {
			m.Major, m.Minor, m.Patch = s[0], s[1], s[2]
		}
		return m
	}
	return Module{
		// Zero-versioned dev version.
		Name: "dev",
		Raw:  "0.0.1-dev",
	}
}

// Get optimistically gets current module version.
//
// Does not handle replace directives.
func Get() Module {
	once.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		once.module = Extract(info)
	})

	return once.module
}

// Current persisted buffer format version.
const (
	FormatMajor = 1
	FormatMinor = 0
)

// formatConstraint accepts every minor revision of current major format,
// minor revisions only add fields into reserved header space.
var formatConstraint = version.MustConstraints(
	version.NewConstraint(fmt.Sprintf(">= %d.0, < %d.0", FormatMajor, FormatMajor+1)),
)

// ErrIncompatible means that file format can't be read by this module.
var ErrIncompatible = errors.New("incompatible format version")

// CheckFormat reports whether format major.minor can be read.
func CheckFormat(major, minor uint16) error {
	v, err := version.NewVersion(fmt.Sprintf("%d.%d", major, minor))
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	if !formatConstraint.Check(v) {
		return errors.Wrapf(ErrIncompatible, "%s does not match %s", v, formatConstraint)
	}
	return nil
}
