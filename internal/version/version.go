package version

import (
	"errors"
	"fmt"
	"runtime/debug"
)

const (
	// Name is the program name used in usage lines and version output.
	Name = "qimu"
	// Version is the canonical release version.
	Version = "0.2.0"
)

// Dependencies lists the third-party modules reported by `qimu version --full`.
var Dependencies = []string{
	"github.com/spf13/cobra",
	"github.com/spf13/pflag",
	"gopkg.in/ini.v1",
	"github.com/gofrs/flock",
	"github.com/google/uuid",
	"github.com/jedib0t/go-pretty/v6",
	"github.com/mattn/go-isatty",
	"github.com/pelletier/go-toml/v2",
	"golang.org/x/text",
}

// ErrNoBuildInfo is returned when the running binary carries no module information.
var ErrNoBuildInfo = errors.New("build info unavailable")

// DependencyLookupError reports a module whose version could not be determined.
type DependencyLookupError struct {
	Module string
	Err    error
}

func (e *DependencyLookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lookup %s: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("lookup %s: not found", e.Module)
}

func (e *DependencyLookupError) Unwrap() error {
	return e.Err
}

// Line returns the "{name} {version}" banner.
func Line() string {
	return Name + " " + Version
}

// Resolver maps a module path to its linked version.
type Resolver interface {
	Lookup(module string) (string, error)
}

// BuildInfoResolver resolves module versions from the binary's embedded build info.
type BuildInfoResolver struct {
	read func() (*debug.BuildInfo, bool)
}

// NewBuildInfoResolver returns a resolver backed by runtime/debug.ReadBuildInfo.
func NewBuildInfoResolver() *BuildInfoResolver {
	return &BuildInfoResolver{read: debug.ReadBuildInfo}
}

// Lookup returns the version of module, following replace directives.
func (r *BuildInfoResolver) Lookup(module string) (string, error) {
	read := r.read
	if read == nil {
		read = debug.ReadBuildInfo
	}
	info, ok := read()
	if !ok || info == nil {
		return "", &DependencyLookupError{Module: module, Err: ErrNoBuildInfo}
	}
	for _, dep := range info.Deps {
		if dep == nil || dep.Path != module {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version, nil
		}
		if dep.Version == "" || dep.Version == "(devel)" {
			break
		}
		return dep.Version, nil
	}
	return "", &DependencyLookupError{Module: module}
}

// Report is one line of the dependency report.
type Report struct {
	Module  string
	Version string
	Err     error
}

// String renders the report line; unresolved modules print "not installed".
func (r Report) String() string {
	if r.Err != nil || r.Version == "" {
		return r.Module + " not installed"
	}
	return r.Module + " " + r.Version
}

// Collect resolves every module in modules. Lookup failures are recorded on the
// individual report and never abort the collection.
func Collect(resolver Resolver, modules []string) []Report {
	reports := make([]Report, 0, len(modules))
	for _, module := range modules {
		ver, err := resolver.Lookup(module)
		reports = append(reports, Report{Module: module, Version: ver, Err: err})
	}
	return reports
}
