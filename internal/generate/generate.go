// Package generate implements enumgen: it loads a Go package, collects the
// constants of the requested enumeration types and writes an EnumName method
// for each, which staticenum detects as the type's namer.
package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ErrWindowMiss is returned in strict mode when a constant lies outside the
// scan window and would be invisible at runtime.
var ErrWindowMiss = errors.New("enumgen: constant outside scan window")

// Report describes one generator run.
type Report struct {
	Package string
	Output  string
	Enums   []Enum
}

// Misses returns every constant outside its type's window, qualified by type.
func (r *Report) Misses() []string {
	var out []string
	for _, e := range r.Enums {
		for _, m := range e.Misses {
			out = append(out, fmt.Sprintf("%s.%s = %s outside [%d, %d)", e.Name, m.Name, m.Literal, e.Window.Low(), e.Window.High()))
		}
	}
	return out
}

// Run loads the single package matched by cfg.Patterns, renders the namer
// file and writes it. args is recorded in the generated header.
func Run(cfg *Config, args string) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pkg, err := load(cfg.Patterns, cfg.Tags)
	if err != nil {
		return nil, err
	}

	enums, err := Collect(pkg.Types, cfg.Types, cfg.WindowConfig())
	if err != nil {
		return nil, err
	}

	report := &Report{Package: pkg.PkgPath, Output: outputPath(cfg, pkg), Enums: enums}
	if cfg.Strict && len(report.Misses()) > 0 {
		return report, fmt.Errorf("%w: %s", ErrWindowMiss, strings.Join(report.Misses(), "; "))
	}

	src, err := Render(pkg.Name, args, enums)
	if err != nil {
		return report, err
	}
	if err := os.WriteFile(report.Output, src, 0o644); err != nil {
		return report, fmt.Errorf("failed to write output: %w", err)
	}
	return report, nil
}

func load(patterns, tags []string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax | packages.NeedFiles,
		Tests:      false,
		BuildFlags: []string{fmt.Sprintf("-tags=%s", strings.Join(tags, " "))},
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("enumgen: %d packages matching %v, want exactly 1", len(pkgs), patterns)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("failed to load package %s: %v", pkg.PkgPath, pkg.Errors[0])
	}
	return pkg, nil
}

func outputPath(cfg *Config, pkg *packages.Package) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	dir := "."
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	return filepath.Join(dir, strings.ToLower(cfg.Types[0])+"_enum.go")
}
