// Enumgen writes the name extraction method staticenum uses to reflect over
// an enumeration type. Given
//
//	type Color int
//
//	const (
//		RED   Color = -12
//		GREEN Color = 7
//		BLUE  Color = 15
//	)
//
// running "enumgen -type=Color" in the package directory creates
// color_enum.go with a func (Color) EnumName() string method.
//
// Typical use is a go:generate directive:
//
//	//go:generate go run git.imaxinacion.net/aibox/staticenum/cmd/enumgen -type=Color
//
// Flags override the optional config file (-config, any format viper reads)
// and ENUMGEN_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"git.imaxinacion.net/aibox/staticenum/internal/generate"
)

var (
	typeNames  = flag.String("type", "", "comma-separated list of type names; must be set")
	output     = flag.String("output", "", "output file name; default srcdir/<type>_enum.go")
	buildTags  = flag.String("tags", "", "comma-separated list of build tags to apply")
	maxWindow  = flag.Int("max-window", 0, "maximum scan window size the runtime is configured with")
	alignment  = flag.Int("alignment", 0, "require max-window to be a multiple of this value")
	strict     = flag.Bool("strict", false, "fail when a constant lies outside the scan window")
	configPath = flag.String("config", "", "optional config file")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of enumgen:\n")
	fmt.Fprintf(os.Stderr, "\tenumgen [flags] -type T [package]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("enumgen: ")
	flag.Usage = Usage
	flag.Parse()

	overrides := map[string]any{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			overrides["types"] = splitList(*typeNames)
		case "output":
			overrides["output"] = *output
		case "tags":
			overrides["tags"] = splitList(*buildTags)
		case "max-window":
			overrides["max_window_size"] = *maxWindow
		case "alignment":
			overrides["alignment"] = *alignment
		case "strict":
			overrides["strict"] = *strict
		}
	})
	if args := flag.Args(); len(args) > 0 {
		overrides["patterns"] = args
	}

	cfg, err := generate.LoadConfig(*configPath, overrides)
	if errors.Is(err, generate.ErrNoTypes) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	report, err := generate.Run(cfg, strings.Join(os.Args[1:], " "))
	if report != nil {
		warn := color.New(color.FgYellow)
		for _, miss := range report.Misses() {
			warn.Fprintf(os.Stderr, "enumgen: warning: %s\n", miss)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
