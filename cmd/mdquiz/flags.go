package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds config and verbosity flags.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// assetFlags holds asset-related flags (theme, templates, custom asset path).
type assetFlags struct {
	style     string // Theme name or .css file path
	template  string // Template set name
	assetPath string // Override asset directory
	noStyle   bool   // Build pages without a theme
}

// buildFlags holds all flags of the build command.
type buildFlags struct {
	common        commonFlags
	output        string
	workers       int
	assets        assetFlags
	noLinkRewrite bool
	version       bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug diagnostics")
	fs.StringVar(&f.logFormat, "log-format", "", "diagnostic log format: console, json")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "page theme name or CSS file path")
	fs.StringVar(&f.template, "template", "", "quiz template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "build pages without a theme")
}

// parseBuildFlags parses command line flags and returns positional args.
// Usage and parse errors are written to stderr.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("mdquiz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page builds (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	fs.BoolVar(&f.noLinkRewrite, "no-link-rewrite", false, "keep links to .md files unchanged")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
