package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdquiz/internal/fileutil"
)

// htmlExtension is the extension of built pages, without the leading dot.
const htmlExtension = "html"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrNoMarkdownFiles  = errors.New("no markdown files found")
)

// FileToBuild represents a single page to build.
type FileToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown pages to build under inputPath.
// Directory inputs are walked recursively and mirrored under outputDir.
func discoverFiles(inputPath, outputDir string) ([]FileToBuild, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "")
		if err != nil {
			return nil, err
		}
		return []FileToBuild{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToBuild
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToBuild{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// An outputDir ending in .html names the output file of a single page.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) (string, error) {
	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExtension)
	if err != nil {
		return "", err
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name), nil
	}

	if baseInputDir == "" && strings.HasSuffix(strings.ToLower(outputDir), "."+htmlExtension) {
		return outputDir, nil
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(outputDir, name), nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
