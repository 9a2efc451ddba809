package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"factcloud/internal/port"
)

// ProgressFunc is called after each file has been read.
type ProgressFunc func(processed, total int, currentFile string)

// FileSource reads facts from files, one fact per non-blank line.
type FileSource struct {
	paths    []string
	progress ProgressFunc
}

// NewFileSource reads the given paths in order.
func NewFileSource(paths []string, progress ProgressFunc) *FileSource {
	return &FileSource{paths: paths, progress: progress}
}

// NewWalkedSource discovers files under root with walker and reads them.
func NewWalkedSource(walker port.FileWalker, root string, progress ProgressFunc) (*FileSource, error) {
	files, err := walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return NewFileSource(paths, progress), nil
}

// Paths returns the files this source will read.
func (s *FileSource) Paths() []string {
	return s.paths
}

func (s *FileSource) Facts(ctx context.Context) ([]string, error) {
	var facts []string
	for i, path := range s.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines, err := readFactFile(path)
		if err != nil {
			return nil, err
		}
		facts = append(facts, lines...)
		if s.progress != nil {
			s.progress(i+1, len(s.paths), path)
		}
	}
	return facts, nil
}

func readFactFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// ReaderSource reads facts from a single stream such as stdin.
type ReaderSource struct {
	r io.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) Facts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadLines(s.r)
}

// ReadLines returns the non-blank lines of r with surrounding whitespace trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
