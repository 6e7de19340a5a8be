// Package source acquires the document text from a literal, a file, or stdin.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Kind identifies where a document came from.
type Kind int

const (
	// KindNone means no source was available; the document is empty.
	KindNone Kind = iota
	KindText
	KindFile
	KindStdin
)

// Options selects a text source. Text wins over File; stdin is used only when
// neither is set and StdinIsTerminal is false.
type Options struct {
	Text            *string
	File            string
	StdinIsTerminal bool
}

// Document is the raw text plus a short label for history.
type Document struct {
	Text  string
	Kind  Kind
	Label string
}

// ErrBothSources is returned when a literal text and a file are both given.
var ErrBothSources = errors.New("only one of --text and --file may be set")

// Load reads the document selected by opts. stdin is consulted only when no
// explicit source is set.
func Load(opts Options, stdin io.Reader) (Document, error) {
	if opts.Text != nil && opts.File != "" {
		return Document{}, ErrBothSources
	}
	switch {
	case opts.Text != nil:
		return Document{Text: *opts.Text, Kind: KindText, Label: "text"}, nil
	case opts.File != "":
		text, err := ReadFile(opts.File)
		if err != nil {
			return Document{}, err
		}
		return Document{Text: text, Kind: KindFile, Label: opts.File}, nil
	case stdin != nil && !opts.StdinIsTerminal:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Document{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return Document{Text: string(data), Kind: KindStdin, Label: "stdin"}, nil
	default:
		return Document{Kind: KindNone, Label: "none"}, nil
	}
}

// ReadFile returns the contents of path.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only document.
			_ = cerr
		}
	}()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}
