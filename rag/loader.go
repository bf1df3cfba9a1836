package rag

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// LoadDocument reads the whole file at path. A missing file yields
// ErrFileNotFound, every other failure ErrReadFailure. An empty file is a
// valid, empty document.
func LoadDocument(path string) (Document, error) {
	var (
		text string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = readPDF(path)
	} else {
		text, err = readText(path)
	}
	if err != nil {
		return Document{}, err
	}
	return Document{Source: path, Text: text}, nil
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", openError(path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8 text", ErrReadFailure, path)
	}
	return string(b), nil
}

func readPDF(path string) (string, error) {
	// pdf.Open reports a missing file through os.Open, keep the distinction
	if _, err := os.Stat(path); err != nil {
		return "", openError(path, err)
	}

	f, rdr, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, path, err)
	}
	defer f.Close()

	plain, err := rdr.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %s: extract pdf text: %w", ErrReadFailure, path, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, path, err)
	}
	return buf.String(), nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrReadFailure, path, err)
}
