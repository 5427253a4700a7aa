// Package yamlfile stores a task list as a versioned YAML document.
//
// The document has one record per task:
//
//	version: 1
//	tasks:
//	  - description: Buy milk
//	    done: false
package yamlfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"todo/internal/service"
)

const (
	// FormatVersion is the record format version written by Encode.
	FormatVersion = 1

	// FileMode is the permission used for the data file.
	FileMode = 0o644
)

// ErrMalformed is returned when the content is not a task document.
var ErrMalformed = errors.New("malformed task file")

// ErrUnsupportedVersion is returned when the document version is not FormatVersion.
var ErrUnsupportedVersion = errors.New("unsupported task file version")

type document struct {
	Version int      `yaml:"version"`
	Tasks   []record `yaml:"tasks"`
}

type record struct {
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
}

// Encode writes tasks to w in list order.
func Encode(w io.Writer, tasks []service.Task) error {
	doc := document{
		Version: FormatVersion,
		Tasks:   make([]record, 0, len(tasks)),
	}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, record{Description: t.Description(), Done: t.Done()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return enc.Close()
}

// Decode reads a task document from r.
// Every record is validated through service.NewTask.
func Decode(r io.Reader) ([]service.Task, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	tasks := make([]service.Task, 0, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		t, err := service.NewTask(rec.Description)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i+1, err)
		}
		t.MarkDone(rec.Done)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// ReadFile decodes the task file at path.
// A missing file returns an error matching fs.ErrNotExist.
func ReadFile(path string) ([]service.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// WriteFile atomically replaces the task file at path using a temp file + rename.
// The temp file is removed on every failure path.
func WriteFile(path string, tasks []service.Task) (err error) {
	var buf bytes.Buffer
	if err := Encode(&buf, tasks); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create tasks tmp: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("write tasks tmp: %w", err)
	}
	if err = f.Chmod(FileMode); err != nil {
		f.Close()
		return fmt.Errorf("chmod tasks tmp: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close tasks tmp: %w", err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename tasks file: %w", err)
	}

	return nil
}
