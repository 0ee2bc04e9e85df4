package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todofile/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// Every write rewrites the whole file, so an append costs O(n) in the number
// of stored tasks. There is no locking: two processes appending to the same
// file at once can lose one of the appends.

const filePerm = 0o644

// EnsureExists creates an empty file at path if nothing exists there.
// Existing files are left untouched.
func EnsureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create file: %w", err)
	}
	log.Debug("created task file", "path", path)
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// Load reads every task stored at path. A blank file is an empty list.
func Load(path string) ([]model.Task, error) {
	if err := EnsureExists(path); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		log.Debug("task file is blank", "path", path)
		return []model.Task{}, nil
	}

	// encoding/json would silently swap bad bytes for U+FFFD
	if !utf8.Valid(b) {
		return nil, &MalformedError{Path: path, Err: errors.New("invalid UTF-8")}
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &MalformedError{Path: path, Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	if err := checkDuplicateKeys(path, b); err != nil {
		return nil, err
	}
	if err := validateShape(path, doc); err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, &MalformedError{Path: path, Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	log.Debug("loaded tasks", "path", path, "count", len(tasks))
	return tasks, nil
}

// Save replaces the content of path with tasks as indented JSON.
func Save(path string, tasks []model.Task) error {
	if err := EnsureExists(path); err != nil {
		return err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	log.Debug("saved tasks", "path", path, "count", len(tasks), "bytes", len(b))
	return nil
}

// Append loads the list at path, adds one task and writes the list back.
func Append(path, description string, isCompleted bool) error {
	tasks, err := Load(path)
	if err != nil {
		return err
	}
	tasks = model.Add(tasks, description, isCompleted)
	return Save(path, tasks)
}
