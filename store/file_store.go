package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultDataFile = "todos.json"

	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FileTaskStore implements TaskStore on top of a single file.
// It supports JSON, YAML, and TOML documents. There is no locking and no
// atomic rename: every Save truncates and rewrites the file in place.
type FileTaskStore struct {
	fs       afero.Fs
	filePath string
	format   string
}

// NewFileTaskStore creates a store for filePath on the given filesystem.
// An empty format is inferred from the file extension.
func NewFileTaskStore(fsys afero.Fs, filePath, format string) (*FileTaskStore, error) {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	resolved, err := ResolveFormat(format, filePath)
	if err != nil {
		return nil, err
	}
	return &FileTaskStore{
		fs:       fsys,
		filePath: filePath,
		format:   resolved,
	}, nil
}

// NewOsFileTaskStore creates a FileTaskStore backed by the real filesystem.
func NewOsFileTaskStore(filePath, format string) (*FileTaskStore, error) {
	return NewFileTaskStore(afero.NewOsFs(), filePath, format)
}

// ResolveFormat validates an explicit format, or derives one from the
// file extension when format is empty. Unknown extensions fall back to JSON.
func ResolveFormat(format, filePath string) (string, error) {
	if format != "" {
		switch f := strings.ToLower(format); f {
		case FormatJSON, FormatYAML, FormatTOML:
			return f, nil
		case "yml":
			return FormatYAML, nil
		default:
			return "", fmt.Errorf("%w: %s (supported formats are json, yaml, toml)", ErrUnsupportedFormat, format)
		}
	}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatJSON, nil
	}
}

// Path returns the data file location.
func (s *FileTaskStore) Path() string {
	return s.filePath
}

// Format returns the resolved data format.
func (s *FileTaskStore) Format() string {
	return s.format
}

// Load reads the whole collection from disk.
func (s *FileTaskStore) Load() ([]models.Task, error) {
	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("data file not found, starting empty", "path", s.filePath)
			return []models.Task{}, nil
		}
		return nil, &IOError{Op: "read", Path: s.filePath, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Task{}, nil
	}

	tasks, err := decodeTasks(s.format, data)
	if err != nil {
		return nil, &DecodeError{Path: s.filePath, Format: s.format, Err: err}
	}
	if err := checkCollection(tasks); err != nil {
		return nil, &DecodeError{Path: s.filePath, Format: s.format, Err: err}
	}

	slog.Debug("loaded tasks", "path", s.filePath, "format", s.format, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the data file with the full collection.
func (s *FileTaskStore) Save(tasks []models.Task) error {
	data, err := encodeTasks(s.format, tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks to %s: %w", s.format, err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "create directory", Path: dir, Err: err}
		}
	}

	if err := afero.WriteFile(s.fs, s.filePath, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: s.filePath, Err: err}
	}

	slog.Debug("saved tasks", "path", s.filePath, "format", s.format, "count", len(tasks))
	return nil
}

func decodeTasks(format string, data []byte) ([]models.Task, error) {
	var list models.TaskList
	switch format {
	case FormatJSON:
		// Earlier releases wrote a bare array instead of a {"tasks": [...]} document.
		if trimmed := bytes.TrimSpace(data); trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &list.Tasks); err != nil {
				return nil, err
			}
			break
		}
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	tasks := list.Tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	for i := range tasks {
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
	}
	return tasks, nil
}

func encodeTasks(format string, tasks []models.Task) ([]byte, error) {
	list := models.TaskList{Tasks: make([]models.Task, 0, len(tasks))}
	for _, t := range tasks {
		if t.Tags == nil {
			t.Tags = []string{}
		}
		list.Tasks = append(list.Tasks, t)
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(list)
	case FormatTOML:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(list); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// checkCollection validates every record and rejects duplicate ids.
func checkCollection(tasks []models.Task) error {
	seen := make(map[int]struct{}, len(tasks))
	for i, t := range tasks {
		if err := models.ValidateStruct(t); err != nil {
			return fmt.Errorf("task at index %d: %w", i, err)
		}
		if strings.TrimSpace(t.Text) == "" {
			return fmt.Errorf("task at index %d: text is blank", i)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
