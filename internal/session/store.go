package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// User is the cached profile of the signed-in user.
type User struct {
	ID             string `koanf:"id" yaml:"id"`
	Name           string `koanf:"name" yaml:"name"`
	Email          string `koanf:"email" yaml:"email"`
	ProfilePicture string `koanf:"profile_picture" yaml:"profile_picture,omitempty"`
}

type State struct {
	Token            string `koanf:"token" yaml:"token,omitempty"`
	User             *User  `koanf:"user" yaml:"user,omitempty"`
	Theme            string `koanf:"theme" yaml:"theme,omitempty"`
	SidebarCollapsed bool   `koanf:"sidebar_collapsed" yaml:"sidebar_collapsed"`
}

type Store interface {
	Load() (State, error)
	Save(State) error
}

// FileStore keeps the session in a YAML file readable only by its owner.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns ~/.config/taskboard/session.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "taskboard", "session.yaml"), nil
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns an empty state with sidebar collapsed when no file exists yet.
func (s *FileStore) Load() (State, error) {
	st := State{SidebarCollapsed: true}

	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("failed to read session file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return st, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	if err := k.Unmarshal("", &st); err != nil {
		return st, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return st, nil
}

func (s *FileStore) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := yamlv3.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return os.Chmod(s.path, 0600)
}
