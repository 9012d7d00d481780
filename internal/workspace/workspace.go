// Package workspace reads and updates project descriptors stored in an
// Nx-style workspace.json at the tree root.
package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/cymig/cymig/internal/vfs"
)

// DefaultFile is the conventional workspace descriptor file name.
const DefaultFile = "workspace.json"

// TargetConfiguration describes one build/test target of a project.
type TargetConfiguration struct {
	Executor string                 `koanf:"executor" json:"executor"`
	Options  map[string]interface{} `koanf:"options" json:"options,omitempty"`
}

// ProjectConfiguration identifies a project inside the workspace.
type ProjectConfiguration struct {
	Root       string                         `koanf:"root" json:"root" validate:"required"`
	SourceRoot string                         `koanf:"sourceRoot" json:"sourceRoot,omitempty"`
	Targets    map[string]TargetConfiguration `koanf:"targets" json:"targets,omitempty"`
}

// Store gives read/update access to project configurations through the
// virtual tree.
type Store struct {
	tree     vfs.Tree
	path     string
	validate *validator.Validate
}

// NewStore returns a store backed by the workspace file at path.
func NewStore(tree vfs.Tree, path string) *Store {
	return &Store{tree: tree, path: path, validate: validator.New()}
}

// ReadProjectConfiguration returns the named project's descriptor.
func (s *Store) ReadProjectConfiguration(name string) (*ProjectConfiguration, error) {
	k, err := s.load()
	if err != nil {
		return nil, err
	}
	key := "projects." + name
	if !k.Exists(key) {
		return nil, fmt.Errorf("project %q not found in %s", name, s.path)
	}
	var cfg ProjectConfiguration
	if err := k.Unmarshal(key, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling project %q: %w", name, err)
	}
	if err := s.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration for project %q: %w", name, err)
	}
	return &cfg, nil
}

// UpdateProjectConfiguration replaces the named project's descriptor,
// leaving every other key in the workspace file untouched.
func (s *Store) UpdateProjectConfiguration(name string, cfg *ProjectConfiguration) error {
	if err := s.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration for project %q: %w", name, err)
	}
	k, err := s.load()
	if err != nil {
		return err
	}
	doc := k.Raw()
	projects, _ := doc["projects"].(map[string]interface{})
	if projects == nil {
		projects = make(map[string]interface{})
		doc["projects"] = projects
	}
	asMap, err := toMap(cfg)
	if err != nil {
		return fmt.Errorf("encoding project %q: %w", name, err)
	}
	projects[name] = asMap

	// koanf's json parser marshals compact; workspace files stay
	// human-edited, so indent on the way out.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	return s.tree.Write(s.path, string(data)+"\n")
}

// ProjectNames returns the names of all projects in the workspace, in
// unspecified order.
func (s *Store) ProjectNames() ([]string, error) {
	k, err := s.load()
	if err != nil {
		return nil, err
	}
	var names []string
	for name := range k.Cut("projects").Raw() {
		names = append(names, name)
	}
	return names, nil
}

func (s *Store) load() (*koanf.Koanf, error) {
	content, err := s.tree.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace file: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(content)), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return k, nil
}

func toMap(cfg *ProjectConfiguration) (map[string]interface{}, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
