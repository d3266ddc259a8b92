package excel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"siparis/domain/core"
)

const templateExt = ".xlsx"

var templateIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// TemplateStore resolves template ids to template workbooks inside a
// read-only file system. Every Load returns a fresh copy of the bytes, so
// callers never share or mutate the stored asset.
type TemplateStore struct {
	fsys    fs.FS
	aliases map[string]string
}

// NewTemplateStore serves templates from fsys. aliases maps extra ids onto
// template names, e.g. {"default": "siparis_template"}.
func NewTemplateStore(fsys fs.FS, aliases map[string]string) *TemplateStore {
	normalized := make(map[string]string, len(aliases))
	for id, name := range aliases {
		normalized[strings.TrimSpace(id)] = strings.TrimSuffix(strings.TrimSpace(name), templateExt)
	}
	return &TemplateStore{fsys: fsys, aliases: normalized}
}

// NewDirTemplateStore serves templates from a directory on disk.
func NewDirTemplateStore(dir string, aliases map[string]string) *TemplateStore {
	return NewTemplateStore(os.DirFS(dir), aliases)
}

// Resolve maps a template id onto its file name without touching the store.
func (s *TemplateStore) Resolve(templateID string) (string, error) {
	id := strings.TrimSpace(templateID)
	if name, ok := s.aliases[id]; ok {
		id = name
	}
	if !templateIDPattern.MatchString(id) {
		return "", core.NewTemplateNotFoundError(templateID, errors.New("invalid template id"))
	}
	return id + templateExt, nil
}

// Load returns the template workbook bytes for templateID.
func (s *TemplateStore) Load(templateID string) ([]byte, error) {
	name, err := s.Resolve(templateID)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NewTemplateNotFoundError(templateID, nil)
		}
		return nil, core.NewTemplateNotFoundError(templateID, fmt.Errorf("read %s: %w", name, err))
	}
	return data, nil
}

// Exists reports whether templateID resolves to a stored template.
func (s *TemplateStore) Exists(templateID string) bool {
	name, err := s.Resolve(templateID)
	if err != nil {
		return false
	}
	info, err := fs.Stat(s.fsys, name)
	return err == nil && !info.IsDir()
}
