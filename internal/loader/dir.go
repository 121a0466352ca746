package loader

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

// LoadDir walks the provided filesystem (typically an issue-template
// directory) and parses every YAML template found. Templates are returned in
// walk order; duplicate template names are rejected since the host keys the
// template picker on them.
func LoadDir(fsys fs.FS) ([]form.Template, error) {
	if fsys == nil {
		return nil, nil
	}

	var (
		templates []form.Template
		seen      = make(map[string]string)
	)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}

		tpl, err := form.ParseBytes(data, path)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(tpl.Name)
		if name == "" {
			return fmt.Errorf("loader: template %s has no name", path)
		}
		if prev, exists := seen[name]; exists {
			return fmt.Errorf("loader: duplicate template name %q (files %s and %s)", name, prev, path)
		}
		seen[name] = path

		templates = append(templates, tpl)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
