package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("loader: file path is required")
	}
	if !isTemplateFile(path) {
		return nil, fmt.Errorf("loader: %s is not a .yml or .yaml template", path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("loader: %s is a directory, not a template", path)
	}
	if info.Size() > form.MaxDocumentSize {
		return nil, fmt.Errorf("loader: template %s is %d bytes, above the %d byte limit",
			path, info.Size(), form.MaxDocumentSize)
	}

	return os.ReadFile(abs)
}
