package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("loader: fs is nil")
	}
	if !isTemplateFile(name) {
		return nil, fmt.Errorf("loader: %s is not a .yml or .yaml template", name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := fs.Stat(files, name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("loader: %s is a directory, not a template", name)
	}
	if info.Size() > form.MaxDocumentSize {
		return nil, fmt.Errorf("loader: template %s is %d bytes, above the %d byte limit",
			name, info.Size(), form.MaxDocumentSize)
	}

	return fs.ReadFile(files, name)
}
