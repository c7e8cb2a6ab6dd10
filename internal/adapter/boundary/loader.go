package boundary

import (
	"context"
	"fmt"
	"os"

	"github.com/couchcryptid/zone-load-map/internal/domain"
)

// Loader reads zone boundaries from a GeoJSON file.
// It implements pipeline.GeometrySource.
type Loader struct {
	path         string
	nameProperty string
}

// NewLoader creates a Loader for the file at path, naming zones by the given
// feature property.
func NewLoader(path, nameProperty string) *Loader {
	return &Loader{path: path, nameProperty: nameProperty}
}

// LoadGeometries opens and decodes the boundary file.
func (l *Loader) LoadGeometries(ctx context.Context) (domain.GeometrySet, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeometrySet{}, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return domain.GeometrySet{}, fmt.Errorf("open boundaries: %w", err)
	}
	defer f.Close()

	set, err := Decode(f, l.nameProperty)
	if err != nil {
		return domain.GeometrySet{}, fmt.Errorf("load boundaries %s: %w", l.path, err)
	}
	return set, nil
}
