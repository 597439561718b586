package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/routemock/routemock/internal/logger"
)

// Analyzer walks a source tree and folds the entities extracted from every
// TypeScript file into one catalog.
type Analyzer struct {
	rootPath string
	log      logger.Logger
}

func New(rootPath string, log logger.Logger) *Analyzer {
	return &Analyzer{
		rootPath: rootPath,
		log:      log,
	}
}

// Analyze builds the schema catalog for the tree rooted at the analyzer's
// path. Entities keep per-file declaration order; files are visited in
// filepath.Walk order. A file that cannot be read or parsed aborts the whole
// build, so the caller never serves a silently incomplete catalog.
func (a *Analyzer) Analyze(ctx context.Context) ([]Entity, error) {
	entities := []Entity{}

	err := filepath.Walk(a.rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isSourceFile(path) {
			return nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read source file %s: %w", path, err)
		}

		unit, err := parseSource(ctx, path, source)
		if err != nil {
			return err
		}

		found := extractEntities(unit)
		a.log.Debug("scanned source file", "path", path, "entities", len(found))

		entities = append(entities, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entities, nil
}
