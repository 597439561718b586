package analyzer

import (
	"context"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// SourceUnit is one parsed TypeScript file: the raw text plus its syntax tree.
type SourceUnit struct {
	Path   string
	Source []byte
	Tree   *sitter.Tree
}

func parseSource(ctx context.Context, path string, source []byte) (*SourceUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageForPath(path))

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &SourceUnit{
		Path:   path,
		Source: source,
		Tree:   tree,
	}, nil
}

// languageForPath picks the grammar from the file extension. Anything that is
// not .tsx parses as plain TypeScript.
func languageForPath(path string) *sitter.Language {
	if filepath.Ext(path) == ".tsx" {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".ts" || ext == ".tsx"
}
