package driver

import (
	"fortio.org/safecast"

	"pystyle/internal/ast"
	"pystyle/internal/diag"
	"pystyle/internal/parser"
	"pystyle/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Module  *ast.Module
	Bag     *diag.Bag
}

// Parse loads and parses one file. Syntax errors end up in Bag, not in err.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, &LoadError{Path: filePath, Code: diag.IOReadFileError, Err: err}
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{})

	var maxErrors uint
	maxErrors, err = safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.Parse(file, builder, parser.Options{
		Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: bag, File: file}),
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Module:  result.Module,
		Bag:     bag,
	}, nil
}
