package rules

import (
	"pystyle/internal/diag"
)

// Family groups rules by the input they need.
type Family uint8

const (
	FamilyLine Family = iota
	FamilyBlank
	FamilyTree
)

func (f Family) String() string {
	switch f {
	case FamilyLine:
		return "line"
	case FamilyBlank:
		return "blank"
	case FamilyTree:
		return "tree"
	}
	return "unknown"
}

// Info описывает правило для `pystyle rules`, SARIF и документации.
type Info struct {
	Code    diag.Code
	Name    string
	Family  Family
	Summary string
}

// ID returns the printed rule code, e.g. "S004".
func (i Info) ID() string { return i.Code.ID() }

var catalog = []Info{
	{diag.StyleTooLong, "too-long", FamilyLine, "Line is longer than 79 characters"},
	{diag.StyleIndentation, "indentation", FamilyLine, "Indentation is not a multiple of four"},
	{diag.StyleSemicolon, "semicolon", FamilyLine, "Statement ends with an unnecessary semicolon"},
	{diag.StyleCommentSpacing, "comment-spacing", FamilyLine, "Inline comment is not preceded by two spaces"},
	{diag.StyleTodo, "todo", FamilyLine, "Comment contains TODO"},
	{diag.StyleBlankLines, "blank-lines", FamilyBlank, "More than two blank lines before a code line"},
	{diag.StyleConstructionSpaces, "construction-spaces", FamilyLine, "Too many spaces after 'class' or 'def'"},
	{diag.StyleClassName, "class-name", FamilyLine, "Class name should use CamelCase"},
	{diag.StyleFunctionName, "function-name", FamilyLine, "Function name should use snake_case"},
	{diag.StyleArgumentName, "argument-name", FamilyTree, "Argument name should be written in snake_case"},
	{diag.StyleVariableName, "variable-name", FamilyTree, "Variable in function should be snake_case"},
	{diag.StyleMutableDefault, "mutable-default", FamilyTree, "Default argument value is a mutable literal"},
}

// Catalog returns all rules ordered by code.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a rule by its code.
func Lookup(code diag.Code) (Info, bool) {
	for _, info := range catalog {
		if info.Code == code {
			return info, true
		}
	}
	return Info{}, false
}
