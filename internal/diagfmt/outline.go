package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pystyle/internal/ast"
	"pystyle/internal/source"
)

// OutlineNode is one statement of the parse outline.
type OutlineNode struct {
	Kind     string        `json:"kind"`
	Label    string        `json:"label,omitempty"`
	Line     uint32        `json:"line"`
	EndLine  uint32        `json:"end_line"`
	Children []OutlineNode `json:"children,omitempty"`
}

// BuildOutline converts a parsed module into a statement tree. Expressions
// are summarized in labels only.
func BuildOutline(b *ast.Builder, mod *ast.Module, file *source.File) []OutlineNode {
	if mod == nil {
		return nil
	}
	return buildOutlineNodes(b, mod.Body, file)
}

func buildOutlineNodes(b *ast.Builder, ids []ast.StmtID, file *source.File) []OutlineNode {
	out := make([]OutlineNode, 0, len(ids))
	for _, id := range ids {
		st := b.Stmts.Get(id)
		if st == nil {
			continue
		}
		end := st.Span.End
		if end > st.Span.Start {
			end--
		}
		out = append(out, OutlineNode{
			Kind:     st.Kind.String(),
			Label:    stmtLabel(b, id, st),
			Line:     file.LineOf(st.Span.Start),
			EndLine:  file.LineOf(end),
			Children: buildOutlineNodes(b, b.Stmts.Block(id), file),
		})
	}
	return out
}

func stmtLabel(b *ast.Builder, id ast.StmtID, st *ast.Stmt) string {
	switch st.Kind {
	case ast.StmtFunctionDef:
		fn, _ := b.Stmts.FunctionDef(id)
		prefix := "def "
		if fn.Async {
			prefix = "async def "
		}
		return prefix + fn.Name + "(" + paramsLabel(&fn.Params) + ")"
	case ast.StmtClassDef:
		cls, _ := b.Stmts.ClassDef(id)
		return "class " + cls.Name
	case ast.StmtAssign:
		as, _ := b.Stmts.Assign(id)
		names := make([]string, 0, len(as.Targets))
		for _, t := range as.Targets {
			names = append(names, exprLabel(b, t))
		}
		return strings.Join(names, " = ")
	case ast.StmtImport, ast.StmtImportFrom, ast.StmtGlobal, ast.StmtNonlocal:
		data, _ := b.Stmts.NamesOf(id)
		names := make([]string, 0, len(data.Names))
		for _, n := range data.Names {
			if n.AsName != "" {
				names = append(names, n.Name+" as "+n.AsName)
				continue
			}
			names = append(names, n.Name)
		}
		label := strings.Join(names, ", ")
		if st.Kind == ast.StmtImportFrom {
			label = "from " + strings.Repeat(".", data.Level) + data.Module + " import " + label
		}
		return label
	}
	return ""
}

func paramsLabel(p *ast.Params) string {
	parts := make([]string, 0, len(p.Items)+1)
	starred := false
	for i, it := range p.Items {
		name := it.Name
		switch it.Kind {
		case ast.ParamVararg:
			name = "*" + name
			starred = true
		case ast.ParamKwarg:
			name = "**" + name
		case ast.ParamKwOnly:
			if !starred {
				parts = append(parts, "*")
				starred = true
			}
		}
		if it.Default.IsValid() {
			name += "=…"
		}
		parts = append(parts, name)
		// маркер позиционных параметров ставим после последнего из них
		if it.Kind == ast.ParamPosOnly && (i+1 == len(p.Items) || p.Items[i+1].Kind != ast.ParamPosOnly) {
			parts = append(parts, "/")
		}
	}
	return strings.Join(parts, ", ")
}

func exprLabel(b *ast.Builder, id ast.ExprID) string {
	x := b.Exprs.Get(id)
	if x == nil {
		return "?"
	}
	if x.Kind == ast.ExprName {
		return x.Name
	}
	return "<" + x.Kind.String() + ">"
}

// FormatOutlinePretty печатает дерево инструкций с отступами ├─ └─.
func FormatOutlinePretty(w io.Writer, path string, nodes []OutlineNode) error {
	if _, err := fmt.Fprintf(w, "Module %s\n", path); err != nil {
		return err
	}
	return writeOutline(w, nodes, "")
}

func writeOutline(w io.Writer, nodes []OutlineNode, prefix string) error {
	for i, n := range nodes {
		branch, next := "├─ ", "│  "
		if i == len(nodes)-1 {
			branch, next = "└─ ", "   "
		}
		line := prefix + branch + n.Kind
		if n.Label != "" {
			line += " " + n.Label
		}
		if n.EndLine > n.Line {
			line += fmt.Sprintf(" [%d-%d]", n.Line, n.EndLine)
		} else {
			line += fmt.Sprintf(" [%d]", n.Line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writeOutline(w, n.Children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

// FormatOutlineJSON выводит дерево в JSON.
func FormatOutlineJSON(w io.Writer, nodes []OutlineNode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(nodes)
}
