package ast

import "pystyle/internal/source"

type ParamKind uint8

const (
	ParamPosOnly ParamKind = iota // до '/'
	ParamRegular
	ParamVararg // *args
	ParamKwOnly // после '*' или *args
	ParamKwarg  // **kwargs
)

type Param struct {
	Kind       ParamKind
	Name       string
	Span       source.Span
	Annotation ExprID
	Default    ExprID
}

// Params is a parameter list in source order.
type Params struct {
	Span  source.Span
	Items []Param
}

// Regular returns the parameters between '/' and '*': positional-only
// parameters and everything after '*' are excluded.
func (p *Params) Regular() []Param {
	var out []Param
	for _, it := range p.Items {
		if it.Kind == ParamRegular {
			out = append(out, it)
		}
	}
	return out
}

// Defaults returns default values of positional-only and regular parameters
// in source order. Keyword-only defaults are not included.
func (p *Params) Defaults() []ExprID {
	var out []ExprID
	for _, it := range p.Items {
		if !it.Default.IsValid() {
			continue
		}
		if it.Kind == ParamPosOnly || it.Kind == ParamRegular {
			out = append(out, it.Default)
		}
	}
	return out
}
