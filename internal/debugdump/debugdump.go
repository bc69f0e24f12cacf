// Package debugdump renders the `-debug` output `hawk` and `hawkvis`
// both need: the AST, symbol table, or typemap, as either the teacher's
// own plain indented text or as YAML. YAML marshalling needs its own
// tree shape because ast.Node's Parent pointer would otherwise send
// gopkg.in/yaml.v3 in circles.
package debugdump

import (
	"gopkg.in/yaml.v3"

	"hawk/internal/ast"
	"hawk/internal/bytecode"
	"hawk/internal/sema"
)

// Format selects the rendering the CLI's `-format` flag names.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

type yamlNode struct {
	Kind     string      `yaml:"kind"`
	Data     any         `yaml:"data,omitempty"`
	Start    string      `yaml:"start"`
	End      string      `yaml:"end"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

func toYAMLNode(n *ast.Node) *yamlNode {
	if n == nil {
		return nil
	}
	out := &yamlNode{
		Kind:  n.Kind.String(),
		Start: n.Start.String(),
		End:   n.End.String(),
	}
	switch n.Kind {
	case ast.Identifier, ast.VarRef:
		out.Data = n.Name()
	case ast.IntLiteral:
		out.Data = n.IntValue()
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, toYAMLNode(c))
	}
	return out
}

// AST renders root in the requested format.
func AST(root *ast.Node, format Format) (string, error) {
	if format == YAML {
		out, err := yaml.Marshal(toYAMLNode(root))
		return string(out), err
	}
	return ast.Dump(root), nil
}

type yamlSymbol struct {
	Ident string `yaml:"ident"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type yamlScope struct {
	Ident   string       `yaml:"ident"`
	Symbols []yamlSymbol `yaml:"symbols"`
}

// SymbolTable renders st in the requested format.
func SymbolTable(st *sema.SymbolTable, format Format) (string, error) {
	if format != YAML {
		return st.String(), nil
	}
	var scopes []yamlScope
	for _, sc := range st.Scopes() {
		ys := yamlScope{Ident: sc.Ident}
		for _, s := range sc.Symbols {
			ys.Symbols = append(ys.Symbols, yamlSymbol{
				Ident: s.Ident, Start: s.Start.String(), End: s.End.String(),
			})
		}
		scopes = append(scopes, ys)
	}
	out, err := yaml.Marshal(scopes)
	return string(out), err
}

type yamlTypeNode struct {
	Symbol   string   `yaml:"symbol"`
	Type     string   `yaml:"type"`
	IsBranch bool     `yaml:"is_branch,omitempty"`
	From     []string `yaml:"from,omitempty"`
}

// TypeMap renders tm in the requested format.
func TypeMap(tm *sema.TypeMap, format Format) (string, error) {
	if format != YAML {
		return tm.String(), nil
	}
	var nodes []yamlTypeNode
	for _, line := range tm.Nodes() {
		n := yamlTypeNode{Symbol: line.Symbol, Type: line.Type.Name, IsBranch: line.IsBranch}
		for _, c := range line.Children {
			n.From = append(n.From, c.Symbol)
		}
		nodes = append(nodes, n)
	}
	out, err := yaml.Marshal(nodes)
	return string(out), err
}

type yamlInstruction struct {
	Offset   int    `yaml:"offset"`
	Op       string `yaml:"op"`
	Operand  int32  `yaml:"operand,omitempty"`
	HasValue bool   `yaml:"has_value,omitempty"`
}

// Bytecode renders a disassembly of code in the requested format.
func Bytecode(code []byte, format Format) (string, error) {
	if format != YAML {
		return bytecode.Dump(code), nil
	}
	var instrs []yamlInstruction
	for _, i := range bytecode.Disassemble(code) {
		instrs = append(instrs, yamlInstruction{
			Offset: i.Offset, Op: i.Op.String(), Operand: i.Operand, HasValue: i.HasValue,
		})
	}
	out, err := yaml.Marshal(instrs)
	return string(out), err
}
