package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print renders a node as an indented tree with field names and variant
// tags, the shape downstream consumers and the CLI show on success.
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, "", node, 0)
	return sb.String()
}

// Fprint writes the rendering of node to w.
func Fprint(w io.Writer, node Node) error {
	_, err := io.WriteString(w, Print(node))
	return err
}

func printNode(sb *strings.Builder, label string, node Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
	if node == nil {
		sb.WriteString("<missing>\n")
		return
	}
	sb.WriteString(head(node))
	sb.WriteString("\n")
	for _, c := range children(node) {
		printNode(sb, c.label, c.node, depth+1)
	}
}

type child struct {
	label string
	node  Node
}

// head renders the node's variant tag plus its scalar fields.
func head(node Node) string {
	switch n := node.(type) {
	case *Program:
		return "Program"
	case *LetExpr:
		return fmt.Sprintf("LetExpr(%s)", n.Name)
	case *IfExpr:
		return "IfExpr"
	case *Lambda:
		return fmt.Sprintf("Lambda(%s)", n.Param)
	case *MatchExpr:
		return "MatchExpr"
	case *MatchArm:
		return "MatchArm"
	case *Comparison:
		return fmt.Sprintf("Comparison(%s)", n.Op)
	case *Logic:
		return fmt.Sprintf("Logic(%s)", n.Op)
	case *Arithmetic:
		return fmt.Sprintf("Arithmetic(%s)", n.Op)
	case *Application:
		return "Application"
	case *Composition:
		return "Composition"
	case *MemberAccess:
		return fmt.Sprintf("MemberAccess(%s)", n.Member)
	case *Ident:
		return fmt.Sprintf("Identifier(%s)", n.Name)
	case *NumberLit:
		return "Number(" + formatNumber(n.Value) + ")"
	case *IdentPattern:
		return fmt.Sprintf("IdentifierPattern(%s)", n.Name)
	case *NumberPattern:
		return "NumberPattern(" + formatNumber(n.Value) + ")"
	case *PrimType:
		return string(n.Kind)
	case *FuncType:
		return "Function"
	default:
		return fmt.Sprintf("%T", node)
	}
}

func children(node Node) []child {
	switch n := node.(type) {
	case *Program:
		return []child{{"Expression", n.Expression}}
	case *LetExpr:
		cs := []child{}
		if n.Type != nil {
			cs = append(cs, child{"Type", n.Type})
		}
		return append(cs, child{"Value", n.Value}, child{"Body", n.Body})
	case *IfExpr:
		return []child{{"Condition", n.Condition}, {"Then", n.Then}, {"Else", n.Else}}
	case *Lambda:
		cs := []child{}
		if n.Type != nil {
			cs = append(cs, child{"Type", n.Type})
		}
		return append(cs, child{"Body", n.Body})
	case *MatchExpr:
		cs := []child{{"Subject", n.Subject}}
		for _, arm := range n.Arms {
			cs = append(cs, child{"", arm})
		}
		return cs
	case *MatchArm:
		return []child{{"Pattern", n.Pattern}, {"Body", n.Body}}
	case *Comparison:
		return []child{{"Left", n.Left}, {"Right", n.Right}}
	case *Logic:
		return []child{{"Left", n.Left}, {"Right", n.Right}}
	case *Arithmetic:
		return []child{{"Left", n.Left}, {"Right", n.Right}}
	case *Application:
		return []child{{"Function", n.Fn}, {"Argument", n.Arg}}
	case *Composition:
		return []child{{"Left", n.Left}, {"Right", n.Right}}
	case *MemberAccess:
		return []child{{"Object", n.Object}}
	case *FuncType:
		return []child{{"From", n.From}, {"To", n.To}}
	default:
		return nil
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
