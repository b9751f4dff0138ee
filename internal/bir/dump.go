package bir

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders a deterministic, human-readable listing of the unit. It is
// the format golden tests and the inspection CLI compare against, so it must
// stay stable: declarations print in declaration order and annotation names
// print sorted.
func (m *Module) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n", m.Name)
	for _, d := range m.Decls {
		dumpDecl(&sb, d, 1)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpDecl(sb *strings.Builder, d Declaration, depth int) {
	switch n := d.(type) {
	case *Class:
		indent(sb, depth)
		fmt.Fprintf(sb, "%s %s\n", n.Kind, n.Name)
		if n.InstanceField != nil {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "field %s: %s [static]\n", n.InstanceField.Name, typeString(n.InstanceField.Type))
		}
		for _, member := range n.Members {
			dumpDecl(sb, member, depth+1)
		}
	case *Property:
		indent(sb, depth)
		fmt.Fprintf(sb, "property %s%s\n", n.Name, annotationSuffix(n.Annotations))
		if n.Getter != nil {
			dumpDecl(sb, n.Getter, depth+1)
		}
		if n.Setter != nil {
			dumpDecl(sb, n.Setter, depth+1)
		}
	case *Function:
		dumpFunction(sb, n, depth)
	}
}

func dumpFunction(sb *strings.Builder, fn *Function, depth int) {
	indent(sb, depth)
	fmt.Fprintf(sb, "fun %s%s(%s): %s%s%s\n",
		fn.Name,
		typeParamsString(fn.TypeParameters),
		paramsString(fn),
		typeString(fn.ReturnType),
		flagsSuffix(fn),
		annotationSuffix(fn.Annotations),
	)
	if fn.Body != nil {
		for _, e := range fn.Body.Exprs {
			dumpExpr(sb, e, depth+1)
		}
	}
}

func flagsSuffix(fn *Function) string {
	var flags []string
	if fn.Static {
		flags = append(flags, "static")
	}
	if fn.External {
		flags = append(flags, "external")
	}
	if fn.Suspend {
		flags = append(flags, "suspend")
	}
	if fn.DispatchReceiver != nil {
		flags = append(flags, "dispatch="+typeString(fn.DispatchReceiver.Type))
	}
	if fn.ExtensionReceiver != nil {
		flags = append(flags, "extension="+typeString(fn.ExtensionReceiver.Type))
	}
	if fn.Modality != ModalityFinal {
		flags = append(flags, fn.Modality.String())
	}
	if fn.Visibility != VisibilityPublic {
		flags = append(flags, fn.Visibility.String())
	}
	if fn.Origin != OriginSource {
		flags = append(flags, "origin="+fn.Origin.String())
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}

func annotationSuffix(list []*Annotation) string {
	if len(list) == 0 {
		return ""
	}
	names := make([]string, len(list))
	for i, a := range list {
		names[i] = "@" + a.Name
	}
	sort.Strings(names)
	return " " + strings.Join(names, " ")
}

func typeParamsString(list []*TypeParameter) string {
	if len(list) == 0 {
		return ""
	}
	names := make([]string, len(list))
	for i, tp := range list {
		names[i] = tp.Name
	}
	return "<" + strings.Join(names, ", ") + ">"
}

func paramsString(fn *Function) string {
	parts := make([]string, 0, len(fn.ValueParameters))
	for _, p := range fn.ValueParameters {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, typeString(p.Type)))
	}
	return strings.Join(parts, ", ")
}

func typeString(t Type) string {
	name := t.Name
	// Strip the stdlib prefix for readability.
	name = strings.TrimPrefix(name, "aster.")
	if len(t.Args) == 0 {
		return name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = typeString(a)
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}

func dumpExpr(sb *strings.Builder, e Expression, depth int) {
	indent(sb, depth)
	switch n := e.(type) {
	case *Call:
		target := "<unbound>"
		if fn := n.Target.Owner(); fn != nil {
			target = ownerPrefix(fn) + fn.Name
		}
		fmt.Fprintf(sb, "call %s: %s\n", target, typeString(n.RetType))
		if n.Dispatch != nil {
			indent(sb, depth+1)
			sb.WriteString("dispatch:\n")
			dumpExpr(sb, n.Dispatch, depth+2)
		}
		if n.Extension != nil {
			indent(sb, depth+1)
			sb.WriteString("extension:\n")
			dumpExpr(sb, n.Extension, depth+2)
		}
		for i, a := range n.Args {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "arg %d:\n", i)
			dumpExpr(sb, a, depth+2)
		}
	case *Block:
		sb.WriteString("block\n")
		for _, sub := range n.Exprs {
			dumpExpr(sb, sub, depth+1)
		}
	case *GetValue:
		fmt.Fprintf(sb, "get-value %s: %s\n", n.Param.Name, typeString(n.Param.Type))
	case *GetField:
		owner := ""
		if n.Field.Owner != nil {
			owner = n.Field.Owner.Name + "."
		}
		fmt.Fprintf(sb, "get-field %s%s: %s\n", owner, n.Field.Name, typeString(n.Field.Type))
		if n.Receiver != nil {
			dumpExpr(sb, n.Receiver, depth+1)
		}
	case *SetField:
		fmt.Fprintf(sb, "set-field %s\n", n.Field.Name)
		if n.Receiver != nil {
			dumpExpr(sb, n.Receiver, depth+1)
		}
		dumpExpr(sb, n.Value, depth+1)
	case *Const:
		switch n.Kind {
		case ConstInt:
			fmt.Fprintf(sb, "const %d: %s\n", n.Int64, typeString(n.ValType))
		case ConstString:
			fmt.Fprintf(sb, "const %q: %s\n", n.Str, typeString(n.ValType))
		case ConstBool:
			fmt.Fprintf(sb, "const %t: %s\n", n.Bool, typeString(n.ValType))
		default:
			sb.WriteString("const unit\n")
		}
	case *TypeOperator:
		fmt.Fprintf(sb, "type-op %s -> %s\n", n.Op, typeString(n.Target))
		dumpExpr(sb, n.Operand, depth+1)
	case *Return:
		sb.WriteString("return\n")
		if n.Value != nil {
			dumpExpr(sb, n.Value, depth+1)
		}
	default:
		fmt.Fprintf(sb, "<%T>\n", e)
	}
}

func ownerPrefix(fn *Function) string {
	if cls, ok := fn.Parent.(*Class); ok {
		return cls.Name + "."
	}
	if prop := fn.CorrespondingProperty; prop != nil {
		if cls, ok := prop.Parent.(*Class); ok {
			return cls.Name + "."
		}
	}
	return ""
}
