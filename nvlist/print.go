package nvlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghishadow/color"
)

var typeColor = color.New(color.FgCyan)

// Print writes a human-readable, indented dump of l to w, in the same
// shape as nvlist_print() in the original nvlist.c: one line per pair,
// hex for integers (signed and unsigned, scalars and arrays),
// true/false for boolean values, quoted strings, and a two-space indent per nesting
// level. Type tags are colorized the way status output gets colorized
// elsewhere in this toolchain; pass color.NoColor = true (or pipe w to a
// non-terminal) for plain text.
func Print(w io.Writer, l *List, indent int) error {
	pairs, err := l.Pairs()
	if err != nil {
		return err
	}
	pad := strings.Repeat(" ", indent)
	for _, p := range pairs {
		fmt.Fprintf(w, "%s%s: %s ", pad, p.Name, typeColor.Sprint(p.Value.Type.String()))
		if err := printValue(w, p.Value, indent); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%sEnd of nvlist\n", strings.Repeat(" ", indent+13))
	return nil
}

func printValue(w io.Writer, v Value, indent int) error {
	switch v.Type {
	case TypeBoolean:
		fmt.Fprintln(w)
	case TypeBooleanValue:
		fmt.Fprintln(w, v.Bool)
	case TypeByte, TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		fmt.Fprintf(w, "0x%x\n", v.Uint)
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		fmt.Fprintf(w, "%#x\n", v.Int)
	case TypeString:
		fmt.Fprintf(w, "%q\n", v.Str)
	case TypeByteArray:
		fmt.Fprintf(w, "% x\n", v.Bytes)
	case TypeStringArray:
		fmt.Fprintf(w, "%q\n", v.Strs)
	case TypeBooleanArray:
		fmt.Fprintf(w, "%v\n", v.Bools)
	case TypeInt8Array, TypeInt16Array, TypeInt32Array, TypeInt64Array:
		fmt.Fprintf(w, "%#x\n", v.Ints)
	case TypeUint16Array, TypeUint32Array, TypeUint64Array:
		fmt.Fprintf(w, "%#x\n", v.Uints)
	case TypeNvlist:
		fmt.Fprintln(w)
		return Print(w, v.List, indent+2)
	case TypeNvlistArray:
		fmt.Fprintln(w)
		for _, child := range v.Lists {
			if err := Print(w, child, indent+2); err != nil {
				return err
			}
		}
	default:
		fmt.Fprintln(w, "<unsupported>")
	}
	return nil
}
