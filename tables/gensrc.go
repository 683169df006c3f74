package tables

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// valuesPerLine keeps generated array literals diff-friendly.
const valuesPerLine = 16

// WriteGoSource emits t as a generated Go source file: ReadBits and
// MissingValueLen constants plus parallel arrays for the read, write, and
// length tables. Array element types are the smallest unsigned Go types that
// hold the largest stored value, chosen through the minimal-width ladder.
//
// The emitted file is self-contained and import-free, ready to be embedded in
// a consumer package:
//
//	var ReadMSBValues = [256]uint8{...}
//	var ReadMSBBits = [256]uint8{...}
//	...
func WriteGoSource(w io.Writer, t *Tables, pkgName string) error {
	bw := bufio.NewWriter(w)

	family := strings.ToLower(t.Config.Family.String())
	fmt.Fprintf(bw, "// Code generated by gentables. DO NOT EDIT.\n")
	fmt.Fprintf(bw, "// Lookup tables for the %s code, readBits=%d maxValue=%d.\n\n",
		family, t.Config.ReadBits, t.Config.MaxValue)
	fmt.Fprintf(bw, "package %s\n\n", pkgName)

	fmt.Fprintf(bw, "// ReadBits is the window width the read tables are indexed by.\n")
	fmt.Fprintf(bw, "const ReadBits = %d\n\n", t.Config.ReadBits)
	fmt.Fprintf(bw, "// MissingValueLen marks windows holding no complete codeword.\n")
	fmt.Fprintf(bw, "const MissingValueLen = %d\n\n", t.MissingValueLen)

	if err := writeReadTable(bw, "ReadMSB", t.ReadMSB); err != nil {
		return err
	}
	if err := writeReadTable(bw, "ReadLSB", t.ReadLSB); err != nil {
		return err
	}
	if err := writeWriteTable(bw, "WriteMSB", t.WriteMSB); err != nil {
		return err
	}
	if err := writeWriteTable(bw, "WriteLSB", t.WriteLSB); err != nil {
		return err
	}

	lens := make([]uint64, len(t.Len))
	for i, l := range t.Len {
		lens[i] = uint64(l)
	}
	if err := writeArray(bw, "Len", lens); err != nil {
		return err
	}

	return bw.Flush()
}

func writeReadTable(w io.Writer, name string, entries []ReadEntry) error {
	values := make([]uint64, len(entries))
	lens := make([]uint64, len(entries))
	for i, e := range entries {
		values[i] = e.Value
		lens[i] = uint64(e.Bits)
	}

	if err := writeArray(w, name+"Values", values); err != nil {
		return err
	}

	return writeArray(w, name+"Bits", lens)
}

func writeWriteTable(w io.Writer, name string, entries []WriteEntry) error {
	patterns := make([]uint64, len(entries))
	lens := make([]uint64, len(entries))
	for i, e := range entries {
		patterns[i] = e.Pattern
		lens[i] = uint64(e.Bits)
	}

	if err := writeArray(w, name+"Patterns", patterns); err != nil {
		return err
	}

	return writeArray(w, name+"Bits", lens)
}

// writeArray emits one fixed-size array literal with the minimal element
// type for its content.
func writeArray(w io.Writer, name string, values []uint64) error {
	var maxVal uint64
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	width, err := MinUintWidthFor(maxVal)
	if err != nil {
		return err
	}

	goType, err := GoType(width)
	if err != nil {
		return fmt.Errorf("emitting %s: %w", name, err)
	}

	fmt.Fprintf(w, "var %s = [%d]%s{\n", name, len(values), goType)
	for i, v := range values {
		if i%valuesPerLine == 0 {
			fmt.Fprintf(w, "\t")
		}
		fmt.Fprintf(w, "%d,", v)
		if i%valuesPerLine == valuesPerLine-1 || i == len(values)-1 {
			fmt.Fprintf(w, "\n")
		} else {
			fmt.Fprintf(w, " ")
		}
	}
	fmt.Fprintf(w, "}\n\n")

	return nil
}
