package raster

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Formatting literals.
const (
	textTag        = "P2"
	textSep        = " "
	debugSep       = "\t"
	debugAbsent    = "."
	lineTerminator = "\n"
)

// Text renders the image in the plain P2 grayscale format:
//
//	P2
//	<cols> <rows>
//	<maxValue>
//	<row 0 values, space-separated, 0 for background>
//	...
//
// Every line, the last one included, ends with "\n".
// Complexity: O(R·(R + C)).
func (im *Image[T]) Text(maxValue T) string {
	var sb strings.Builder
	sb.WriteString(textTag + lineTerminator)
	sb.WriteString(strconv.Itoa(im.Cols()) + textSep + strconv.Itoa(im.Rows()) + lineTerminator)
	sb.WriteString(formatInt(maxValue) + lineTerminator)
	im.writeRows(&sb, textSep, "0")

	return sb.String()
}

// Pixels renders only the sample lines of Text, without the header.
func (im *Image[T]) Pixels() string {
	var sb strings.Builder
	im.writeRows(&sb, textSep, "0")

	return sb.String()
}

// DebugText renders one line per row with tab-separated values and "." for
// background pixels. It is meant for terminals, not for persistence.
func (im *Image[T]) DebugText() string {
	var sb strings.Builder
	im.writeRows(&sb, debugSep, debugAbsent)

	return sb.String()
}

// String implements fmt.Stringer using DebugText.
func (im *Image[T]) String() string { return im.DebugText() }

// writeRows walks each row chain once, filling gaps with absent.
func (im *Image[T]) writeRows(sb *strings.Builder, sep, absent string) {
	cols := im.Cols()
	for r := 0; r < im.Rows(); r++ {
		next := 0
		_ = im.grid.Row(r, func(c int, v T) bool {
			for ; next < c; next++ {
				writeCell(sb, next, sep, absent)
			}
			writeCell(sb, next, sep, formatInt(v))
			next++
			return true
		})
		for ; next < cols; next++ {
			writeCell(sb, next, sep, absent)
		}
		sb.WriteString(lineTerminator)
	}
}

func writeCell(sb *strings.Builder, col int, sep, s string) {
	if col > 0 {
		sb.WriteString(sep)
	}
	sb.WriteString(s)
}

// formatInt prints any integer kind without going through fmt.
func formatInt[T constraints.Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
