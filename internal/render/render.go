// Package render formats analysis results for people (Text) and programs (JSON).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/homology/pipeline"
)

// MaxListed caps the number of Betti numbers printed by Text.
const MaxListed = 6

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown format %q (want text or json)", s)
	}
}

// Write renders res to w in format f.
func Write(w io.Writer, f Format, res *pipeline.Result) error {
	if f == FormatJSON {
		return JSON(w, res)
	}

	return Text(w, res)
}

// Text writes the hole summary, the Betti listing and, for a drawing with
// several components, the left-to-right hole report. Only β_p below the
// dimension count are listed, so a lone point shows β_0 alone.
func Text(w io.Writer, res *pipeline.Result) error {
	var sb strings.Builder
	sb.WriteString(HoleSummary(res.Betti.Holes()))
	sb.WriteByte('\n')
	sb.WriteString("The Betti numbers are:\n")
	for p := 0; p < res.Betti.Len() && p < MaxListed; p++ {
		fmt.Fprintf(&sb, "β_%d = %d\n", p, res.Betti.At(p))
	}
	if line := ComponentSummary(res.Holes()); line != "" {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// HoleSummary returns "Your drawing has N hole(s)." with a singular for N = 1.
func HoleSummary(holes int) string {
	if holes == 1 {
		return "Your drawing has 1 hole."
	}

	return "Your drawing has " + strconv.Itoa(holes) + " holes."
}

// ComponentSummary lists per-component hole counts left to right, or returns
// "" for fewer than two components.
//
//	[0 1]    → "... have 0 and 1 holes, respectively."
//	[0 1 2]  → "... have 0, 1, and 2 holes, respectively."
func ComponentSummary(holes []int) string {
	n := len(holes)
	if n < 2 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("From left to right, the components of your drawing have ")
	if n == 2 {
		sb.WriteString(strconv.Itoa(holes[0]))
		sb.WriteByte(' ')
	} else {
		for _, h := range holes[:n-1] {
			sb.WriteString(strconv.Itoa(h))
			sb.WriteString(", ")
		}
	}
	sb.WriteString("and ")
	sb.WriteString(strconv.Itoa(holes[n-1]))
	sb.WriteString(" holes, respectively.")

	return sb.String()
}

// JSON writes res as indented JSON followed by a newline.
func JSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}
