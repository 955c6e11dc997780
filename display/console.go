package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/btree"
	"golang.org/x/term"
)

// Kind selects a palette entry for one output element.
type Kind int

const (
	// InnerNode colors the key lists of internal nodes.
	InnerNode Kind = iota
	// LeafNode colors the key lists of leaves.
	LeafNode
	// Frame colors brackets and level prefixes.
	Frame
)

// Config holds rendering parameters.
type Config struct {
	// LineWidth is the clipping width for each output line; longer lines
	// are cut off with an ellipsis. Zero means no clipping.
	LineWidth int
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w <= 0 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	}
	return config
}

// Formatter renders map structure with a fixed color palette.
type Formatter struct {
	colors map[Kind]*color.Color
}

// NewFormatter creates a formatter. colors may contain a subset of the
// Kinds used during rendering; nil selects the default palette.
func NewFormatter(colors map[Kind]*color.Color) *Formatter {
	fw := &Formatter{}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[Kind]*color.Color {
	palette := map[Kind]*color.Color{
		InnerNode: color.New(color.FgBlue),
		LeafNode:  color.New(color.FgGreen),
		Frame:     color.New(color.FgHiBlack),
	}
	return palette
}

func (fw *Formatter) paint(kind Kind, s string) string {
	if c, ok := fw.colors[kind]; ok {
		return c.Sprint(s)
	}
	return s
}

// Print renders the tree structure of m to w, one line per tree level.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func Print[K, V any](fw *Formatter, m *ordmap.Map[K, V], w io.Writer, config *Config) error {
	if fw == nil || m == nil {
		return ordmap.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	levels := collectLevels(m)
	if len(levels) == 0 {
		_, err := fmt.Fprintln(w, fw.paint(Frame, "(empty map)"))
		return err
	}
	for i, nodes := range levels {
		line := fw.paint(Frame, fmt.Sprintf("%d: ", i+1))
		plain := len(fmt.Sprintf("%d: ", i+1))
		for j, node := range nodes {
			if j > 0 {
				line += " "
				plain++
			}
			kind := InnerNode
			if node.Leaf {
				kind = LeafNode
			}
			keys := formatKeys(node.Keys)
			line += fw.paint(Frame, "[") + fw.paint(kind, keys) + fw.paint(Frame, "]")
			plain += len(keys) + 2
			if config.LineWidth > 0 && plain > config.LineWidth {
				line += fw.paint(Frame, "…")
				break
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Sprint renders the tree structure of m to a string, without clipping.
func Sprint[K, V any](fw *Formatter, m *ordmap.Map[K, V]) string {
	var sb strings.Builder
	if err := Print(fw, m, &sb, &Config{}); err != nil {
		tracer().Errorf("display: %s", err.Error())
		return ""
	}
	return sb.String()
}

// PrintStdout renders the tree structure of m to stdout, clipped to the
// terminal width.
func PrintStdout[K, V any](fw *Formatter, m *ordmap.Map[K, V]) error {
	return Print(fw, m, os.Stdout, nil)
}

func collectLevels[K, V any](m *ordmap.Map[K, V]) [][]btree.NodeInfo[K] {
	var levels [][]btree.NodeInfo[K]
	m.WalkStructure(func(info btree.NodeInfo[K]) bool {
		for len(levels) < info.Level {
			levels = append(levels, nil)
		}
		levels[info.Level-1] = append(levels[info.Level-1], info)
		return true
	})
	return levels
}

func formatKeys[K any](keys []K) string {
	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", key)
	}
	return sb.String()
}
