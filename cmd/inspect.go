package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/selection-lens/internal/ax"
	"github.com/mj1618/selection-lens/internal/model"
	"github.com/mj1618/selection-lens/internal/output"
	"github.com/mj1618/selection-lens/internal/selection"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe the focused UI element",
	Long: `Print the focused element's pid and role with the attribute and
parameterized attribute names it supports.

Use --attr to also read one attribute. Strings, numbers, booleans and
geometry values are printed as-is; elements by pid and role; arrays item by item.

Use --range to print the on-screen bounds of a character range in the
focused element, whether or not it is selected.

Examples:
  selection-lens inspect
  selection-lens inspect --attr AXSelectedTextRange
  selection-lens inspect --range 0,12
  selection-lens inspect --attr AXChildren --format json`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("attr", "", "Attribute to read (e.g. AXValue)")
	inspectCmd.Flags().String("range", "", "Character range LOCATION,LENGTH to measure")
}

func runInspect(cmd *cobra.Command, args []string) error {
	attr, _ := cmd.Flags().GetString("attr")
	rangeStr, _ := cmd.Flags().GetString("range")

	var rng ax.Range
	if rangeStr != "" {
		var err error
		if rng, err = parseRange(rangeStr); err != nil {
			return err
		}
	}

	ctrl, err := newController()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ins, err := ctrl.Inspect(attr)
	if err != nil {
		return fmt.Errorf("inspect focused element: %w", err)
	}
	if rangeStr != "" {
		ins.Range = measureRange(ctrl, rng)
	}
	return output.Print(ins)
}

// parseRange parses "LOCATION,LENGTH".
func parseRange(s string) (ax.Range, error) {
	loc, length, found := strings.Cut(s, ",")
	if !found {
		return ax.Range{}, fmt.Errorf("invalid --range %q (use LOCATION,LENGTH)", s)
	}
	l, err1 := strconv.Atoi(strings.TrimSpace(loc))
	n, err2 := strconv.Atoi(strings.TrimSpace(length))
	if err1 != nil || err2 != nil || l < 0 || n < 0 {
		return ax.Range{}, fmt.Errorf("invalid --range %q (use non-negative LOCATION,LENGTH)", s)
	}
	return ax.Range{Location: l, Length: n}, nil
}

func measureRange(ctrl *selection.Controller, r ax.Range) *model.RangeBounds {
	rb := &model.RangeBounds{Location: r.Location, Length: r.Length}
	bounds, ok, err := ctrl.RangeBounds(r)
	switch {
	case err != nil:
		rb.Error = err.Error()
	case !ok:
		rb.Error = "bounds are not a rectangle"
	default:
		b := selection.RoundBounds(bounds)
		rb.Bounds = &b
	}
	return rb
}
