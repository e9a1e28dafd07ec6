package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"sheetnav/internal/diagfmt"
	"sheetnav/internal/driver"
	"sheetnav/internal/history"
	"sheetnav/internal/sheet"
)

const transitionOps = "close|clear-action|save|rename|select|value-type"

func newTransitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transition [flags] FRAGMENT OP [ARG...]",
		Short: "Apply a navigation transition to a fragment",
		Long: `Transition parses FRAGMENT and applies OP:

  close                       leave the current dialog or action
  clear-action                drop the pending action, keep the dialog
  save [VALUE]                save VALUE (empty when omitted)
  rename                      open the rename dialog
  select none                 drop the selection
  select FAMILY SEL [ANCHOR]  select e.g. "cell B2:C3 top-left" or "row 4"
  value-type TYPE|none        open the value type dialog

Transitions that do not apply leave the token unchanged and print a note.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runTransition,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack|short)")
	cmd.Flags().Bool("fields", false, "print every token field (pretty format)")
	return cmd
}

func runTransition(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd.Context())
	fields, err := cmd.Flags().GetBool("fields")
	if err != nil {
		return fmt.Errorf("failed to get fields flag: %w", err)
	}

	entries, err := parseEntries(cmd, s, driver.Inputs(args[0]))
	if err != nil {
		return err
	}
	next, err := applyTransition(entries[0].Token, args[1], args[2:])
	switch {
	case errors.Is(err, history.ErrIgnored):
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %v\n", err)
	case err != nil:
		return err
	}
	out := diagfmt.Entry{Input: args[0], Token: next, Diagnostics: entries[0].Diagnostics}
	return writeEntries(cmd, s, []diagfmt.Entry{out}, fields)
}

func applyTransition(tok history.Token, op string, args []string) (history.Token, error) {
	want := func(n int) error {
		if len(args) > n {
			return fmt.Errorf("%s: unexpected arguments %q", op, args[n:])
		}
		return nil
	}
	switch op {
	case "close":
		if err := want(0); err != nil {
			return tok, err
		}
		return tok.Close(), nil
	case "clear-action":
		if err := want(0); err != nil {
			return tok, err
		}
		return tok.ClearAction(), nil
	case "rename":
		if err := want(0); err != nil {
			return tok, err
		}
		return tok.Rename()
	case "save":
		if err := want(1); err != nil {
			return tok, err
		}
		value := ""
		if len(args) == 1 {
			value = args[0]
		}
		return tok.SetSaveValue(value)
	case "select":
		sel, err := selectionArg(args)
		if err != nil {
			return tok, err
		}
		return tok.SetSelection(sel)
	case "value-type":
		if len(args) != 1 {
			return tok, errors.New("value-type: expected TYPE or none")
		}
		if args[0] == "none" {
			return tok.SetValueType(mo.None[sheet.ValueType]())
		}
		vt, err := sheet.ParseValueType(args[0])
		if err != nil {
			return tok, err
		}
		return tok.SetValueType(mo.Some(vt))
	}
	return tok, fmt.Errorf("unknown transition %q (expected %s)", op, transitionOps)
}

// selectionArg parses "none" or FAMILY SEL [ANCHOR]; a missing anchor means
// the default one for the selection.
func selectionArg(args []string) (mo.Option[sheet.AnchoredSelection], error) {
	if len(args) == 1 && args[0] == "none" {
		return mo.None[sheet.AnchoredSelection](), nil
	}
	if len(args) < 2 || len(args) > 3 {
		return mo.None[sheet.AnchoredSelection](), errors.New("select: expected none or FAMILY SELECTION [ANCHOR]")
	}
	var family sheet.Family
	switch strings.ToLower(args[0]) {
	case "cell":
		family = sheet.FamilyCell
	case "column":
		family = sheet.FamilyColumn
	case "row":
		family = sheet.FamilyRow
	default:
		return mo.None[sheet.AnchoredSelection](), fmt.Errorf("select: unknown family %q (expected cell|column|row)", args[0])
	}
	sel, err := sheet.ParseSelection(family, args[1])
	if err != nil {
		return mo.None[sheet.AnchoredSelection](), fmt.Errorf("select: %w", err)
	}
	if len(args) == 2 {
		return mo.Some(sheet.Anchored(sel)), nil
	}
	anchor, ok := sheet.ParseAnchor(args[2])
	if !ok {
		return mo.None[sheet.AnchoredSelection](), fmt.Errorf("select: unknown anchor %q", args[2])
	}
	as, err := sheet.NewAnchoredSelection(sel, anchor)
	if err != nil {
		return mo.None[sheet.AnchoredSelection](), fmt.Errorf("select: %w", err)
	}
	return mo.Some(as), nil
}
