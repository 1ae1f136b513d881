package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/render"
)

// Rendering flags shared by the render and view commands. Flag values
// layer on top of the lumen.toml profile, which layers on the defaults.
func registerSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().Int("indent", render.DefaultSettings().Indent, "indentation width for wrapped containers")
	cmd.Flags().Int("max-depth", render.DepthUnlimited, "container nesting cutoff (-1 for unlimited)")
	cmd.Flags().String("radix", "dec", "integer radix (dec|hex|oct|bin)")
	cmd.Flags().Bool("no-suffix", false, "omit numeric type suffixes")
	cmd.Flags().Int("byte-limit", render.DefaultSettings().ByteLimit, "max bytes shown for byte sequences (0 for all)")
	cmd.Flags().Bool("rainbow", false, "cycle bracket colors per nesting level")
	cmd.Flags().Bool("force-newline", false, "always put container elements on their own lines")
	cmd.Flags().Int("wrap", 200, "single-line width threshold for all container families (0 disables)")
	cmd.Flags().Int("list-wrap", 200, "width threshold for lists, overrides --wrap")
	cmd.Flags().Int("array-wrap", 200, "width threshold for arrays, overrides --wrap")
	cmd.Flags().Int("record-wrap", 200, "width threshold for records, overrides --wrap")
	cmd.Flags().Int("tuple-wrap", 200, "width threshold for tuples, overrides --wrap")
}

func parseRadix(s string) (render.Radix, error) {
	switch strings.ToLower(s) {
	case "dec", "":
		return render.RadixDec, nil
	case "hex":
		return render.RadixHex, nil
	case "oct":
		return render.RadixOct, nil
	case "bin":
		return render.RadixBin, nil
	default:
		return render.RadixDec, fmt.Errorf("unsupported radix %q (must be dec, hex, oct or bin)", s)
	}
}

func wrapFromInt(n int) render.WrapLimit {
	if n <= 0 {
		return render.WrapLimit{}
	}
	return render.WrapAt(n)
}

// resolveSettings builds the effective Settings: defaults, then the
// lumen.toml profile, then explicit flags.
func resolveSettings(cmd *cobra.Command) (render.Settings, error) {
	s := render.DefaultSettings()

	profile, found, err := loadProfile(".")
	if err != nil {
		return s, err
	}
	if found {
		profile.apply(&s)
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		s.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("max-depth") {
		s.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("radix") {
		raw, _ := flags.GetString("radix")
		s.Radix, err = parseRadix(raw)
		if err != nil {
			return s, err
		}
	}
	if flags.Changed("no-suffix") {
		noSuffix, _ := flags.GetBool("no-suffix")
		s.PrintSuffix = !noSuffix
	}
	if flags.Changed("byte-limit") {
		s.ByteLimit, _ = flags.GetInt("byte-limit")
	}
	if flags.Changed("rainbow") {
		s.RainbowBracket, _ = flags.GetBool("rainbow")
	}
	if flags.Changed("force-newline") {
		s.ForceNewline, _ = flags.GetBool("force-newline")
	}
	if flags.Changed("wrap") {
		n, _ := flags.GetInt("wrap")
		limit := wrapFromInt(n)
		s.ListWrap = limit
		s.ArrayWrap = limit
		s.RecordWrap = limit
		s.TupleWrap = limit
	}
	// Per-family thresholds layer on top of the shared one.
	if flags.Changed("list-wrap") {
		n, _ := flags.GetInt("list-wrap")
		s.ListWrap = wrapFromInt(n)
	}
	if flags.Changed("array-wrap") {
		n, _ := flags.GetInt("array-wrap")
		s.ArrayWrap = wrapFromInt(n)
	}
	if flags.Changed("record-wrap") {
		n, _ := flags.GetInt("record-wrap")
		s.RecordWrap = wrapFromInt(n)
	}
	if flags.Changed("tuple-wrap") {
		n, _ := flags.GetInt("tuple-wrap")
		s.TupleWrap = wrapFromInt(n)
	}

	s.Colored, err = resolveColorMode(cmd)
	return s, err
}

// resolveColorMode maps the persistent --color flag onto a boolean,
// probing the terminal in auto mode.
func resolveColorMode(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch strings.ToLower(mode) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
}
