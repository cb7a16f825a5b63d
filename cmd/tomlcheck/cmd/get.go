package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	toml "roseh.moe/pkg/toml"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <dotted.key>",
	Short: "Resolves a dotted key path in a TOML file and prints its value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], args[1])
	},
}

func runGet(cmd *cobra.Command, path, key string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := toml.Parse(string(data))
	if err != nil {
		if pe, ok := err.(*toml.ParseError); ok {
			log.WithFields(logrusFields(path, pe)).Error("failed to parse file")
		}
		return err
	}
	v, ok := doc.Lookup(key)
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", v.Kind(), renderValue(v))
	return nil
}

func renderValue(v toml.Value) string {
	switch v.Kind() {
	case toml.KindString:
		s, _ := v.String()
		return s
	case toml.KindInteger:
		n, _ := v.Int64()
		return fmt.Sprintf("%d", n)
	case toml.KindFloat:
		f, _ := v.Float64()
		return fmt.Sprintf("%g", f)
	case toml.KindBoolean:
		b, _ := v.Bool()
		return fmt.Sprintf("%t", b)
	case toml.KindDateTime:
		dt, _ := v.DateTime()
		return renderDateTime(dt)
	case toml.KindArray:
		elems, _ := v.Array()
		return fmt.Sprintf("<array of %d element(s)>", len(elems))
	case toml.KindTable:
		tbl, _ := v.Table()
		return fmt.Sprintf("<table with %d key(s)>", len(tbl.Keys()))
	default:
		return ""
	}
}

func renderDateTime(dt toml.DateTime) string {
	switch dt.Kind {
	case toml.DateTimeLocalDate:
		return fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
	case toml.DateTimeLocalTime:
		return fmt.Sprintf("%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	case toml.DateTimeLocal:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	default:
		offset := "Z"
		if dt.OffsetMinutes != 0 {
			sign := '+'
			m := dt.OffsetMinutes
			if m < 0 {
				sign = '-'
				m = -m
			}
			offset = fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
		}
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, offset)
	}
}

func init() {
	rootCmd.AddCommand(getCmd)
}
