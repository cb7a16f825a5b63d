package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	toml "roseh.moe/pkg/toml"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Parses each file and reports whether it is valid TOML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

type validateResult struct {
	Path  string `json:"path"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, paths []string) error {
	results := make([]validateResult, 0, len(paths))
	failed := false

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.WithField("path", path).WithError(err).Error("failed to read file")
			results = append(results, validateResult{Path: path, Error: err.Error()})
			failed = true
			continue
		}
		if _, err := toml.Parse(string(data)); err != nil {
			pe, _ := err.(*toml.ParseError)
			if pe != nil {
				log.WithFields(logrusFields(path, pe)).Warn("invalid TOML")
			}
			results = append(results, validateResult{Path: path, Error: err.Error()})
			failed = true
			continue
		}
		results = append(results, validateResult{Path: path, OK: true})
	}

	if validateFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.OK {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", r.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.Path, r.Error)
			}
		}
	}

	if failed {
		return fmt.Errorf("%d file(s) failed to validate", countFailed(results))
	}
	return nil
}

func countFailed(results []validateResult) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "output format: text or json")
	rootCmd.AddCommand(validateCmd)
}
