package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/shades/pkg/theme"
)

type outputFlags struct {
	as      string
	yaml    bool
	outPath string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.as, "as", "", "Output: object, css-vars, scss-vars or svg")
	cmd.Flags().BoolVar(&f.yaml, "yaml", false, "Encode object output as YAML instead of JSON")
	cmd.Flags().StringVarP(&f.outPath, "out", "o", "", "Write output to a file instead of stdout")
}

// encodeObject renders v as indented JSON, or YAML when asYAML is set.
func encodeObject(v any, asYAML bool) ([]byte, error) {
	if asYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// renderTheme returns the bytes written for t.
func renderTheme(cmd *cobra.Command, t theme.Theme, flags outputFlags) ([]byte, error) {
	if t.IsText() {
		return []byte(t.Text), nil
	}
	data, err := encodeObject(t.Palette, flags.yaml)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "encoding palette", err, "This is a bug; please report it.")
	}
	return data, nil
}

// writeTheme writes t to --out or stdout.
func writeTheme(cmd *cobra.Command, t theme.Theme, flags outputFlags) error {
	data, err := renderTheme(cmd, t, flags)
	if err != nil {
		return err
	}
	return writeOutput(cmd, data, flags.outPath)
}

func writeOutput(cmd *cobra.Command, data []byte, outPath string) error {
	if outPath != "" && outPath != "-" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return newCommandError(cmd.Name(), fmt.Sprintf("writing %s", outPath), err, "Check that the directory exists and is writable.")
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		_, err := fmt.Fprintln(out)
		return err
	}
	return nil
}
