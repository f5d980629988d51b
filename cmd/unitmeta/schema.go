package main

import (
	"io"

	"github.com/invopop/jsonschema"
	"github.com/openclaw/unitmeta/pkg/hooks"
	"github.com/openclaw/unitmeta/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <skill|hook>",
	Short:     "Print the JSON Schema of normalized metadata",
	Long:      `Print the JSON Schema describing the normalized openclaw metadata of a skill or hook.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{skills.Schema.Domain, hooks.Schema.Domain},
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSchema(cmd.OutOrStdout(), args[0])
	},
}

// metadataSchema reflects the normalized metadata type of a domain
func metadataSchema(domain string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	switch domain {
	case skills.Schema.Domain:
		return reflector.Reflect(&skills.Metadata{}), nil
	case hooks.Schema.Domain:
		return reflector.Reflect(&hooks.Metadata{}), nil
	}
	return nil, errors.Errorf("unknown unit domain %q", domain)
}

func writeSchema(w io.Writer, domain string) error {
	schema, err := metadataSchema(domain)
	if err != nil {
		return err
	}
	return render(w, formatJSON, schema)
}
