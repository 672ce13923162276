package helpers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zxc72608/bigquery/internal/entity"
	"github.com/zxc72608/bigquery/internal/filter"
)

// AddFormatFlag adds a standard --format/-o flag to a command.
func AddFormatFlag(cmd *cobra.Command, formatVar *string, defaultFormat OutputFormat, supportedFormats []OutputFormat) {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringVarP(formatVar, "format", "o", string(defaultFormat), description)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// ValidateFormat checks if the format is in the supported list.
func ValidateFormat(format string, supported []OutputFormat) error {
	for _, s := range supported {
		if format == string(s) {
			return nil
		}
	}

	supportedNames := make([]string, len(supported))
	for i, s := range supported {
		supportedNames[i] = string(s)
	}

	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(supportedNames, ", "))
}

// FilterFlags holds the entity and filter values given on the command line.
type FilterFlags struct {
	Type   string
	Values map[string]*string
}

// AddFilterFlags adds --type plus one flag per filter key. Flag names use
// dashes where the payload keys use underscores (--branch-id for branch_id).
func AddFilterFlags(cmd *cobra.Command) *FilterFlags {
	f := &FilterFlags{Values: make(map[string]*string)}

	cmd.Flags().StringVarP(&f.Type, "type", "t", "", fmt.Sprintf("Entity to query (%s)", strings.Join(entity.Names(), ", ")))
	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return entity.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	for _, field := range filter.Fields {
		v := new(string)
		f.Values[field.Key] = v
		cmd.Flags().StringVar(v, flagName(field.Key), "", filterUsage(field))
	}

	return f
}

// Raw returns the non-empty filter values keyed like the HTTP payload.
func (f *FilterFlags) Raw() map[string]string {
	raw := make(map[string]string, len(f.Values))
	for key, v := range f.Values {
		if *v != "" {
			raw[key] = *v
		}
	}
	return raw
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func filterUsage(field filter.Field) string {
	switch {
	case field.Inferred:
		return "Identity (digits) or name (text)"
	case field.Shape == filter.Numeric:
		return fmt.Sprintf("Filter on %s (digits)", field.Key)
	default:
		return fmt.Sprintf("Filter on %s (text)", field.Key)
	}
}
