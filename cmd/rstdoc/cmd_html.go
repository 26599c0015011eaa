package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rstdoc/htmldoc"
)

func newHTMLCmd(flags *globalFlags) *cobra.Command {
	var models []string
	var className string

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Convert an HTML fragment to rst",
		Long: `Convert an HTML documentation fragment to rst.

Reads the fragment from the file, or from stdin when no file is given.
Links are resolved against the classes of the --models files; --class sets
the class that simple names and #member links are relative to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			fragment, err := readInput(args)
			if err != nil {
				return err
			}
			graph, err := loadGraph(models)
			if err != nil {
				return err
			}

			resolver := htmldoc.NewResolver(graph, nil)
			if className != "" {
				class, ok := graph.LookupSimple(className, "")
				if !ok {
					return fmt.Errorf("unknown class %s", className)
				}
				resolver = htmldoc.NewResolver(graph, class)
			}

			doc := htmldoc.ConvertWith(string(fragment), resolver, flags.reporter("html"), opts)
			_, err = io.WriteString(cmd.OutOrStdout(), doc.Serialize())
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&models, "models", "m", nil, "model files to resolve links against")
	cmd.Flags().StringVarP(&className, "class", "c", "", "class the fragment belongs to")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
