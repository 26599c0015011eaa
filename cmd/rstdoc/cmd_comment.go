package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rstdoc/gen"
	"github.com/dhamidi/rstdoc/java"
)

func newCommentCmd(flags *globalFlags) *cobra.Command {
	var models []string
	var className string

	cmd := &cobra.Command{
		Use:   "comment [file]",
		Short: "Convert a Javadoc comment to rst",
		Long: `Convert a Javadoc comment, with or without its /** */ delimiters, to rst.

Inline tags are rendered and block tags become field lists and directives,
exactly as in generated class documents.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}
			graph, err := loadGraph(models)
			if err != nil {
				return err
			}

			var class *java.ClassModel
			if className != "" {
				var ok bool
				if class, ok = graph.LookupSimple(className, ""); !ok {
					return fmt.Errorf("unknown class %s", className)
				}
			}

			g, err := gen.New(gen.Toolkit{Graph: graph, Reporter: flags.reporter("comment"), Options: opts})
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), g.CommentDocument(class, string(text)).Serialize())
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&models, "models", "m", nil, "model files to resolve links against")
	cmd.Flags().StringVarP(&className, "class", "c", "", "class the comment belongs to")

	return cmd
}
