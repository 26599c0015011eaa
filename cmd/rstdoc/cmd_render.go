package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rstdoc/gen"
	"github.com/dhamidi/rstdoc/report"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render <model file>...",
		Short: "Generate rst documents for every class in the model files",
		Long: `Generate one rst document per documented class plus a package-index
document per package.

Model files are .json or .yaml files holding class models, a list of them
or a {packages, classes} bundle.

With -o the documents are written below the directory, one directory per
package. Without it they are printed to stdout, each preceded by a comment
naming its path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			graph, err := loadGraph(args)
			if err != nil {
				return err
			}

			collector := &report.Collector{}
			g, err := gen.New(gen.Toolkit{
				Graph:    graph,
				Reporter: report.Tee(flags.reporter("render"), collector),
				Options:  opts,
			})
			if err != nil {
				return err
			}

			results, err := g.All(cmd.Context())
			if err != nil {
				return err
			}

			fallbacks := 0
			for _, res := range results {
				if res.Fallback {
					fallbacks++
				}
				if outDir == "" {
					if err := printResult(cmd.OutOrStdout(), res); err != nil {
						return err
					}
					continue
				}
				if err := writeResult(outDir, res); err != nil {
					return err
				}
			}

			log.Infof("rendered %d documents, %d warnings", len(results), collector.Count(report.SeverityWarning))
			if fallbacks > 0 {
				log.Warningf("%d documents could not be generated and hold the fallback text", fallbacks)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory to write the documents to")

	return cmd
}

func printResult(w io.Writer, res gen.Result) error {
	_, err := fmt.Fprintf(w, ".. %s\n\n%s\n", res.Path, res.Text)
	return err
}

func writeResult(dir string, res gen.Result) error {
	path := filepath.Join(dir, filepath.FromSlash(res.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(res.Text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", res.Path, err)
	}
	log.Debugf("wrote %s", path)
	return nil
}
