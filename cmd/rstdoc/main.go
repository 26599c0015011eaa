package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/rstdoc/config"
	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/report"
)

var log = commonlog.GetLogger("rstdoc")

// globalFlags are shared by every sub-command.
type globalFlags struct {
	configPath string
	verbosity  int
	logPath    string
}

func main() {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "rstdoc",
		Short:         "Convert Java documentation to reStructuredText",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.configureLogging()
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "log more (repeat for debug output)")
	rootCmd.PersistentFlags().StringVar(&flags.logPath, "log", "", "write the log to a file instead of stderr")

	rootCmd.AddCommand(newRenderCmd(flags))
	rootCmd.AddCommand(newHTMLCmd(flags))
	rootCmd.AddCommand(newCommentCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func (f *globalFlags) configureLogging() {
	var path *string
	if f.logPath != "" {
		path = &f.logPath
	}
	commonlog.Configure(f.verbosity, path)
}

func (f *globalFlags) options() (config.Options, error) {
	return config.Load(f.configPath)
}

func (f *globalFlags) reporter(name string) report.Reporter {
	return report.NewLogReporter("rstdoc." + name)
}

// loadGraph indexes the given model files. Without files the graph is
// empty, so only external links resolve.
func loadGraph(paths []string) (*java.Index, error) {
	if len(paths) == 0 {
		return java.NewIndex(nil, nil), nil
	}
	set, err := java.LoadModels(paths...)
	if err != nil {
		return nil, err
	}
	return set.Index(), nil
}
