package main

import (
	"os"

	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/spf13/cobra"

	"junitmd/converter"
	"junitmd/finder"
	"junitmd/markdown"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	log.SetOutWriter(os.Stderr)

	var (
		verbose bool
		result  converter.Result
		ran     bool
	)

	rootCmd := &cobra.Command{
		Use:   "junitmd <root-dir>",
		Short: "Render JUnit XML test reports as one Markdown document",
		Long: "junitmd recursively collects JUnit XML report files named TEST-*.xml under the\n" +
			"given directory, aggregates their results per package and writes a Markdown\n" +
			"summary with a badge, a collapsible table and per-package failure details to\n" +
			"stdout. Diagnostics go to stderr.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetEnableDebugLog(verbose)

			markdownConverter := converter.NewMarkdownConverter(
				finder.NewFinder(),
				markdown.NewRenderer(markdown.NewAnchorSuffix()),
				pathutil.NewPathModifier(),
				pathutil.NewPathChecker(),
			)

			config, err := markdownConverter.ProcessConfig(converter.Input{RootDir: args[0]})
			if err != nil {
				return err
			}

			result, err = markdownConverter.Run(config, os.Stdout)
			if err != nil {
				return err
			}

			ran = true
			return nil
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		return converter.ExitCodeError
	}
	if !ran {
		return converter.ExitCodeSuccess
	}

	exitCode := result.ExitCode()
	switch exitCode {
	case converter.ExitCodeTestFailure:
		log.Errorf("Found at least one test failure. Exit code: %d", exitCode)
	case converter.ExitCodeNoTests:
		log.Warnf("No tests found. Exit code: %d", exitCode)
	default:
		log.Donef("All tests passed.")
	}
	return exitCode
}
