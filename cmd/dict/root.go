package dict

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/dict/internal/version"
	"github.com/arthur-debert/dict/pkg/client"
	"github.com/arthur-debert/dict/pkg/config"
	"github.com/arthur-debert/dict/pkg/errors"
	"github.com/arthur-debert/dict/pkg/logging"
	"github.com/arthur-debert/dict/pkg/render"
	"github.com/arthur-debert/dict/pkg/ui"
	"github.com/arthur-debert/dict/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// NewRootCmd creates the dict command. It takes exactly one positional
// argument, the word to look up, and has no subcommands so any word
// (including "help" or "version") is looked up as-is.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    exactlyOneWord,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log := logging.GetLogger("cmd")
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], noColor)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpTemplate(MsgHelpTemplate)
	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	return rootCmd
}

// exactlyOneWord rejects any invocation without exactly one word. It runs
// before the lookup, so a usage error never touches the network.
func exactlyOneWord(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrUsage, MsgErrArgCount).
			WithDetail("count", len(args))
	}
	return nil
}

// runLookup fetches word and prints either the entries or the API's
// explanation. An API failure is a normal outcome and returns nil.
func runLookup(cmd *cobra.Command, word string, noColor bool) error {
	log := logging.GetLogger("cmd.lookup")
	done := logging.LogOperationStart(log, "lookup")
	defer done()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Output.Color)
	if err != nil {
		return err
	}
	if noColor {
		format = ui.FormatText
	}

	c := client.New(
		client.WithBaseURL(cfg.API.BaseURL),
		client.WithEscaping(cfg.API.EscapeWord),
	)

	result, err := c.Lookup(cmd.Context(), word)
	if err != nil {
		return err
	}

	r := render.New(cmd.OutOrStdout(), render.Options{Format: format})
	if !result.IsSuccess() {
		log.Info().
			Str("word", word).
			Str("title", result.Failure.Title).
			Msg("Dictionary API reported a failed lookup")
		return r.RenderAPIError(result.Failure)
	}

	log.Info().Str("word", word).Int("entries", len(result.Entries)).Msg("Lookup succeeded")
	return r.Render(result.Entries)
}

// Run executes dict with args and returns the process exit code. Usage
// errors go to stdout, every other error is styled on stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	code := errors.GetErrorCode(err)
	log := logging.GetLogger("cmd")
	log.Debug().Str("code", string(code)).Err(err).Msg("Command failed")

	if code == errors.ErrUsage {
		_, _ = fmt.Fprintln(stdout, MsgErrArgCount)
		_, _ = fmt.Fprintln(stdout, MsgUsageLine)
		return ExitFailure
	}

	errStyles := styles.NewRegistry(lipgloss.NewRenderer(stderr))
	_, _ = fmt.Fprintln(stderr, errStyles.Render(styles.Error, fmt.Sprintf(MsgErrorPrefix, err)))
	return ExitFailure
}
