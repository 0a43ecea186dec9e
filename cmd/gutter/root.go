package gutter

import (
	"errors"
	"io"
	"os"

	"github.com/arthur-debert/gutter/cmd/gutter/topics"
	"github.com/arthur-debert/gutter/internal/version"
	helptopics "github.com/arthur-debert/gutter/pkg/cobrax/topics"
	"github.com/arthur-debert/gutter/pkg/config"
	"github.com/arthur-debert/gutter/pkg/logging"
	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/arthur-debert/gutter/pkg/terminal"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the global flags shared by every command
type options struct {
	verbosity   int
	configFile  string
	styles      []string
	plain       bool
	number      bool
	decorations string
	format      string

	// cfg is loaded once per invocation before any command runs
	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "gutter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: opts.configFile,
				Overrides:  opts.overrides(cmd),
			})
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringSliceVar(&opts.styles, "style", nil, MsgFlagStyle)
	flags.BoolVarP(&opts.plain, "plain", "p", false, MsgFlagPlain)
	flags.BoolVarP(&opts.number, "number", "n", false, MsgFlagNumber)
	flags.StringVar(&opts.decorations, "decorations", "", MsgFlagDecorations)
	flags.StringVar(&opts.format, "format", "", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("style", styleCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("decorations", fixedCompletion("auto", "always", "never"))
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion("auto", "term", "text", "json"))

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newStylesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	renderer := helptopics.Renderer(&helptopics.PlainRenderer{})
	if terminal.IsInteractive(os.Stdout) {
		renderer = helptopics.NewGlamourRenderer()
	}
	if _, err := helptopics.InitializeWithOptions(rootCmd, topics.FS, helptopics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// overrides collects the flags the user actually set, keyed like the config
func (o *options) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("style") {
		out["style"] = o.styles
	}
	if flags.Changed("decorations") {
		out["decorations"] = o.decorations
	}
	if flags.Changed("format") {
		out["format"] = o.format
	}
	return out
}

// outputFile returns w as a file when it is one, for terminal detection
func outputFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

func styleCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return style.Literals(), cobra.ShellCompDirectiveNoFileComp
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
