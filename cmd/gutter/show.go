package gutter

import (
	"fmt"

	"github.com/arthur-debert/gutter/pkg/logging"
	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/arthur-debert/gutter/pkg/ui"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.show")
			done := logging.LogOperationStart(logger, "show")
			defer done()

			cfg := opts.cfg
			mode, err := cfg.DecorationMode()
			if err != nil {
				return err
			}
			interactive := mode.Interactive(outputFile(cmd.OutOrStdout()))

			components, err := style.ResolveOptions(style.Options{
				Styles:      cfg.Style,
				Plain:       opts.plain,
				Number:      opts.number,
				Interactive: interactive,
			})
			if err != nil {
				return fmt.Errorf(MsgErrResolve, err)
			}

			logger.Info().
				Strs("style", cfg.Style).
				Str("decorations", mode.String()).
				Bool("interactive", interactive).
				Bool("changes", changesEnabled(components)).
				Bool("plain", components.Plain()).
				Msg("Style resolved")

			return render(cmd, opts, style.NewReport(opts.requested(), interactive, components))
		},
	}
}

// requested names what ResolveOptions actually acted on
func (o *options) requested() []string {
	switch {
	case o.plain:
		return []string{style.Plain.String()}
	case o.number:
		return []string{style.Numbers.String()}
	case len(o.cfg.Style) == 0:
		return []string{style.Auto.String()}
	default:
		return o.cfg.Style
	}
}

// render writes result in the configured output format
func render(cmd *cobra.Command, opts *options, result interface{}) error {
	format, err := opts.cfg.OutputFormat()
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf(MsgErrNewRenderer, err)
	}
	return renderer.RenderResult(result)
}
