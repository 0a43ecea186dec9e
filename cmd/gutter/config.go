package gutter

import (
	"fmt"

	"github.com/arthur-debert/gutter/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var (
		dump bool
		path bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case path:
				_, err := fmt.Fprintln(out, config.UserConfigDir())
				return err
			case dump:
				content, err := config.Dump(opts.cfg)
				if err != nil {
					return err
				}
				if opts.cfg.Source != "" {
					if _, err := fmt.Fprintf(out, "# loaded from %s\n", opts.cfg.Source); err != nil {
						return err
					}
				}
				_, err = fmt.Fprint(out, content)
				return err
			default:
				_, err := fmt.Fprintln(out, config.GenerateConfigContent())
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, MsgFlagDump)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)
	return cmd
}
