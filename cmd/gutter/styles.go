package gutter

import (
	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/spf13/cobra"
)

func newStylesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, opts, style.NewCatalog())
		},
	}
}
