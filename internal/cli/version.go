package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ansicards/pkg/cardtable"
)

const modulePath = "github.com/mesh-intelligence/ansicards"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ansicards version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ansicards v%s\nmodule: %s\n", cardtable.Version, modulePath)
			return nil
		},
	}
}
