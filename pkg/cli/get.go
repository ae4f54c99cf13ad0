package cli

import (
	"github.com/smarthome-sdk/devicetool/pkg/registry"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var sel resourceSelector

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a device model or instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRegistry(cmd.Context(), cmd.OutOrStdout(), func(c *registry.Client) error {
				if sel.model {
					m, err := c.GetModel(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					registry.WriteModel(cmd.OutOrStdout(), *m)
					return nil
				}
				d, err := c.GetDevice(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				registry.WriteDevice(cmd.OutOrStdout(), *d)
				return nil
			})
		},
	}

	sel.addFlags(cmd)
	return cmd
}
