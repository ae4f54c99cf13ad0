package cli

import (
	"github.com/smarthome-sdk/devicetool/pkg/registry"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var sel resourceSelector

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the device models or instances registered under the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(cmd.Context(), cmd.OutOrStdout(), func(c *registry.Client) error {
				out := cmd.OutOrStdout()
				if sel.model {
					models, err := c.ListModels(cmd.Context())
					if err != nil {
						return err
					}
					for _, m := range models {
						registry.WriteModel(out, m)
					}
					return nil
				}
				devices, err := c.ListDevices(cmd.Context())
				if err != nil {
					return err
				}
				for _, d := range devices {
					registry.WriteDevice(out, d)
				}
				return nil
			})
		},
	}

	sel.addFlags(cmd)
	return cmd
}
