package cli

import (
	"github.com/smarthome-sdk/devicetool/pkg/registry"
	"github.com/spf13/cobra"
)

func newRegisterDeviceCmd() *cobra.Command {
	var opts deviceOpts

	cmd := &cobra.Command{
		Use:   "register-device",
		Short: "Register a device instance under an existing device model",
		Long:  "Registers a device instance under an existing device model.\n\n" + fieldCharsNote,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(cmd.Context(), cmd.OutOrStdout(), func(c *registry.Client) error {
				return c.RegisterDevice(cmd.Context(), opts.build(""))
			})
		},
	}

	opts.addFlags(cmd, true)
	return cmd
}
