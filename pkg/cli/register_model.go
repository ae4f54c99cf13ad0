package cli

import (
	"github.com/smarthome-sdk/devicetool/pkg/registry"
	"github.com/spf13/cobra"
)

func newRegisterModelCmd() *cobra.Command {
	var opts modelOpts

	cmd := &cobra.Command{
		Use:   "register-model",
		Short: "Register or update a device model",
		Long:  "Registers a device model.\n\n" + fieldCharsNote,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(cmd.Context(), cmd.OutOrStdout(), func(c *registry.Client) error {
				m, err := opts.build()
				if err != nil {
					return err
				}
				return c.RegisterModel(cmd.Context(), m)
			})
		},
	}

	opts.addFlags(cmd)
	return cmd
}
