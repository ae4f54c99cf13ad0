package cli

import (
	"github.com/smarthome-sdk/devicetool/pkg/registry"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var (
		mOpts modelOpts
		dOpts deviceOpts
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a device model and a device instance",
		Long:  "Registers a device model and instance in one step.\n\n" + fieldCharsNote,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(cmd.Context(), cmd.OutOrStdout(), func(c *registry.Client) error {
				m, err := mOpts.build()
				if err != nil {
					return err
				}
				// The model must exist before a device can reference it.
				if err := c.RegisterModel(cmd.Context(), m); err != nil {
					return err
				}
				return c.RegisterDevice(cmd.Context(), dOpts.build(mOpts.model))
			})
		},
	}

	mOpts.addFlags(cmd)
	dOpts.addFlags(cmd, false)
	return cmd
}
