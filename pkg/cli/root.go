package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/smarthome-sdk/devicetool/pkg/config"
	"github.com/smarthome-sdk/devicetool/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootOpts = struct {
	project      string
	clientSecret string
	verbose      bool
	apiEndpoint  string
	credentials  string
}{
	apiEndpoint: config.DefaultEndpoint,
	credentials: config.DefaultCredentialsPath(),
}

func Execute() {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devicetool",
		Short: "Register and inspect device models and instances",
		Long:  "devicetool registers device models and device instances against the cloud device registry and queries what is already registered.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.Configure(rootOpts.verbose)

			// DEVICETOOL_* environment variables back every global flag;
			// a flag set on the command line wins.
			v := viper.New()
			v.SetEnvPrefix("devicetool")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			rootOpts.project = v.GetString("project")
			rootOpts.clientSecret = v.GetString("client-secret")
			rootOpts.apiEndpoint = v.GetString("api-endpoint")
			rootOpts.credentials = v.GetString("credentials")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&rootOpts.project, "project", "", "Project id to register against. Defaults to the project_id in the client secret file.")
	pf.StringVar(&rootOpts.clientSecret, "client-secret", "", "Path to the client_secret_<client-id>.json file used to infer the project id")
	pf.BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Show detailed JSON requests and responses")
	pf.StringVar(&rootOpts.apiEndpoint, "api-endpoint", config.DefaultEndpoint, "Hostname of the device registry API")
	pf.StringVar(&rootOpts.credentials, "credentials", config.DefaultCredentialsPath(), "Path to the OAuth credentials file written by google-oauthlib-tool")

	cmd.AddCommand(
		newRegisterCmd(),
		newRegisterModelCmd(),
		newRegisterDeviceCmd(),
		newGetCmd(),
		newListCmd(),
	)
	return cmd
}
