package cli

import (
	"context"
	"io"

	"github.com/smarthome-sdk/devicetool/pkg/auth"
	"github.com/smarthome-sdk/devicetool/pkg/config"
	"github.com/smarthome-sdk/devicetool/pkg/registry"
)

// withRegistry loads the credentials, resolves the target project and hands
// the command a ready registry client. Every subcommand goes through here so
// credential and project failures surface the same way everywhere.
func withRegistry(ctx context.Context, out io.Writer, fn func(*registry.Client) error) error {
	session, err := auth.Load(ctx, rootOpts.credentials)
	if err != nil {
		return err
	}
	project, err := config.ResolveProject(rootOpts.project, rootOpts.clientSecret, session.ClientID)
	if err != nil {
		return err
	}
	client := registry.New(session.Client, rootOpts.apiEndpoint, project, out)
	return fn(client)
}
