package cli_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smarthome-sdk/devicetool/pkg/cli"
	"github.com/stretchr/testify/require"
)

// newFakeBackend stands up a token endpoint plus a registry endpoint and
// returns a credentials file wired to the former.
func newFakeBackend(t *testing.T, registry http.HandlerFunc) (credsPath, apiURL string) {
	t.Helper()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(tokenSrv.Close)

	credsPath = filepath.Join(t.TempDir(), "credentials.json")
	creds := fmt.Sprintf(`{"client_id":"cid","client_secret":"sec","refresh_token":"rt","token_uri":%q}`, tokenSrv.URL)
	require.NoError(t, os.WriteFile(credsPath, []byte(creds), 0o600))

	registrySrv := httptest.NewServer(registry)
	t.Cleanup(registrySrv.Close)
	return credsPath, registrySrv.URL
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"register", "register-model", "register-device", "get", "list"} {
		require.Contains(t, names, want)
	}
}

func TestRegisterOrdersModelBeforeDevice(t *testing.T) {
	var calls []string
	creds, api := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"code":404,"message":"not found"}}`)
			return
		}
		fmt.Fprint(w, `{}`)
	})

	out, err := runCmd(t,
		"--credentials", creds, "--project", "p", "--api-endpoint", api,
		"register",
		"--model", "proj-lamp", "--type", "LIGHT",
		"--manufacturer", "acme", "--product-name", "lamp",
		"--device", "d1", "--nickname", "desk",
	)
	require.NoError(t, err)

	require.Equal(t, []string{
		"GET /v1alpha2/projects/p/deviceModels/proj-lamp",
		"POST /v1alpha2/projects/p/deviceModels",
		"GET /v1alpha2/projects/p/devices/d1",
		"POST /v1alpha2/projects/p/devices",
	}, calls)
	require.Less(t,
		strings.Index(out, "Model proj-lamp successfully registered"),
		strings.Index(out, "Device instance d1 successfully registered"))
}

func TestGetModelOutput(t *testing.T) {
	creds, api := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"deviceModelId":"foo","projectId":"p","deviceType":"t","traits":["a","b"]}`)
	})

	out, err := runCmd(t, "--credentials", creds, "--project", "p", "--api-endpoint", api, "get", "--model", "foo")
	require.NoError(t, err)
	require.Equal(t,
		"Device Model Id: foo\n"+
			"        Project Id: p\n"+
			"        Device Type: t\n"+
			"        Trait a\n"+
			"        Trait b\n\n",
		out)
}

func TestListDevicesOutput(t *testing.T) {
	creds, api := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"devices":[{"id":"d1"},{"id":"d2","nickname":"n"}]}`)
	})

	out, err := runCmd(t, "--credentials", creds, "--project", "p", "--api-endpoint", api, "list", "--device")
	require.NoError(t, err)
	require.Equal(t,
		"Device Instance Id: d1\n\n"+
			"Device Instance Id: d2\n    Nickname: n\n\n",
		out)
}

func TestGetSelectorsAreMutuallyExclusive(t *testing.T) {
	_, err := runCmd(t, "get", "--model", "--device", "some-id")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[device model]")
}

func TestGetRequiresSelector(t *testing.T) {
	_, err := runCmd(t, "get", "some-id")
	require.Error(t, err)
}

func TestProjectFromEnvironment(t *testing.T) {
	var paths []string
	creds, api := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"devices":[]}`)
	})

	t.Setenv("DEVICETOOL_PROJECT", "env-project")
	_, err := runCmd(t, "--credentials", creds, "--api-endpoint", api, "list", "--device")
	require.NoError(t, err)
	require.Equal(t, []string{"/v1alpha2/projects/env-project/devices"}, paths)
}

func TestRegisterModelRejectsBadType(t *testing.T) {
	requests := 0
	creds, api := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := runCmd(t,
		"--credentials", creds, "--project", "p", "--api-endpoint", api,
		"register-model",
		"--model", "m", "--type", "TOASTER",
		"--manufacturer", "acme", "--product-name", "toast",
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "LIGHT, SWITCH, OUTLET")
	require.Zero(t, requests, "no registry call expected for an invalid device type")
}
