package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	modelsResource  = "deviceModels"
	devicesResource = "devices"
)

// Client talks to the device registry REST API for one project. All calls
// are single synchronous round trips; progress and confirmation lines go to
// out.
type Client struct {
	http    *http.Client
	baseURL string
	project string
	out     io.Writer
}

// New builds a registry client. The endpoint is a hostname reached over
// https unless it already carries a scheme.
func New(httpClient *http.Client, endpoint, project string, out io.Writer) *Client {
	base := endpoint
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return &Client{
		http:    httpClient,
		baseURL: fmt.Sprintf("%s/v1alpha2/projects/%s", base, project),
		project: project,
		out:     out,
	}
}

// Project returns the project id the client is bound to.
func (c *Client) Project() string { return c.project }

func (c *Client) resourceURL(resource, id string) string {
	u := c.baseURL + "/" + resource
	if id != "" {
		u += "/" + id
	}
	return u
}

// do issues one request and drains the body so a single call yields both
// the status and the raw payload.
func (c *Client) do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	log.Debug().Str("method", method).Str("url", url).Int("status", resp.StatusCode).Msg(string(raw))
	return resp.StatusCode, raw, nil
}

// RegisterModel upserts a device model: PUT over the existing entry when
// the id is already registered, POST to the collection otherwise.
func (c *Client) RegisterModel(ctx context.Context, m Model) error {
	body, err := json.Marshal(newModelPayload(c.project, m))
	if err != nil {
		return err
	}
	log.Debug().RawJSON("payload", body).Msg("register model")

	modelURL := c.resourceURL(modelsResource, m.ID)
	status, raw, err := c.do(ctx, http.MethodGet, modelURL, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		fmt.Fprintf(c.out, "Updating existing device model: %s\n", m.ID)
		status, raw, err = c.do(ctx, http.MethodPut, modelURL, body)
	case http.StatusBadRequest, http.StatusNotFound:
		fmt.Fprintln(c.out, "Creating new device model")
		status, raw, err = c.do(ctx, http.MethodPost, c.resourceURL(modelsResource, ""), body)
	default:
		return newRequestError("Unknown error occurred", status, raw)
	}
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return newRequestError("Failed to register model", status, raw)
	}
	fmt.Fprintf(c.out, "Model %s successfully registered\n", m.ID)
	return nil
}

// RegisterDevice upserts a device instance. The registry has no device
// update call, so an existing device is deleted and recreated. That is not
// atomic: if the recreate fails the device stays deleted and the returned
// error is the only trace.
func (c *Client) RegisterDevice(ctx context.Context, d Device) error {
	body, err := json.Marshal(newDevicePayload(d))
	if err != nil {
		return err
	}
	log.Debug().RawJSON("payload", body).Msg("register device")

	deviceURL := c.resourceURL(devicesResource, d.ID)
	collectionURL := c.resourceURL(devicesResource, "")
	status, raw, err := c.do(ctx, http.MethodGet, deviceURL, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		fmt.Fprintf(c.out, "Updating existing device: %s\n", d.ID)
		if _, _, err := c.do(ctx, http.MethodDelete, deviceURL, nil); err != nil {
			return err
		}
		status, raw, err = c.do(ctx, http.MethodPost, collectionURL, body)
	case http.StatusBadRequest, http.StatusNotFound:
		fmt.Fprintln(c.out, "Creating new device")
		status, raw, err = c.do(ctx, http.MethodPost, collectionURL, body)
	default:
		return newRequestError("Failed to check existing device", status, raw)
	}
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return newRequestError("Failed to register device", status, raw)
	}
	fmt.Fprintf(c.out, "Device instance %s successfully registered\n", d.ID)
	return nil
}

// GetModel fetches one device model by id.
func (c *Client) GetModel(ctx context.Context, id string) (*Model, error) {
	status, raw, err := c.do(ctx, http.MethodGet, c.resourceURL(modelsResource, id), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newRequestError("Failed to get resource", status, raw)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetDevice fetches one device instance by id.
func (c *Client) GetDevice(ctx context.Context, id string) (*Device, error) {
	status, raw, err := c.do(ctx, http.MethodGet, c.resourceURL(devicesResource, id), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newRequestError("Failed to get resource", status, raw)
	}
	var d Device
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListModels returns every device model registered under the project.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	status, raw, err := c.do(ctx, http.MethodGet, c.resourceURL(modelsResource, ""), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newRequestError("Failed to list resources", status, raw)
	}
	var collection struct {
		DeviceModels []Model `json:"deviceModels"`
	}
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, err
	}
	return collection.DeviceModels, nil
}

// ListDevices returns every device instance registered under the project.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	status, raw, err := c.do(ctx, http.MethodGet, c.resourceURL(devicesResource, ""), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newRequestError("Failed to list resources", status, raw)
	}
	var collection struct {
		Devices []Device `json:"devices"`
	}
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, err
	}
	return collection.Devices, nil
}
