package registry

import "strings"

// DeviceTypes lists the hardware types accepted by the registry.
var DeviceTypes = []string{"LIGHT", "SWITCH", "OUTLET"}

const deviceTypePrefix = "action.devices.types."

// ValidDeviceType reports whether t is one of the accepted hardware types.
func ValidDeviceType(t string) bool {
	for _, d := range DeviceTypes {
		if t == d {
			return true
		}
	}
	return false
}

func qualifyDeviceType(t string) string {
	if strings.HasPrefix(t, deviceTypePrefix) {
		return t
	}
	return deviceTypePrefix + t
}

// Manifest carries the optional descriptive fields of a device model.
type Manifest struct {
	Manufacturer      string `json:"manufacturer,omitempty"`
	ProductName       string `json:"productName,omitempty"`
	DeviceDescription string `json:"deviceDescription,omitempty"`
}

// Model is a registered device type scoped to a project. The JSON tags
// match the camelCase shape the registry returns.
type Model struct {
	ID         string    `json:"deviceModelId"`
	ProjectID  string    `json:"projectId"`
	DeviceType string    `json:"deviceType"`
	Traits     []string  `json:"traits"`
	Manifest   *Manifest `json:"manifest,omitempty"`
}

// Device is a concrete device instance registered under a model.
type Device struct {
	ID       string `json:"id"`
	ModelID  string `json:"modelId"`
	Nickname string `json:"nickname"`
}

// The registry accepts snake_case fields on writes, so the request payloads
// are shaped separately from the response types.

type modelPayload struct {
	DeviceModelID string    `json:"device_model_id"`
	ProjectID     string    `json:"project_id"`
	DeviceType    string    `json:"device_type"`
	Traits        []string  `json:"traits,omitempty"`
	Manifest      *Manifest `json:"manifest,omitempty"`
}

func newModelPayload(project string, m Model) modelPayload {
	return modelPayload{
		DeviceModelID: m.ID,
		ProjectID:     project,
		DeviceType:    qualifyDeviceType(m.DeviceType),
		Traits:        m.Traits,
		Manifest:      m.Manifest,
	}
}

type devicePayload struct {
	ID       string `json:"id"`
	ModelID  string `json:"model_id"`
	Nickname string `json:"nickname,omitempty"`
}

func newDevicePayload(d Device) devicePayload {
	return devicePayload{
		ID:       d.ID,
		ModelID:  d.ModelID,
		Nickname: d.Nickname,
	}
}
