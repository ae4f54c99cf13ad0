package cli

import (
	"fmt"
	"strings"

	"github.com/smarthome-sdk/devicetool/pkg/registry"
	"github.com/spf13/cobra"
)

// fieldCharsNote is appended to the register command help texts.
const fieldCharsNote = "Device model and instance fields can only contain letters, numbers, and the following symbols: period (.), hyphen (-), underscore (_), space ( ) and plus (+). The first character of a field must be a letter or number."

// modelOpts collects the register-model flags.
type modelOpts struct {
	model        string
	deviceType   string
	traits       []string
	manufacturer string
	productName  string
	description  string
}

func (o *modelOpts) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.model, "model", "", "Globally unique identifier for the device model; prefix it with the project id to avoid collisions")
	f.StringVar(&o.deviceType, "type", "", "Device hardware type (LIGHT, SWITCH or OUTLET)")
	f.StringArrayVar(&o.traits, "trait", nil, "Trait the device supports; repeat the flag for multiple traits")
	f.StringVar(&o.manufacturer, "manufacturer", "", "Manufacturer name")
	f.StringVar(&o.productName, "product-name", "", "Product name")
	f.StringVar(&o.description, "description", "", "Product description")
	for _, name := range []string{"model", "type", "manufacturer", "product-name"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}
}

func (o *modelOpts) build() (registry.Model, error) {
	t := strings.ToUpper(o.deviceType)
	if !registry.ValidDeviceType(t) {
		return registry.Model{}, fmt.Errorf("invalid device type %q: must be one of %s", o.deviceType, strings.Join(registry.DeviceTypes, ", "))
	}
	m := registry.Model{
		ID:         o.model,
		DeviceType: t,
		Traits:     o.traits,
	}
	if o.manufacturer != "" || o.productName != "" || o.description != "" {
		m.Manifest = &registry.Manifest{
			Manufacturer:      o.manufacturer,
			ProductName:       o.productName,
			DeviceDescription: o.description,
		}
	}
	return m, nil
}

// deviceOpts collects the register-device flags. The model flag is owned by
// modelOpts on the combined register command, so it is optional here.
type deviceOpts struct {
	device   string
	model    string
	nickname string
}

func (o *deviceOpts) addFlags(cmd *cobra.Command, withModel bool) {
	f := cmd.Flags()
	f.StringVar(&o.device, "device", "", "Identifier for the device instance, unique within the project")
	if withModel {
		f.StringVar(&o.model, "model", "", "Identifier of the existing device model this instance belongs to")
		cobra.CheckErr(cmd.MarkFlagRequired("model"))
	}
	f.StringVar(&o.nickname, "nickname", "", "Nickname used to refer to the device")
	cobra.CheckErr(cmd.MarkFlagRequired("device"))
}

func (o *deviceOpts) build(modelID string) registry.Device {
	if modelID == "" {
		modelID = o.model
	}
	return registry.Device{
		ID:       o.device,
		ModelID:  modelID,
		Nickname: o.nickname,
	}
}

// resourceSelector picks between the model and device resource kinds on the
// read commands.
type resourceSelector struct {
	model  bool
	device bool
}

func (s *resourceSelector) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.model, "model", false, "Select device models")
	cmd.Flags().BoolVar(&s.device, "device", false, "Select device instances")
	cmd.MarkFlagsMutuallyExclusive("model", "device")
	cmd.MarkFlagsOneRequired("model", "device")
}
