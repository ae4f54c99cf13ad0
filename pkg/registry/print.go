package registry

import (
	"fmt"
	"io"
)

// WriteModel renders a device model block: id, project, type, one line per
// trait, then a blank separator line.
func WriteModel(w io.Writer, m Model) {
	fmt.Fprintf(w, "Device Model Id: %s\n", m.ID)
	fmt.Fprintf(w, "        Project Id: %s\n", m.ProjectID)
	fmt.Fprintf(w, "        Device Type: %s\n", m.DeviceType)
	for _, trait := range m.Traits {
		fmt.Fprintf(w, "        Trait %s\n", trait)
	}
	fmt.Fprintln(w)
}

// WriteDevice renders a device instance block. Nickname and model lines
// appear only when set.
func WriteDevice(w io.Writer, d Device) {
	fmt.Fprintf(w, "Device Instance Id: %s\n", d.ID)
	if d.Nickname != "" {
		fmt.Fprintf(w, "    Nickname: %s\n", d.Nickname)
	}
	if d.ModelID != "" {
		fmt.Fprintf(w, "    Model: %s\n", d.ModelID)
	}
	fmt.Fprintln(w)
}
