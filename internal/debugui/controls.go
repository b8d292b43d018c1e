package debugui

import "github.com/Faultbox/raging-sea/internal/ocean"

// controlGroup is a run of controls shown together. Controls without a
// group get an unnamed group and are drawn at the top level.
type controlGroup struct {
	Name     string
	Controls []ocean.Control
}

// groupControls splits controls into consecutive groups, keeping order.
func groupControls(controls []ocean.Control) []controlGroup {
	var groups []controlGroup
	for _, c := range controls {
		if n := len(groups); n > 0 && groups[n-1].Name == c.Group {
			groups[n-1].Controls = append(groups[n-1].Controls, c)
			continue
		}
		groups = append(groups, controlGroup{Name: c.Group, Controls: []ocean.Control{c}})
	}
	return groups
}
