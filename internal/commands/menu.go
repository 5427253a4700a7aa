package commands

import "todo/internal/output"

// Menu returns the menu lines for every command in r.
func Menu(r *Registry) []output.MenuItem {
	cmds := r.All()
	items := make([]output.MenuItem, len(cmds))
	for i, c := range cmds {
		items[i] = output.MenuItem{Code: c.Code(), Label: c.Synopsis()}
	}
	return items
}
