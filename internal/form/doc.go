// Package form is a small settings-form toolkit on top of Bubble Tea.
//
// A Container holds Sections, a Section holds labelled Rows, and every Row
// hosts one Control (Dropdown, TextField, MaskedField). The Container owns
// focus, routes keys to the focused control, routes mouse events to all
// controls and draws an open dropdown as a popup over the form.
//
// Not here:
//   - settings semantics or persistence; controls only report changes
//     through their OnChange callbacks.
package form
