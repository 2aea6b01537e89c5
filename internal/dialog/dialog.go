// Package dialog shows native message boxes.
package dialog

import (
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/circle-playground/internal/config"
)

// Fatal shows err in an error dialog and blocks until it is dismissed. It is
// best effort; if no dialog can be shown the returned error says why.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return zenity.Error(err.Error(),
		zenity.Title(config.WindowTitle),
		zenity.ErrorIcon,
	)
}
