//go:build dialog
// +build dialog

package alert

import (
	"github.com/sqweek/dialog"
)

// Show opens the native error message box and blocks until it is dismissed.
func Show(title, msg string) error {
	dialog.Message("%s", wrapText(msg, wrapWidth)).Title(title).Error()
	return nil
}
