// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize text when the terminal supports it. When NO_COLOR is
// set or the terminal can't show colors, text decorations are used instead:
//
//	ui.Code.Sprint("walletvault migrate")   // `walletvault migrate`
//	ui.Highlight.Sprint("hot-wallet")       // 'hot-wallet'
//	ui.Muted.Sprint("v1")                   // (v1)
//
// Done, Failed and Hint build the ✓ / ✗ / → result lines every command ends with.
package ui
