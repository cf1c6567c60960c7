// Package utils provides small helpers shared by the notification builders
// and the CLI.
//
// It contains:
//   - Word capitalisation used for localization keys
//   - Timestamp formatting
//   - UUID generation
//   - Logger construction
package utils
