// Package cli provides the interactive QR scanner command-line client.
//
// It wires configuration, local storage, the billing connection, the capture
// pipeline and the screen state holders into an interactive REPL. One command
// group stands in for each screen of the app.
//
// Commands:
//   - home                       premium status and history size
//   - scan [files...]            decode image files, or watch the frame directory
//   - history [...]              list, star, delete and clear scans
//   - settings [...]             feedback and display preferences
//   - premium [...]              products and purchases
//   - backup [...]               push, pull and list S3 backups
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartConnectionWatcher, and runREPL for details.
package cli
