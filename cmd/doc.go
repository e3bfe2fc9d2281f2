// Package cmd implements the walletvault command line interface.
//
// Commands are thin: they parse flags, read passwords and wallet secrets,
// call a workflow from internal/workflows, and format the result. Wallet
// secrets are printed to stdout; everything else goes to stderr so output
// can be piped.
package cmd
