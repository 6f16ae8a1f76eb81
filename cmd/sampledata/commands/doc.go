// Package commands defines the sampledata CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - process   Trim, lowercase and filter a list of items
//   - validate  Check a JSON document against a schema mapping
//   - metrics   Count, sum and average numeric values
//   - load      Run the placeholder loader against a file
//   - request   Route a request through the handler and print the response
//
// # Implementation
//
// The root command loads the optional processor config and builds the
// service graph before any subcommand runs, so handlers share one app
// context and one logger.
package commands
