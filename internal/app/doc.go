// Package app wires application dependencies for the CLI.
//
// It builds the concrete services from Config, exposing them via the App
// struct for commands to use.
package app
