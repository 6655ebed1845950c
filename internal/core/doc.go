// Package core wires configuration into the theme services shared by the
// desktop application and the command-line tool.
package core
