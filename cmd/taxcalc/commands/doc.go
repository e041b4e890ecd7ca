// Package commands implements the taxcalc command line: one file per subcommand, all
// sharing the engine and logger prepared by the root command.
package commands
