// Package viz holds the terminal styles used by the pairpot CLI.
package viz
