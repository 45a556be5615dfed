// Package potential provides closed-form pair potentials for classical
// molecular dynamics.
//
// Every potential is available as a scalar function and as a slice variant
// that evaluates element-wise over an array of pair distances:
//
//   - [HarmonicEnergy], [HarmonicForce]: spring-like bond
//   - [Repulsive], [Attractive], [LJEnergy], [LJForce]: Lennard-Jones
//
// Types implementing [Forcefield] can be handed to an MD engine as the
// potential callback. The callback receives all pair distances and a flag
// selecting energy (false) or the negative first derivative (true).
//
// # Numeric edge cases
//
// No input is rejected at evaluation time. A zero distance in the
// Lennard-Jones terms yields +Inf or NaN exactly as IEEE 754 arithmetic does.
package potential
