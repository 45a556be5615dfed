// Package md drives an external molecular dynamics engine.
//
// Integration, thermostatting, cutoff handling and visual sampling all belong
// to the engine, which this package only sees through [Engine]. What lives
// here is the description of a system handed to the engine ([System]) and the
// fixed step loop ([Run]):
//
//	integrate -> sample -> heat bath -> advance clock
//
// with a [Sampler] update every SampleEvery steps.
//
// # Example
//
//	eng, err := md.Bind(factory, sys)
//	res, err := md.Run(ctx, eng, sampler, md.RunConfig{Steps: 4000, Temperature: 300})
package md
