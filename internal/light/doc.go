// Package light holds the colour model of the virtual light.
//
// A LightSetting is the only user-controlled state: a colour temperature in
// Kelvin and a brightness percentage. ComputeColor turns a setting into the
// RGB triple painted on screen using Tanner Helland's piecewise fit of the
// blackbody curve, then scales every channel by the brightness.
//
// # Usage Example
//
//	s := light.NewSetting(2700, 80)
//	c := light.ComputeColor(s)
//	fmt.Println(c.CSS()) // rgb(204, 134, 70)
//
// The fit is an approximation and the constants must not be tuned: golden
// values in the tests pin the output for known temperatures.
package light
