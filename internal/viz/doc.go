// Package viz draws beam diagrams on a braille terminal canvas and hosts
// the interactive member inspector.
package viz
