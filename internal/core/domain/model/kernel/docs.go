// Package kernel contains the shared value objects of the freight domain:
// identifiers, geographic points, monetary amounts, and the route distance
// calculation. All types are immutable and constructed through factory
// functions that enforce their invariants; zero values fail validation.
package kernel
