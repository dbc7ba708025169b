// Package component defines the lifecycle interface for long-running
// service parts and a registry that starts them in order and stops them
// in reverse order.
package component
