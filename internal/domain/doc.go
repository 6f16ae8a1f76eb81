// Package domain defines the shared value types and service interfaces of
// the sample data components.
package domain
