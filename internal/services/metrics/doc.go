// Package metrics computes count, sum and average over numeric values.
package metrics
