// Package processor implements the sample data processor: a placeholder
// loader, the trim/lowercase transform, and mapping/schema validation.
package processor
