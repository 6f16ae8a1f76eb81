// Package handler answers requests with a fixed success response and wraps
// errors in a fixed failure response.
package handler
