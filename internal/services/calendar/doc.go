// Package calendar computes runs of daily snapshots, one goroutine per day
// with a bounded number in flight.
package calendar
