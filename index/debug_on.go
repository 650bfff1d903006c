//go:build tnetdebug
// +build tnetdebug

package index

// debugChecks enables checking of additional invariants.
const debugChecks = true
