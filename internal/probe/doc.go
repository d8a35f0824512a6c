// Package probe implements the short-interval resource check. Every ten
// seconds it queries a lookup endpoint for a fixed resource identifier
// and classifies the answer as DETECTED, NOT_DETECTED or UNKNOWN.
//
// Classification note: any success status maps to DETECTED. That mirrors
// the endpoint contract this probe was written against and is kept as-is.
package probe
