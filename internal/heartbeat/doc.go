// Package heartbeat implements the long-interval liveness loop. Every
// five minutes it runs the shared reachability check and reports the
// endpoint as ONLINE or OFFLINE.
package heartbeat
