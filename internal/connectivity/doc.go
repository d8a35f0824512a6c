// Package connectivity implements the bounded-retry reachability check
// that the startup sequence and the heartbeat loop share.
//
// Retry policy: transport-level failures (connection refused, timeout,
// DNS errors) are retried up to a fixed number of attempts with a fixed
// delay between them. A non-success HTTP status short-circuits the retry
// loop even though the transport succeeded; status-level rejections are
// not transient.
package connectivity
