// Package netinfo answers simple questions about the local host's
// network configuration for the startup report. Lookups degrade to a
// placeholder string instead of failing.
package netinfo
