package telemetry

// FormatDuration exposes formatDuration for tests.
var FormatDuration = formatDuration
