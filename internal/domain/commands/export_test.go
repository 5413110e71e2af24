package commands

// ResolveTargets exports resolveTargets for testing.
var ResolveTargets = resolveTargets //nolint:gochecknoglobals // test export
