package prompter

// Translate exports translate for testing.
var Translate = translate //nolint:gochecknoglobals // test export
