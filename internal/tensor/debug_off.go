//go:build !ndarraydebug

package tensor

// Debug reports whether precondition checks on hot paths are compiled in.
// Build with -tags ndarraydebug to enable them.
const Debug = false
