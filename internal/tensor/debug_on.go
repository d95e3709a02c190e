//go:build ndarraydebug

package tensor

// Debug reports whether precondition checks on hot paths are compiled in.
const Debug = true
