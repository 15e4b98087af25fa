package pathing

import "fmt"

// debugAsserts gates assertf so a release build never pays for the check.
// Flip to true locally when chasing a caller that violates one of these
// invariants; not a package-level mutable global in the sense spec.md §5
// rules out; it is never written at runtime, only edited for a debug build.
const debugAsserts = false

// assertf panics if cond is false, guarded by debugAsserts so these never
// fire in a production build. Mirrors fpath.c's ASSERT macro (spec.md §7):
// programmer-error conditions (off-map coordinates, a nil unit, an unknown
// propulsion class) are not part of the Retval taxonomy.
func assertf(cond bool, format string, args ...any) {
	if debugAsserts && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
