// Package snap implements the Mironov (2012) snapping mechanism: a
// differentially private Laplace-noise release that is resistant to
// floating-point side-channel attacks against naive implementations.
//
// The two entry points are SnapNoise, which returns just the noise that
// would be added to a non-private estimate, and SnapRelease, which
// returns the full private estimate. Both require the caller's
// sensitivity, epsilon, and clamping bound B as preconditions; see their
// doc comments for the exact numeric requirements.
//
// The mechanism never uses ordinary floating-point arithmetic where the
// privacy proof depends on an operation being exact: rounding to the
// lattice of multiples of Lambda is done by direct IEEE-754 bit surgery
// (internal/ieee, internal/snaplattice), the uniform variate is drawn bit
// by bit across the full range of binades rather than from a single
// library call (internal/entropy), and the natural logarithm step is
// correctly rounded rather than merely close (internal/lnprec).
package snap
