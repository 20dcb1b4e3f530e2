// Package draft holds the UUID versions 6, 7 and 8 from the draft successor
// of RFC 4122 (draft-peabody-dispatch-new-uuid-format, later RFC 9562).
//
// Importing this package is the opt-in to unstable behaviour: the byte
// layouts produced here follow the draft and may change in a future
// release of this module without a major version bump. The stable
// versions 1, 3, 4 and 5 live in the parent package.
//
// Like the parent package, every function here is a pure function of its
// arguments (plus the random source where one is taken). Monotonic
// generators that keep state between calls are in the generator package.
package draft
