// Package observe provides observers for the failures that fallback and
// try-alternate combinators discard: a Recorder that keeps them in order and
// a zerolog-backed logger.
package observe
