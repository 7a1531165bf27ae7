// Package failure defines the failure taxonomy shared by the meshsend
// pipeline. Every terminal outcome of a send is either success (a nil
// error) or a *Failure tagged with exactly one Kind.
//
// Kinds are non-overlapping and map one-to-one onto process exit codes
// via ExitCode, so the CLI layer never needs to inspect failure
// internals beyond the tag:
//   - configuration problems (missing fields, bad values, bad
//     addresses) are fixable by the operator and exit with 1
//   - broker problems (refused, auth, timeouts, publish) exit with 2
//   - message construction problems exit with 3
//   - serialization defects exit with 4
//   - anything unclassified exits with 99
//
// A Failure wraps an underlying cause and implements Unwrap, so
// errors.Is/errors.As work through it.
package failure
