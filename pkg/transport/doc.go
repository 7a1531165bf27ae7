// Package transport defines the narrow broker-client boundary consumed
// by the publish orchestrator.
//
// The production implementation wraps an MQTT client whose connect and
// publish operations complete asynchronously via tokens; tests drive
// the orchestrator with an in-memory stub. Keeping the interface to
// exactly the operations the orchestrator performs (connect, publish,
// disconnect, connection check) confines all broker asynchrony to one
// component and keeps the rest of the pipeline synchronous.
//
// The interfaces use Go idioms:
//   - Explicit error returns following Go conventions
//   - Token.WaitTimeout for bounded blocking on asynchronous outcomes
package transport
