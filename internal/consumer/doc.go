// Package consumer implements the outbound synchronization protocol that
// keeps the downstream consumer admin service eventually consistent with
// mutations committed by the console.
//
// Delivery is best-effort and fire-and-forget: every notification is sent at
// most once, strictly after the local mutation has committed, and its outcome
// never changes the response of the request that triggered it. Failures are
// observable only through the DeliveryResult and the error log.
package consumer
