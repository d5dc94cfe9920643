// Package simstate holds the mutable runtime state the Graph Store
// itself does not own: the simulation time cursor, the scheduled
// packet-delivery queue, the one-shot arrival latch, the seeded
// packet-loss sampler, and the TCP handshake state machine that
// reports connection success/failure to its caller.
//
// IoT battery drain and cloud instance scaling live on graph.Store
// instead, since they mutate node fields the Store already owns and
// guards under its node lock; simstate composes with the Store rather
// than duplicating that state, keeping a single owner per piece of
// mutable state.
package simstate
