// Package server manages the lifecycle of the transport servers of the
// console application. It starts the HTTP server, listens for termination
// signals, and shuts everything down gracefully.
package server
