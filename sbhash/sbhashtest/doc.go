// Package sbhashtest contains a compliance suite
// for [sbhash.Algorithm] implementations.
package sbhashtest
