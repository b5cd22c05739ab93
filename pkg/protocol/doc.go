// Package protocol implements the line-oriented command protocol that fronts
// the LRU cache.
//
// A session reads one command per line and writes exactly one response line
// per non-blank input line. Blank lines are ignored. The vocabulary:
//
//	INIT <capacity>    create (or replace) the cache        -> OK
//	PUT <key> <value>  store a value, value may have spaces -> OK
//	GET <key>          read a value                         -> <value> or NULL
//	SIZE               number of entries                    -> <count>
//
// Anything else is answered with an ERROR: line, and any command other than
// INIT issued before the cache exists yields "ERROR: Cache not initialized".
// No error ends the session; the loop keeps reading until EOF. A GET miss is
// not an error, it is the ordinary NULL outcome.
package protocol
