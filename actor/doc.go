/*
Package actor packages a method number, an encoded payload and an attached
value into a single invocation of a host-provided call primitive, and turns
the result back into either a typed value or a reported exit code.

The primitive itself (the Caller interface) belongs to the host environment:
this package and the façade packages built on it (power, account) only
decide what bytes cross the boundary and how the response is interpreted.
Encoding follows the compact CBOR conventions of the built-in actors, see
the types package.
*/
package actor
