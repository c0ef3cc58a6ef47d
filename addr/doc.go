/*
Package addr derives deterministic, collision-resistant storage addresses
for structured data and resolves them into fixed-width read/write operations
against a word-addressable backend.

A value's location is described purely by its logical path from a root:

	root seed -> Ref -> (Key | Index | Child)* -> Base() -> pointer -> I/O

Each traversal step folds one component into an immutable hash chain, so
identical paths always land on identical addresses and distinct paths land
on distinct ones (up to hash collisions). Refs are plain values: copy one to
branch the traversal, and the copies stay fully independent.

Mutability is a property of the root, not of the operation: NewRef roots a
read-only path, NewMutRef a writable one, and only the writable family of
types (MutRef, MutDeferred, MutBasePtr, MutPtr) carries Write methods.
There is no runtime mutability flag to get wrong.

The backend is abstract: anything implementing Reader (and Writer, for the
mutable side) works. The parent package provides in-memory and Bolt-backed
implementations.
*/
package addr
