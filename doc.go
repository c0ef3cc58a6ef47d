/*
Package cairo stores structured values in a word-addressable key-value
backend (in this case, Bolt or an in-memory store), addressing every value
by a deterministic hash of its logical path.

We implement:

1. Schemas, declaring named storage variables with typed shapes (scalars,
multi-word composites, maps, vectors, nested nodes).

2. Stores, binding a schema to a backend and handing out typed paths rooted
at each variable's seed.

3. Typed accessors for the common shapes: scalar get/set, map entries keyed
by arbitrary scalar keys, bounds-checked vectors with a stored length, and
whole-record access to composites.

# Technical Details

**Addressing.**
The address of a value is a chained hash of its path from the root: the
variable's seed, then each map key, vector index or node child name in
traversal order. The derivation itself lives in the addr subpackage; this
package supplies the root seeds (a stable 64-bit hash of the declared
variable name) and the backends.

**Word layout.**
Scalars occupy one word at their derived address. Composites pack one word
per field into consecutive offsets at a single address, in declaration
order. Map entries and vector elements each get their own derived address.
A vector's length lives in a single word at the vector's own address, which
is otherwise unused.

**Backends.**
A backend is anything with ReadWord/WriteWord. Unwritten cells read as
zero. The Bolt backend keys cells by address plus big-endian offset in one
bucket; the in-memory backend is intended for tests.

**Mutability.**
Writability is decided where a path is rooted: Store.Ref hands out
read-only paths, Store.MutRef writable ones, and a read-only View can only
produce the former. The write methods exist only on the writable path and
pointer types.
*/
package cairo
