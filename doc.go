package bloomset

/*

# Bloom filter membership sets

This package provides a Bloom filter: a probabilistic set-membership
structure answering "is key x possibly a member?" with no false negatives
and a bounded, tunable false-positive probability, in sub-linear memory
relative to storing the keys themselves. It is designed to be embedded in
larger systems as a cheap pre-check before an expensive lookup: cache
admission, deduplication gates, and similar prefilter roles.

## What Bloom filters are (and are not)

- If the filter says "definitely not present", the key was never added.
- If the filter says "maybe present", the key may or may not have been
  added (false positives are possible).

There is no operation that distinguishes a true positive from a false
positive; that asymmetry is fundamental to the structure. Bloom filters
are not cryptographic commitments and provide no proof of exclusion.

## Indexing and bit numbering

Each key is hashed once with SHA-256. Two 64-bit values h1 and h2 are read
little-endian from fixed non-overlapping ranges of the digest, h2 is
forced odd, and the k bit positions are derived by Kirsch-Mitzenmacher
double hashing:

	index(i) = (h1 + i*h2) mod m    for i in [0, k)

Bit j of the filter lives in byte j>>3 at offset j&7, least-significant
bit first.

Forcing h2 odd does not guarantee gcd(h2, m) == 1. When m shares a factor
with a key's derived h2, that key's index sequence does not range over all
residues mod m, which can increase clustering. Callers who want to rule
this out should favour odd (or prime) values of m; the sizing returned by
[SizeFor] is usually fine as-is.

## Concurrency

The filter performs no internal synchronization. [Filter.Add] carries out
k independent read-modify-write operations on single bytes; two concurrent
Add calls landing in the same byte can lose an update, so writers must be
serialized externally. Concurrent [Filter.Contains] calls are safe with
each other, but a Contains racing an in-flight Add can observe a partially
written key and report a transient false negative.

## Serialization

[Filter.ToBytes] and [FromBytes] implement a fixed little-endian layout:

	magic      4 bytes   "BLMF"
	version    1 byte    currently 1
	numBits    8 bytes   m
	numHashes  8 bytes   k
	bits       ceil(m/8) bytes

The insertion counter is usage telemetry, not structural state, and is
deliberately not part of the wire format; a deserialized filter starts
with a zero counter.

*/
