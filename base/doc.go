// Package base holds the domain model shared by host and guest code:
// cryptographic hashes, 128-bit amounts, block heights, timestamps,
// chain and owner identifiers, chain ownership configuration, HTTP
// requests and responses, and log levels.
//
// These are the rich types application code works with. Their flat wire
// counterparts live in the generated wit/baseruntime packages, which
// convert to and from the types declared here.
package base
