// Package baseruntime holds the contract-side wire types of the
// linera:app/base-runtime-api interface and their conversions to and from
// the domain model in package base.
//
// Everything except this file is generated; regenerate after changing
// package schema.
package baseruntime

//go:generate go run github.com/wippyai/linera-bridge/cmd/witbridge-gen -namespace contract -out .
