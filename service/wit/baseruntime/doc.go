// Package baseruntime holds the service-side wire types of the
// linera:app/base-runtime-api interface. The shapes match the contract
// namespace but the Go types are distinct.
package baseruntime

//go:generate go run github.com/wippyai/linera-bridge/cmd/witbridge-gen -namespace service -out .
