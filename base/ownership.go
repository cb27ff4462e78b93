package base

// TimeoutConfig controls round timeouts of a multi-owner chain.
type TimeoutConfig struct {
	// FastRoundDuration is nil when the chain has no fast round.
	FastRoundDuration *TimeDelta
	BaseTimeout       TimeDelta
	TimeoutIncrement  TimeDelta
	FallbackDuration  TimeDelta
}

// WeightedOwner is an owner with its leader election weight. Owner must
// be set; a nil MultiAddress has no wire form.
type WeightedOwner struct {
	Owner  MultiAddress
	Weight uint64
}

// ChainOwnership describes who may propose blocks on a chain. Every
// MultiAddress it holds must be non-nil to be converted to a wire value.
type ChainOwnership struct {
	SuperOwners           []MultiAddress
	Owners                []WeightedOwner
	MultiLeaderRounds     uint32
	OpenMultiLeaderRounds uint32
	TimeoutConfig         TimeoutConfig
}

// SingleOwner returns the ownership of a chain with one super owner and
// the default timeouts.
func SingleOwner(owner MultiAddress) ChainOwnership {
	return ChainOwnership{
		SuperOwners:   []MultiAddress{owner},
		TimeoutConfig: DefaultTimeoutConfig(),
	}
}

// DefaultTimeoutConfig returns a 10s base timeout growing by 1s per round
// with a one-day fallback and no fast round.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		BaseTimeout:      TimeDeltaFromMicros(10_000_000),
		TimeoutIncrement: TimeDeltaFromMicros(1_000_000),
		FallbackDuration: TimeDeltaFromMicros(24 * 60 * 60 * 1_000_000),
	}
}

// IsActive reports whether any owner may propose blocks.
func (o ChainOwnership) IsActive() bool {
	return len(o.SuperOwners) > 0 || len(o.Owners) > 0
}
