package baseruntime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/linera-bridge/base"
	"github.com/wippyai/linera-bridge/errors"
)

func sampleHash(seed byte) base.CryptoHash {
	var h base.CryptoHash
	for i := range h {
		h[i] = seed + byte(i)
	}
	return h
}

func sampleOwnership() base.ChainOwnership {
	return base.ChainOwnership{
		SuperOwners: []base.MultiAddress{
			base.Address32{Hash: sampleHash(1)},
			base.Address32{Hash: sampleHash(2)},
		},
		Owners: []base.WeightedOwner{
			{Owner: base.Address32{Hash: sampleHash(3)}, Weight: 100},
			{Owner: base.Address32{Hash: sampleHash(3)}, Weight: 100},
			{Owner: base.Address32{Hash: sampleHash(4)}, Weight: 1},
		},
		MultiLeaderRounds:     7,
		OpenMultiLeaderRounds: 2,
		TimeoutConfig: base.TimeoutConfig{
			BaseTimeout:      base.TimeDeltaFromMicros(10_000_000),
			TimeoutIncrement: base.TimeDeltaFromMicros(1_000_000),
			FallbackDuration: base.TimeDeltaFromMicros(86_400_000_000),
		},
	}
}

func TestRoundTrip(t *testing.T) {
	fast := base.TimeDeltaFromMicros(5_000)
	cases := []struct {
		name string
		in   any
	}{
		{"crypto-hash", sampleHash(9)},
		{"owner", base.Owner{Hash: sampleHash(10)}},
		{"address32", base.Address32{Hash: sampleHash(11)}},
		{"chain", base.ChainAddress{}},
		{"amount", base.AmountFromAttos(base.Uint128FromHalves(42, 7))},
		{"amount zero", base.AmountFromAttos(base.Uint128{})},
		{"amount max", base.AmountFromAttos(base.MaxUint128)},
		{"block-height", base.BlockHeight(1 << 40)},
		{"chain-id", base.ChainID{Hash: sampleHash(12)}},
		{"user-application-id", base.UserApplicationID{Hash: sampleHash(13)}},
		{"timestamp", base.TimestampFromMicros(1_700_000_000_000_000)},
		{"time-delta", base.TimeDeltaFromMicros(^uint64(0))},
		{"timeout-config", base.TimeoutConfig{FastRoundDuration: &fast, BaseTimeout: 1, TimeoutIncrement: 2, FallbackDuration: 3}},
		{"chain-ownership", sampleOwnership()},
		{"empty chain-ownership", base.ChainOwnership{}},
		{"http-header", base.NewHTTPHeader("Content-Type", "text/plain")},
		{"http-request", base.HTTPRequest{
			Method:  base.MethodPost,
			URL:     "https://example.com/api",
			Headers: []base.HTTPHeader{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}},
			Body:    []byte("payload"),
		}},
		{"http-response", base.HTTPResponse{Status: 404, Body: []byte{}}},
		{"level", base.LevelWarn},
	}

	var b Bindings
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wire, ok := b.FromBase(tc.in)
			require.True(t, ok)
			back, ok := b.ToBase(wire)
			require.True(t, ok)
			require.Equal(t, tc.in, back)
		})
	}
}

func TestAmountReassembly(t *testing.T) {
	cases := []struct {
		name         string
		lower, upper uint64
		want         string
	}{
		{"zero", 0, 0, "0"},
		{"lower only", 1, 0, "1"},
		{"upper only", 0, 1, "18446744073709551616"},
		{"lower max", ^uint64(0), 0, "18446744073709551615"},
		{"max", ^uint64(0), ^uint64(0), "340282366920938463463374607431768211455"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Amount{Inner0: [2]uint64{tc.lower, tc.upper}}.ToBase()
			require.Equal(t, tc.want, got.Attos().Big().String())

			back := AmountFromBase(got)
			require.Equal(t, tc.lower, back.Inner0[0])
			require.Equal(t, tc.upper, back.Inner0[1])
		})
	}
}

func TestCryptoHashWordOrder(t *testing.T) {
	wire := CryptoHash{Part1: 1, Part2: 2, Part3: 3, Part4: 4}
	h := wire.ToBase()
	require.Equal(t, [4]uint64{1, 2, 3, 4}, h.Words())
	require.Equal(t, wire, CryptoHashFromBase(h))

	// Each part occupies its own 8-byte window, big-endian.
	require.Equal(t, byte(1), h[7])
	require.Equal(t, byte(4), h[31])
	require.Equal(t, byte(0), h[0])
}

func TestHTTPMethodMapping(t *testing.T) {
	seen := make(map[HTTPMethod]base.HTTPMethod)
	for m := base.HTTPMethod(0); int(m) < base.HTTPMethodCount; m++ {
		wire := HTTPMethodFromBase(m)
		if prev, dup := seen[wire]; dup {
			t.Fatalf("%v and %v both map to %v", prev, m, wire)
		}
		seen[wire] = m
		if got := wire.ToBase(); got != m {
			t.Errorf("%v round-tripped to %v", m, got)
		}
	}
	require.Len(t, seen, HTTPMethodCount)
}

func TestLogLevelMapping(t *testing.T) {
	seen := make(map[LogLevel]base.Level)
	for l := base.Level(0); int(l) < base.LevelCount; l++ {
		wire := LogLevelFromBase(l)
		if prev, dup := seen[wire]; dup {
			t.Fatalf("%v and %v both map to %v", prev, l, wire)
		}
		seen[wire] = l
		require.Equal(t, l.String(), wire.String())
		require.Equal(t, l, wire.ToBase())
	}
	require.Len(t, seen, LogLevelCount)
}

func TestCollectionOrder(t *testing.T) {
	req := base.HTTPRequest{
		Method: base.MethodGet,
		URL:    "http://localhost",
		Headers: []base.HTTPHeader{
			{Name: "X-B", Value: "2"},
			{Name: "X-A", Value: "1"},
			{Name: "X-B", Value: "2"},
		},
	}
	wire := HTTPRequestFromBase(req)
	require.Len(t, wire.Headers, 3)
	for i, h := range req.Headers {
		require.Equal(t, h.Name, wire.Headers[i].Name)
		require.Equal(t, h.Value, wire.Headers[i].Value)
	}
	require.Nil(t, wire.Body)
}

func TestChainOwnershipNested(t *testing.T) {
	wire := ChainOwnershipFromBase(sampleOwnership())
	require.Len(t, wire.SuperOwners, 2)
	require.Len(t, wire.Owners, 3)
	require.Nil(t, wire.TimeoutConfig.FastRoundDuration)
	require.Equal(t, uint64(10_000_000), wire.TimeoutConfig.BaseTimeout.Inner0)
	require.Equal(t, uint64(1), wire.Owners[2].F1)

	got := wire.ToBase()
	require.Equal(t, sampleOwnership(), got)
	require.Nil(t, got.TimeoutConfig.FastRoundDuration)
}

func TestBodyIsCopied(t *testing.T) {
	body := []byte("abc")
	wire := HTTPResponse{Status: 200, Body: body}
	resp := wire.ToBase()
	body[0] = 'x'
	require.Equal(t, "abc", string(resp.Body))
}

func TestContractViolations(t *testing.T) {
	cases := []struct {
		name string
		kind errors.Kind
		fn   func()
	}{
		{"no variant case", errors.KindInvalidVariant, func() { MultiAddress{}.ToBase() }},
		{"two variant cases", errors.KindInvalidVariant, func() {
			MultiAddress{Address32: &CryptoHash{}, Chain: &struct{}{}}.ToBase()
		}},
		{"http-method out of range", errors.KindInvalidEnum, func() { HTTPMethod(HTTPMethodCount).ToBase() }},
		{"log-level out of range", errors.KindInvalidEnum, func() { LogLevel(200).ToBase() }},
		{"domain level out of range", errors.KindInvalidEnum, func() { LogLevelFromBase(base.Level(99)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(*errors.Error)
				require.True(t, ok, "panic value %T", r)
				require.Equal(t, tc.kind, err.Kind)
			}()
			tc.fn()
		})
	}
}

func TestNilOwnerPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(*errors.Error)
		require.True(t, ok)
		require.Equal(t, errors.KindInvalidVariant, err.Kind)
		require.Contains(t, err.Detail, "nil multi-address")
	}()
	ChainOwnershipFromBase(base.ChainOwnership{Owners: []base.WeightedOwner{{}}})
}

func TestBindingsZero(t *testing.T) {
	var b Bindings
	for _, name := range []string{"crypto-hash", "multi-address", "chain-ownership", "http-request", "log-level"} {
		v, ok := b.Zero(name)
		require.True(t, ok, name)
		require.NotNil(t, v)
	}
	_, ok := b.Zero("no-such-type")
	require.False(t, ok)

	_, ok = b.FromBase(struct{}{})
	require.False(t, ok)
	_, ok = b.ToBase("text")
	require.False(t, ok)
	require.Equal(t, "contract", b.Namespace())
}

func TestWireRoundTrip(t *testing.T) {
	hash := CryptoHash{Part1: 1, Part2: 2, Part3: 3, Part4: ^uint64(0)}
	fast := TimeDelta{Inner0: 250}
	cases := []struct {
		name string
		in   any
	}{
		{"address32", MultiAddressAddress32(hash)},
		{"chain", MultiAddressChain()},
		{"amount", Amount{Inner0: [2]uint64{^uint64(0), 1}}},
		{"timeout-config fast round", TimeoutConfig{
			FastRoundDuration: &fast,
			BaseTimeout:       TimeDelta{Inner0: 1},
			TimeoutIncrement:  TimeDelta{Inner0: 2},
			FallbackDuration:  TimeDelta{Inner0: 3},
		}},
		{"chain-ownership empty super owners", ChainOwnership{
			SuperOwners: []MultiAddress{},
			Owners: []TupleMultiAddressU64{
				{F0: MultiAddressChain(), F1: 5},
				{F0: MultiAddressAddress32(hash), F1: 5},
			},
			MultiLeaderRounds: 1,
		}},
		{"http-response empty body", HTTPResponse{
			Status:  204,
			Headers: []HTTPHeader{{Name: "x-a", Value: ""}},
			Body:    []byte{},
		}},
		{"http-method trace", HTTPMethodTrace},
		{"log-level trace", LogLevelTrace},
	}

	var b Bindings
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			domain, ok := b.ToBase(tc.in)
			require.True(t, ok)
			back, ok := b.FromBase(domain)
			require.True(t, ok)
			require.Equal(t, tc.in, back)
		})
	}
}
