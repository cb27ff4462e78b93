package base

// ChainID identifies a chain by the hash of its description.
type ChainID struct {
	Hash CryptoHash
}

func (c ChainID) String() string {
	return c.Hash.String()
}

// Owner is the 32-byte address of an account owner.
type Owner struct {
	Hash CryptoHash
}

func (o Owner) String() string {
	return o.Hash.String()
}

// UserApplicationID identifies a user application.
type UserApplicationID struct {
	Hash CryptoHash
}

func (a UserApplicationID) String() string {
	return a.Hash.String()
}

// MultiAddress is the owner of an account. It is either a 32-byte
// address or the chain itself.
//
// The set of implementations is closed: Address32 and ChainAddress.
type MultiAddress interface {
	isMultiAddress()
	String() string
}

// Address32 is a MultiAddress holding a 32-byte address.
type Address32 struct {
	Hash CryptoHash
}

// ChainAddress is the MultiAddress designating the chain's own account.
type ChainAddress struct{}

func (Address32) isMultiAddress()    {}
func (ChainAddress) isMultiAddress() {}

func (a Address32) String() string {
	return "address32:" + a.Hash.String()
}

func (ChainAddress) String() string {
	return "chain"
}
