// Package models defines the core data structures of the data-vault ledger:
// accounts, vaults, encrypted-record descriptors and access interactions.
package models

// Fee bounds and field-length limits enforced by the vault state machine.
// Hashes and proof signatures are length-exact; the other limits are upper
// bounds on non-empty values.
const (
	// MinAccessFee is the lowest acceptable per-record access price.
	MinAccessFee int64 = 1
	// MaxAccessFee is the highest acceptable per-record access price.
	MaxAccessFee int64 = 1_000_000

	// HashLength is the exact byte length of content hashes and proof signatures.
	HashLength = 64
	// MaxBlobLength is the maximum byte length of an encrypted payload.
	MaxBlobLength = 256
	// MaxTagLength is the maximum byte length of a record category tag.
	MaxTagLength = 32
	// MaxReasonLength is the maximum byte length of an access-request reason.
	MaxReasonLength = 64

	// DefaultMaxChainHeight is the default ceiling for admin height updates.
	DefaultMaxChainHeight int64 = 1_000_000_000
)

// Account represents an authenticated caller identity with a token balance.
type Account struct {
	// ID is the opaque, globally unique account identifier.
	ID string `json:"id"`
	// Login is the name the account registered with.
	Login string `json:"login"`
	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash []byte `json:"-"`
	// Balance is the account's token balance in the ledger's native unit.
	Balance int64 `json:"balance"`
}

// Vault is the per-account metadata entry governing record indexing and
// access pricing. Exactly one vault exists per owner, created once and
// never deleted.
type Vault struct {
	// Owner is the account that created and controls the vault.
	Owner string `json:"owner"`
	// CreationHeight is the chain height at which the vault was created.
	CreationHeight int64 `json:"creation_height"`
	// TotalEntries equals the highest allocated record index; never decreases.
	TotalEntries int64 `json:"total_entries"`
	// AccessPrice is the fee charged per access request, within fee bounds.
	AccessPrice int64 `json:"access_price"`
}

// Record is one stored encrypted-data descriptor, keyed by owner and a
// 1-based index allocated from the owner's vault. Records are append-only.
type Record struct {
	// Owner is the vault owner the record belongs to.
	Owner string `json:"owner"`
	// Index is the 1-based position assigned at creation; never reused.
	Index int64 `json:"index"`
	// ContentHash is the exact-64-byte hash of the plaintext content.
	ContentHash string `json:"content_hash"`
	// EncryptedBlob is the client-encrypted payload (opaque to the server).
	EncryptedBlob string `json:"encrypted_blob"`
	// CategoryTag is a short label classifying the record.
	CategoryTag string `json:"category_tag"`
	// IsAccessible gates whether access requests for this record succeed.
	IsAccessible bool `json:"is_accessible"`
	// ProofSignature is the exact-64-byte zero-knowledge proof string.
	// It is stored and compared verbatim, never verified cryptographically.
	ProofSignature string `json:"proof_signature"`
}

// Interaction is the last-write log entry for one access request, keyed by
// (owner, requester, index). A repeated request overwrites the previous entry.
type Interaction struct {
	// Owner is the vault owner whose record was requested.
	Owner string `json:"owner"`
	// Requester is the account that paid for access.
	Requester string `json:"requester"`
	// Index is the record index that was requested.
	Index int64 `json:"index"`
	// Timestamp is the chain height at the moment of the request.
	Timestamp int64 `json:"timestamp"`
	// RequestReason is the requester-supplied justification.
	RequestReason string `json:"request_reason"`
	// PaymentAmount is the vault's access price at the moment of the request.
	PaymentAmount int64 `json:"payment_amount"`
}
