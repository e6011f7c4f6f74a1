package inventory

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCodeLength = errors.New("code length must be positive")
	ErrEmptyCode         = errors.New("code string is empty")
)

// Alphabet excludes ambiguous characters (I, L, O, U and their lookalikes)
// so codes survive being read aloud or typed from a screenshot.
const codeAlphabet = "ABCDEFGHJKMNPQRSTVWXYZ0123456789"

const codeGroupSize = 5

// NewCodeString returns an opaque activation code of length random characters,
// hyphen-grouped for readability. Uniqueness is guaranteed by the store's
// unique constraint, not by the generator.
func NewCodeString(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidCodeLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, c := range buf {
		if i > 0 && i%codeGroupSize == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(codeAlphabet[int(c)%len(codeAlphabet)])
	}
	return b.String(), nil
}

// UnusedCode is a generated, not-yet-issued activation code in a product's
// available pool.
type UnusedCode struct {
	id        uuid.UUID
	productID uuid.UUID
	code      string
	createdAt time.Time
}

func NewUnusedCode(productID uuid.UUID, code string) (UnusedCode, error) {
	if code == "" {
		return UnusedCode{}, ErrEmptyCode
	}
	return UnusedCode{
		id:        uuid.New(),
		productID: productID,
		code:      code,
	}, nil
}

func ReconstructUnusedCode(id, productID uuid.UUID, code string, createdAt time.Time) UnusedCode {
	return UnusedCode{id: id, productID: productID, code: code, createdAt: createdAt}
}

func (u UnusedCode) ID() uuid.UUID        { return u.id }
func (u UnusedCode) ProductID() uuid.UUID { return u.productID }
func (u UnusedCode) Code() string         { return u.code }
func (u UnusedCode) CreatedAt() time.Time { return u.createdAt }

// AllocatedCode is the same code string after its one-time move out of the
// unused pool, bound to a user and an order item.
type AllocatedCode struct {
	id          uuid.UUID
	productID   uuid.UUID
	code        string
	userID      uuid.UUID
	orderItemID uuid.UUID
	allocatedAt time.Time
}

func ReconstructAllocatedCode(id, productID uuid.UUID, code string, userID, orderItemID uuid.UUID, allocatedAt time.Time) AllocatedCode {
	return AllocatedCode{
		id:          id,
		productID:   productID,
		code:        code,
		userID:      userID,
		orderItemID: orderItemID,
		allocatedAt: allocatedAt,
	}
}

func (a AllocatedCode) ID() uuid.UUID          { return a.id }
func (a AllocatedCode) ProductID() uuid.UUID   { return a.productID }
func (a AllocatedCode) Code() string           { return a.code }
func (a AllocatedCode) UserID() uuid.UUID      { return a.userID }
func (a AllocatedCode) OrderItemID() uuid.UUID { return a.orderItemID }
func (a AllocatedCode) AllocatedAt() time.Time { return a.allocatedAt }
