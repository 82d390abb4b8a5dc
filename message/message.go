// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - transfer message payloads
package message

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/nemclient/nemcore/account"
	"github.com/nemclient/nemcore/fault"
)

// Type - wire code of a message
type Type int

// message types as sent in the "type" field
const (
	EmptyType     Type = 0 // never sent, the DTO is {}
	PlainType     Type = 1
	EncryptedType Type = 2
)

// Message - capability shared by all message variants
type Message interface {
	IsPlain() bool
	IsEncrypted() bool
	IsEmpty() bool
	Payload() string // hex
	Type() Type
	ToDTO() DTO
}

// DTO - wire form, empty messages encode as {}
type DTO struct {
	Payload string `json:"payload,omitempty"`
	Type    Type   `json:"type,omitempty"`
}

// Plain - hex of the UTF-8 text
type Plain struct {
	payload string
}

// Encrypted - opaque ciphertext from an Encryptor
type Encrypted struct {
	payload   string
	recipient *account.PublicAccount // only set when created locally
}

// Empty - the single empty message
var Empty Message = &Plain{payload: ""}

// Encryptor - external message encryption service
type Encryptor interface {
	Encrypt(plainText string, senderPrivateKey string, recipientPublicKey string) (string, error)
	Decrypt(payload string, recipientPrivateKey string, senderPublicKey string) (string, error)
}

// NewPlain - create a plain message, empty text gives Empty
func NewPlain(text string) Message {
	if "" == text {
		return Empty
	}
	return &Plain{payload: hex.EncodeToString([]byte(text))}
}

// PlainFromPayload - create from a hex payload received from the wire
func PlainFromPayload(payload string) (Message, error) {
	if "" == payload {
		return Empty, nil
	}
	if _, err := hex.DecodeString(payload); nil != err {
		return nil, fault.ErrInvalidHexPayload
	}
	return &Plain{payload: payload}, nil
}

// Text - decode the payload, invalid UTF-8 is returned as is
func (m *Plain) Text() string {
	b, err := hex.DecodeString(m.payload)
	if nil != err || !utf8.Valid(b) {
		return m.payload
	}
	return string(b)
}

func (m *Plain) IsPlain() bool     { return true }
func (m *Plain) IsEncrypted() bool { return false }
func (m *Plain) IsEmpty() bool     { return "" == m.payload }
func (m *Plain) Payload() string   { return m.payload }

// Type - an empty plain message has no wire type
func (m *Plain) Type() Type {
	if m.IsEmpty() {
		return EmptyType
	}
	return PlainType
}

// ToDTO - wire form
func (m *Plain) ToDTO() DTO {
	if m.IsEmpty() {
		return DTO{}
	}
	return DTO{Payload: m.payload, Type: PlainType}
}

// NewEncrypted - encrypt text for a recipient
func NewEncrypted(text string, recipient *account.PublicAccount, senderPrivateKey string, encryptor Encryptor) (*Encrypted, error) {
	if nil == encryptor {
		return nil, fault.ErrMissingEncryptor
	}
	if !recipient.HasPublicKey() {
		return nil, fault.ErrInvalidPublicKey
	}
	payload, err := encryptor.Encrypt(text, senderPrivateKey, recipient.PublicKey)
	if nil != err {
		return nil, err
	}
	return &Encrypted{
		payload:   payload,
		recipient: recipient,
	}, nil
}

// EncryptedFromPayload - create from a hex payload received from the wire
func EncryptedFromPayload(payload string) (*Encrypted, error) {
	if _, err := hex.DecodeString(payload); nil != err {
		return nil, fault.ErrInvalidHexPayload
	}
	return &Encrypted{payload: payload}, nil
}

// Recipient - account the message was encrypted for, nil if decoded
func (m *Encrypted) Recipient() *account.PublicAccount {
	return m.recipient
}

// Decrypt - recover the plain message
func (m *Encrypted) Decrypt(recipientPrivateKey string, sender *account.PublicAccount, encryptor Encryptor) (Message, error) {
	if nil == encryptor {
		return nil, fault.ErrMissingEncryptor
	}
	if !sender.HasPublicKey() {
		return nil, fault.ErrInvalidPublicKey
	}
	text, err := encryptor.Decrypt(m.payload, recipientPrivateKey, sender.PublicKey)
	if nil != err {
		return nil, err
	}
	return NewPlain(text), nil
}

func (m *Encrypted) IsPlain() bool     { return false }
func (m *Encrypted) IsEncrypted() bool { return true }
func (m *Encrypted) IsEmpty() bool     { return "" == m.payload }
func (m *Encrypted) Payload() string   { return m.payload }
func (m *Encrypted) Type() Type        { return EncryptedType }

// ToDTO - wire form
func (m *Encrypted) ToDTO() DTO {
	return DTO{Payload: m.payload, Type: EncryptedType}
}

// FromDTO - type 1 is plain, 2 is encrypted, anything else is empty
func FromDTO(dto *DTO) (Message, error) {
	if nil == dto {
		return Empty, nil
	}
	switch dto.Type {
	case PlainType:
		return PlainFromPayload(dto.Payload)
	case EncryptedType:
		m, err := EncryptedFromPayload(dto.Payload)
		if nil != err {
			return nil, err
		}
		return m, nil
	default:
		return Empty, nil
	}
}
