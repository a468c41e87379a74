package starkcore

import (
	"github.com/vybium/starkcore/internal/starkcore/field/f128"
	"github.com/vybium/starkcore/internal/starkcore/field/f252"
	"github.com/vybium/starkcore/internal/starkcore/field/f62"
	"github.com/vybium/starkcore/internal/starkcore/field/f64"
)

// F62 is the base field with p = 2^62 - 111*2^39 + 1.
type F62 = f62.Element

// F64 is the Goldilocks field, p = 2^64 - 2^32 + 1.
type F64 = f64.Element

// F128 is the base field with p = 2^128 - 45*2^40 + 1.
type F128 = f128.Element

// F252 is the StarkWare/Cairo base field, p = 2^251 + 17*2^192 + 1.
type F252 = f252.Element

// NewF62 constructs an F62 element from a uint64 value reduced mod p.
func NewF62(value uint64) F62 { return f62.New(value) }

// NewF64 constructs an F64 element from a uint64 value reduced mod p.
func NewF64(value uint64) F64 { return f64.New(value) }

// NewF128 constructs an F128 element from a uint64 value.
func NewF128(value uint64) F128 { return f128.NewUint64(value) }

// NewF252 constructs an F252 element from a uint64 value.
func NewF252(value uint64) F252 { return f252.NewUint64(value) }
