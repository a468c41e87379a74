package xfield

import (
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/field/f128"
	"github.com/vybium/starkcore/internal/starkcore/field/f62"
	"github.com/vybium/starkcore/internal/starkcore/field/f64"
)

// Goldilocks is the degree-3 extension over f64, the concrete instantiation
// vybium-crypto/pkg/vybium-crypto/xfield hard-codes; kept as a named alias
// since it is the extension this module's tests exercise most.
type Goldilocks = Cubic[f64.Element]

// GoldilocksQuadratic is the degree-2 extension over f64.
type GoldilocksQuadratic = Quadratic[f64.Element]

// F62Cubic and F62Quadratic are the two extensions built over f62.
type F62Cubic = Cubic[f62.Element]
type F62Quadratic = Quadratic[f62.Element]

// F128Cubic and F128Quadratic are the two extensions built over f128, for
// instantiations that need a wider extension field than f64 or f62 supply.
type F128Cubic = Cubic[f128.Element]
type F128Quadratic = Quadratic[f128.Element]

var (
	_ field.Element[Goldilocks]          = Goldilocks{}
	_ field.Element[GoldilocksQuadratic] = GoldilocksQuadratic{}
	_ field.Element[F62Cubic]            = F62Cubic{}
	_ field.Element[F62Quadratic]        = F62Quadratic{}
	_ field.Element[F128Cubic]           = F128Cubic{}
	_ field.Element[F128Quadratic]       = F128Quadratic{}
)
