package hades377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
)

// quinticSBox computes x^5 in place via two squarings and a multiply.
func quinticSBox(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Mul(x, x)
	x4.Mul(&x2, &x2)
	x.Mul(&x4, x)
}

// constrainQuinticSBox forces an output wire equal to x^5 with exactly three
// multiplication gates: x·x → x², x²·x² → x⁴, x⁴·x → x⁵. The gate order and
// operand pairing are fixed; independent implementations must reproduce them
// for circuit compatibility.
func constrainQuinticSBox(api frontend.API, x frontend.Variable) frontend.Variable {
	x2 := api.Mul(x, x)
	x4 := api.Mul(x2, x2)
	return api.Mul(x4, x)
}
