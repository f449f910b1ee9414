package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Parameters of the curves to generate.  Values are parsed with big.Int's base
// prefix rules, hence can be given in decimal or (with 0x) hexadecimal.
var specs = []curveSpecs{
	{
		Name:        "secp256k1",
		FuncName:    "Secp256k1",
		Description: "the secp256k1 curve used by Bitcoin (SEC 2)",
		P:           "0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		A:           "0",
		B:           "7",
		Gx:          "0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		Gy:          "0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		N:           "0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
	},
	{
		Name:        "p256",
		FuncName:    "P256",
		Description: "the NIST P-256 curve (FIPS 186-4), also known as secp256r1",
		P:           "0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		A:           "-3",
		B:           "0x5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		Gx:          "0x6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		Gy:          "0x4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
		N:           "0xffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
	},
	{
		Name:        "f223",
		FuncName:    "F223",
		Description: "a toy curve y² = x³ + 7 over the field of order 223, whose generator has order 21",
		P:           "223",
		A:           "0",
		B:           "7",
		Gx:          "47",
		Gy:          "71",
		N:           "21",

		// 21 = 3·7
		CompositeOrder: true,
	},
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-ecmath")
	cfg := curvesConfig{}
	//
	for _, spec := range specs {
		c, err := spec.config()
		assertNoError(err, "for curve \"%s\"", spec.Name)
		//
		cfg.Curves = append(cfg.Curves, *c)
	}
	//
	assertNoError(bgen.Generate(cfg, "ecc", "templates",
		bavard.Entry{
			File:      "../../curves_gen.go",
			Templates: []string{"curves.go.tmpl"},
		},
	), "")
	// run gofmt on the generated file
	runCmd("gofmt", "-w", "../../curves_gen.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type curveSpecs struct {
	Name        string
	FuncName    string
	Description string
	P           string
	A           string
	B           string
	Gx          string
	Gy          string
	N           string

	// Permits a generator whose order is not prime
	CompositeOrder bool
}

type curvesConfig struct {
	Curves []curveConfig
}

// curveConfig holds the parameters of a curve in canonical form, i.e. as
// lower-case hexadecimal strings (without prefix) of values reduced modulo P.
type curveConfig struct {
	Name        string
	FuncName    string
	Description string
	P           string
	A           string
	B           string
	Gx          string
	Gy          string
	N           string
}

func (c curveSpecs) config() (*curveConfig, error) {
	var vals [6]*big.Int
	//
	for i, s := range []string{c.P, c.A, c.B, c.Gx, c.Gy, c.N} {
		v, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %s", s)
		}
		//
		vals[i] = v
	}
	//
	p, n := vals[0], vals[5]
	if !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("modulus %s is not prime", p)
	} else if !n.ProbablyPrime(20) && !c.CompositeOrder {
		return nil, fmt.Errorf("order %s is not prime", n)
	}
	// Reduce coefficients and coordinates into the field.
	for i := 1; i < 5; i++ {
		vals[i].Mod(vals[i], p)
	}
	//
	a, b, x, y := vals[1], vals[2], vals[3], vals[4]
	// Check y² = x³ + a·x + b (mod p)
	lhs := new(big.Int).Mul(y, y)
	rhs := new(big.Int).Mul(x, x)
	rhs.Add(rhs, a).Mul(rhs, x).Add(rhs, b)
	//
	if lhs.Sub(lhs, rhs).Mod(lhs, p).Sign() != 0 {
		return nil, fmt.Errorf("generator (%s, %s) is not on the curve", x, y)
	}
	//
	return &curveConfig{
		Name:        c.Name,
		FuncName:    c.FuncName,
		Description: c.Description,
		P:           p.Text(16),
		A:           a.Text(16),
		B:           b.Text(16),
		Gx:          x.Text(16),
		Gy:          y.Text(16),
		N:           n.Text(16),
	}, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 && contextAndArgs[0] != "" {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
