// SPDX-License-Identifier: MIT

package codec_test

import (
	"fmt"

	"github.com/katalvlaran/gridrev/codec"
)

// ExampleParseDense parses comma-separated text into a small grid and
// serializes it back as tab-separated, 3-decimal text.
func ExampleParseDense() {
	d, err := codec.ParseDense("1,2.5\n-3", 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(codec.SerializeDense(d))

	// Output:
	// 1.000	2.500
	// -3.000	0.000
}

// ExampleSerializeSparse exports modifiers, keeping unset cells blank.
func ExampleSerializeSparse() {
	mods, _ := codec.ParseSparse("5,\n,-10", 2)
	fmt.Printf("%q\n", codec.SerializeSparse(mods))

	// Output:
	// "5.000\t\n\t-10.000"
}
