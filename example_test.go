package chainmap_test

import (
	"fmt"

	"github.com/homier/chainmap"
)

func Example() {
	ht := chainmap.MustNew[string, string]()

	ht.Set("apple", "red")
	ht.Set("banana", "yellow")
	ht.Set("carrot", "orange")
	ht.Set("dog", "brown")
	ht.Set("elephant", "gray")
	ht.Set("frog", "green")
	ht.Set("grape", "purple")
	ht.Set("hat", "black")
	ht.Set("ice cream", "white")
	ht.Set("jacket", "blue")
	ht.Set("kite", "pink")
	ht.Set("lion", "golden")

	_, ok := ht.Get("apples")
	fmt.Println(ok)
	fmt.Println(ht.Has("apple"))
	fmt.Println(ht.Remove("apples"))

	ht.Set("lion", "gold")
	fmt.Println(ht.Len(), ht.Capacity())
	fmt.Println(ht.Keys())
	fmt.Println(ht.Values())

	// Output:
	// false
	// true
	// false
	// 12 32
	// [carrot frog banana grape ice cream jacket kite elephant apple hat dog lion]
	// [orange green yellow purple white blue pink gray red black brown gold]
}

func ExampleHashSet() {
	hs, err := chainmap.NewSet[string]()
	if err != nil {
		panic(err)
	}

	fmt.Println(hs.Add("foo"))
	fmt.Println(hs.Add("foo"))
	fmt.Println(hs.Has("foo"), hs.Len())

	// Output:
	// true
	// false
	// true 1
}
