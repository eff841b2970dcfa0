package main

import (
	"fmt"

	"github.com/askretov/equal"
)

func main() {
	// Uniform equality ignores reference identity
	a := []interface{}{1, []interface{}{2, 3}, map[string]interface{}{"x": 1}}
	b := []interface{}{1, []interface{}{2, 3}, map[string]interface{}{"x": 1}}
	fmt.Println(equal.Compare(a, b)) // true

	// A finite depth budget makes comparison less strict, never more
	shallow, _ := equal.CompareDepth([]interface{}{[]interface{}{0}}, []interface{}{[]interface{}{1}}, 1)
	fmt.Println(shallow) // true

	// Classification picks the strictest matching method
	fmt.Println(equal.Classify(1, 1))                                 // strict
	fmt.Println(equal.Classify(1, "1"))                               // loose
	fmt.Println(equal.Classify([]interface{}{1}, []interface{}{1}))   // uniform
	fmt.Println(equal.Classify(1, 2))                                 // none

	// Custom predicates slot into the strictness ordering
	sameSign := func(x, y interface{}) bool {
		xv, xok := x.(int)
		yv, yok := y.(int)
		return xok && yok && (xv < 0) == (yv < 0)
	}
	equal.Register("same_sign", sameSign, equal.MethodUniform)
	fmt.Println(equal.Default().Ordering()) // ["strict","loose","same_sign","uniform","none"]
	fmt.Println(equal.Classify(1, 2))       // same_sign

	// Container lookups run under any registered method
	prices := equal.NewMap().Set("basic", []interface{}{1}).Set("pro", []interface{}{2})
	found, _ := equal.HasValue(prices, []interface{}{1}, "uniform")
	fmt.Println(found) // true
	found, _ = equal.HasValue(prices, []interface{}{1})
	fmt.Println(found) // false, strict compares by reference
}
