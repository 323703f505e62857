// Package bits implements integer arithmetic with bitwise operations only.
package bits

// Adder adds a and b, wrapping around on overflow.
func Adder(a, b uint32) uint32 {
	carry := a & b
	sum := a ^ b

	if carry != 0 {
		return Adder(carry<<1, sum)
	}
	return sum
}

// Multiplier multiplies a and b by shifting and adding, wrapping around on
// overflow.
func Multiplier(a, b uint32) uint32 {
	var res uint32
	for shift := 0; shift < 32; shift++ {
		if b&(1<<shift) != 0 {
			res = Adder(res, a<<shift)
		}
	}
	return res
}

// GrayCode returns the reflected binary code of n.
func GrayCode(n uint32) uint32 {
	return n ^ (n >> 1)
}
