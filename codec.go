/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package guid32

import "strings"

/*

EncodedLen returns number of symbols required to encode n bytes.
*/
func EncodedLen(n int, padded bool) int {
	if padded {
		return (n + 4) / 5 * 8
	}

	return (n*8 + 4) / 5
}

/*

DecodedLen returns number of bytes decoded from n symbols (padding excluded).
Trailing bits that do not form a complete byte are not counted.
*/
func DecodedLen(n int) int {
	return n * 5 / 8
}

/*

Encode converts bytes into Base32 string, as defined by RFC4648.

Bytes are treated as contiguous bitstream (most significant bit first), which
is split into 5-bit groups. The last group is filled with zero bits. Padded
encoding aligns the output to 8 symbols block using '='.
*/
func Encode(b []byte, padded bool) string {
	if len(b) == 0 {
		return ""
	}

	text := make([]byte, EncodedLen(len(b), padded))

	// bit accumulator, it never holds more than 12 bits
	acc, bits := uint(0), uint(0)
	i := 0

	for _, x := range b {
		acc = acc<<8 | uint(x)
		bits += 8

		for bits >= 5 {
			bits -= 5
			text[i] = symbol(byte(acc >> bits))
			i++
		}
		acc &= 1<<bits - 1
	}

	if bits > 0 {
		text[i] = symbol(byte(acc << (5 - bits)))
		i++
	}

	for ; i < len(text); i++ {
		text[i] = padding
	}

	return string(text)
}

/*

Decode converts Base32 string back into bytes. The decoder is case-insensitive
and ignores trailing padding.

The decoder is lenient: the bits after the last complete byte are discarded
without checking that they are zero. Therefore, "MY" and "MZ" decode to the
same byte 'f'.
*/
func Decode(s string) ([]byte, error) {
	text := strings.TrimRight(s, string(padding))
	b := make([]byte, DecodedLen(len(text)))

	acc, bits := uint(0), uint(0)
	i := 0

	for pos, x := range text {
		v, ok := value(x)
		if !ok {
			return nil, &InvalidSymbolError{Symbol: x, Pos: pos}
		}

		acc = acc<<5 | uint(v)
		bits += 5

		if bits >= 8 {
			bits -= 8
			b[i] = byte(acc >> bits)
			i++
		}
		acc &= 1<<bits - 1
	}

	return b, nil
}
