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

import "fmt"

/*

GUID is the in-memory layout of 128-bit unique identifier as platforms with
"mixed-endian" identifiers store it (e.g. Microsoft GUID, UEFI).

  4 bytes     2 bytes  2 bytes  8 bytes
  |-----------|--------|--------|------------------------|
  time_low    time_mid time_hi  clock_seq, node

The first three fields follow host byte order, the last 8 bytes are stored
as is. Use Layout to obtain canonical (big-endian) sequence of bytes.
*/
type GUID [16]byte

// Nil is the identifier with all bits set to zero
var Nil GUID

/*

InvalidSymbolError is returned by decoder when input contains a character
outside of Base32 alphabet.
*/
type InvalidSymbolError struct {
	// Offending character
	Symbol rune
	// Byte offset of the character in the input string
	Pos int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid base32 symbol %q at position %d", e.Symbol, e.Pos)
}
