//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package guid32

// RFC4648 §6 alphabet
var alphabet = [32]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '2', '3', '4', '5', '6', '7',
}

const padding = '='

// symbol maps 5-bit value to alphabet
func symbol(x byte) byte {
	return alphabet[x&0x1f]
}

// value maps symbol back to 5-bit value, lower case letters are accepted.
func value(x rune) (byte, bool) {
	switch {
	case x >= 'A' && x <= 'Z':
		return byte(x - 'A'), true
	case x >= '2' && x <= '7':
		return byte(x-'2') + 26, true
	case x >= 'a' && x <= 'z':
		return byte(x - 'a'), true
	default:
		return 0, false
	}
}
