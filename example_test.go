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

package guid32_test

import (
	"encoding/binary"
	"fmt"

	"github.com/fogfish/guid32"
)

func ExampleEncode() {
	fmt.Println(guid32.Encode([]byte("foobar"), true))
	fmt.Println(guid32.Encode([]byte("foobar"), false))
	// Output:
	// MZXW6YTBOI======
	// MZXW6YTBOI
}

func ExampleDecode() {
	b, err := guid32.Decode("mzxw6ytboi======")
	fmt.Println(string(b), err)

	_, err = guid32.Decode("01189")
	fmt.Println(err)
	// Output:
	// foobar <nil>
	// invalid base32 symbol '0' at position 0
}

func ExampleLayout_ToBase32() {
	// GUID 6ba7b810-9dad-11d1-80b4-00c04fd430c8 produced by Windows host
	id := guid32.GUID{
		0x10, 0xb8, 0xa7, 0x6b, 0xad, 0x9d, 0xd1, 0x11,
		0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8,
	}

	layout := guid32.NewLayout(guid32.WithByteOrder(binary.LittleEndian))
	fmt.Println(layout.ToUUID(id))
	fmt.Println(layout.ToBase32(id))
	// Output:
	// 6ba7b810-9dad-11d1-80b4-00c04fd430c8
	// NOT3QEE5VUI5DAFUADAE7VBQZA
}
