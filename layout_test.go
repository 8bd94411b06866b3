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
	"testing"

	"github.com/fogfish/guid32"
	"github.com/fogfish/it/v2"
	"github.com/google/uuid"
)

func isLittleEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001
}

func TestWithNativeByteOrder(t *testing.T) {
	layout := guid32.NewLayout(guid32.WithNativeByteOrder())

	expect := be.ToBase32(dns)
	if isLittleEndian() {
		expect = le.ToBase32(dns)
	}

	it.Then(t).Should(
		it.Equal(layout.ToBase32(dns), expect),
		it.Equal(guid32.NewLayout().ToBase32(dns), expect),
		it.Equal(guid32.Native.ToBase32(dns), expect),
		it.Equal(guid32.ToBase32(dns), expect),
	)
}

func TestWithByteOrder(t *testing.T) {
	layout := guid32.NewLayout(
		guid32.WithByteOrder(binary.BigEndian),
		guid32.WithByteOrder(binary.LittleEndian),
	)

	it.Then(t).Should(
		it.Equal(layout.ToUUID(dns), uuid.NameSpaceDNS),
		it.Equal(be.ToUUID(dns), uuid.UUID(dns)),
	)
}

func TestMixedEndianReorder(t *testing.T) {
	var id guid32.GUID
	for i := range id {
		id[i] = byte(i)
	}

	u := le.ToUUID(id)

	it.Then(t).Should(
		it.Equal(u, uuid.UUID{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}),
		it.Equal(le.FromUUID(u), id),
		it.Equal(le.ToUUID(le.FromUUID(u)), u),
	)
}
