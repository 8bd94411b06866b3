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

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Layout defines how the identifier fields are stored in memory.
type Layout struct {
	// time_low, time_mid and time_hi are little-endian
	mixed bool
}

// Native is global default layout, it follows byte order of the host.
//
// If the application exchanges identifiers with a platform of other byte
// order, it declares own layout using WithByteOrder.
var Native = NewLayout()

// NewLayout creates instance of identifier layout
func NewLayout(opts ...Config) *Layout {
	layout := &Layout{}
	defopt := []Config{WithNativeByteOrder()}

	for _, opt := range append(defopt, opts...) {
		opt(layout)
	}
	return layout
}

// Config option of identifier layout.
type Config func(*Layout)

// WithNativeByteOrder configures layout using byte order of the host.
func WithNativeByteOrder() Config {
	return WithByteOrder(binary.NativeEndian)
}

// WithByteOrder explicitly configures byte order of identifier fields,
// e.g. binary.LittleEndian for GUIDs produced by Windows hosts.
func WithByteOrder(order binary.ByteOrder) Config {
	return func(layout *Layout) {
		layout.mixed = order.Uint16([]byte{0x01, 0x00}) == 0x0001
	}
}

// position of canonical bytes within mixed-endian identifier, the permutation
// is its own inverse.
var mixedEndian = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// ToUUID reorders identifier bytes into canonical big-endian layout
func (layout *Layout) ToUUID(id GUID) (u uuid.UUID) {
	if !layout.mixed {
		return uuid.UUID(id)
	}

	for to, from := range mixedEndian {
		u[to] = id[from]
	}
	return
}

// FromUUID reorders canonical identifier bytes into the layout
func (layout *Layout) FromUUID(u uuid.UUID) (id GUID) {
	if !layout.mixed {
		return GUID(u)
	}

	for to, from := range mixedEndian {
		id[to] = u[from]
	}
	return
}
