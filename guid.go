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

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

/*

ToBase32 encodes identifier to compact 26 symbols Base32 string. Identifier
bytes are normalized to canonical big-endian layout before encoding, so that
the same identifier gives the same string on any platform.
*/
func (layout *Layout) ToBase32(id GUID) string {
	u := layout.ToUUID(id)
	return Encode(u[:], false)
}

/*

FromBase32 decodes identifier from Base32 string. The operation is inverse
to ToBase32.
*/
func (layout *Layout) FromBase32(s string) (GUID, error) {
	b, err := Decode(s)
	if err != nil {
		return Nil, err
	}

	u, err := uuid.FromBytes(b)
	if err != nil {
		return Nil, fmt.Errorf("malformed identifier %q: %w", s, err)
	}

	return layout.FromUUID(u), nil
}

/*

ToBase32 encodes identifier using host native layout
*/
func ToBase32(id GUID) string { return Native.ToBase32(id) }

/*

FromBase32 decodes identifier using host native layout
*/
func FromBase32(s string) (GUID, error) { return Native.FromBase32(s) }

// ToUUID converts identifier to canonical one using host native layout
func ToUUID(id GUID) uuid.UUID { return Native.ToUUID(id) }

// FromUUID converts canonical identifier to host native layout
func FromUUID(u uuid.UUID) GUID { return Native.FromUUID(u) }

/*

New generates random (version 4) identifier in host native layout.
It panics if cryptographic random generator fails.
*/
func New() GUID {
	return Native.FromUUID(uuid.New())
}

/*

String encoding of identifier
*/
func (id GUID) String() string {
	return ToBase32(id)
}

/*

UnmarshalJSON decodes Base32 string to identifier
*/
func (id *GUID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*id, err = FromBase32(val)
	return
}

/*

MarshalJSON encodes identifier to Base32 JSON string
*/
func (id GUID) MarshalJSON() (bytes []byte, err error) {
	return json.Marshal(ToBase32(id))
}
