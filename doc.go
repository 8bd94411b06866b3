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

/*

Package guid32 implements RFC4648 Base32 encoding and uses it to represent
128-bit unique identifiers (UUID/GUID) as compact strings.

Key features

↣ Base32 codec with the RFC4648 alphabet (A–Z, 2–7), with and without '='
padding. The decoder is case-insensitive.

↣ Identifier encoding into 26 symbols string, which is shorter than
36 symbols of canonical hex notation and safe for case-insensitive storages,
file names and DNS labels.

↣ Normalization of "mixed-endian" identifiers. Some platforms (e.g. Windows
GUID, UEFI) keep first three fields of identifier in host byte order. The
library reorders bytes into canonical big-endian layout before encoding,
therefore the string is stable across platforms.

Base32 Codec

The codec treats bytes as contiguous bitstream, most significant bit first,
and splits it into 5-bit groups. Each group is mapped to the symbol

  0 … 25   A … Z
  26 … 31  2 … 7

The unpadded output has ⌈8𝒏/5⌉ symbols. The padded output is aligned to
8 symbols block with '='.

The decoder strips padding and emits ⌊5𝒎/8⌋ bytes for 𝒎 symbols. Remaining
bits are discarded without validation.

Identifier Layout

  4 bytes     2 bytes  2 bytes  8 bytes
  |-----------|--------|--------|------------------------|
   ⟨3 2 1 0⟩   ⟨5 4⟩    ⟨7 6⟩    ⟨8 … 15⟩

The diagram shows the position of canonical bytes within little-endian
(mixed) layout. Layout is configured from the host byte order by default,
see WithByteOrder to override it.
*/
package guid32
