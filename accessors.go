// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package devcfg

import "strconv"

// GetString returns the value stored for key in the named section, or def
// if the section or key is absent.
func (c *Store) GetString(section, key, def string) string {
	if v, ok := c.Get(section, key); ok {
		return v
	}
	return def
}

// GetBool returns the boolean stored for key in the named section. Only the
// exact strings "true" and "false" are recognized; any other value, or an
// absent key, yields def.
func (c *Store) GetBool(section, key string, def bool) bool {
	v, ok := c.Get(section, key)
	if !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

// GetInt returns the integer stored for key in the named section. The
// stored value must be a decimal integer in its entirety; a partial or
// failed conversion yields def.
func (c *Store) GetInt(section, key string, def int) int {
	v, ok := c.Get(section, key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// GetUint16 returns the 16-bit unsigned integer stored for key in the named
// section. A value outside [0, 65535], or not wholly a decimal integer,
// yields def rather than being truncated.
func (c *Store) GetUint16(section, key string, def uint16) uint16 {
	v, ok := c.Get(section, key)
	if !ok {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return def
	}
	return uint16(u)
}

// GetUint64 returns the 64-bit unsigned integer stored for key in the named
// section, or def if the value is not wholly a decimal integer in the
// uint64 range.
func (c *Store) GetUint64(section, key string, def uint64) uint64 {
	v, ok := c.Get(section, key)
	if !ok {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def
	}
	return u
}

// SetString stores value for key in the named section. It is equivalent to
// [Store.Set].
func (c *Store) SetString(section, key, value string) {
	c.Set(section, key, value)
}

// SetBool stores "true" or "false" for key in the named section.
func (c *Store) SetBool(section, key string, value bool) {
	c.Set(section, key, strconv.FormatBool(value))
}

// SetInt stores the decimal form of value for key in the named section.
func (c *Store) SetInt(section, key string, value int) {
	c.Set(section, key, strconv.Itoa(value))
}

// SetUint16 stores the decimal form of value for key in the named section.
func (c *Store) SetUint16(section, key string, value uint16) {
	c.Set(section, key, strconv.FormatUint(uint64(value), 10))
}

// SetUint64 stores the decimal form of value for key in the named section.
func (c *Store) SetUint64(section, key string, value uint64) {
	c.Set(section, key, strconv.FormatUint(value, 10))
}
