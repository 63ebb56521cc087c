// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidDirection is returned for any direction other than 1 or 2.
var ErrInvalidDirection = errors.Base("invalid direction")

// 🔀 Direction selects which side of a dictionary pair is searched for
type Direction int

const (
	// KeysToValues replaces every key with its value
	KeysToValues Direction = 1
	// ValuesToKeys replaces every value with its key
	ValuesToKeys Direction = 2
)

// ParseDirection converts the numeric selector used on the command line.
func ParseDirection(n int) (Direction, error) {
	d := Direction(n)
	if !d.Valid() {
		return 0, errors.Errorf("%w: %d (use 1 for keys-to-values, 2 for values-to-keys)", ErrInvalidDirection, n)
	}
	return d, nil
}

func (d Direction) Valid() bool {
	return d == KeysToValues || d == ValuesToKeys
}

func (d Direction) String() string {
	switch d {
	case KeysToValues:
		return "keys-to-values"
	case ValuesToKeys:
		return "values-to-keys"
	default:
		return "unknown"
	}
}
