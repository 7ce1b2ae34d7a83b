/*
Copyright 2026 Nscale.

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

package placeholder

import (
	"maps"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"
)

// MissingFields returns the required keys absent from object, sorted.
func MissingFields(object map[string]any, required ...string) []string {
	present := set.New[string](slices.Collect(maps.Keys(object))...)
	wanted := set.New[string](required...)

	var missing []string

	for field := range wanted.Difference(present).All() {
		missing = append(missing, field)
	}

	slices.Sort(missing)

	return missing
}
