// Copyright (C) 2025 Phoenix Security Collective
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import "strings"

// Tabler is implemented by every gorm model which maps to a database table.
type Tabler interface {
	TableName() string
}

func Ptr[T any](t T) *T {
	return &t
}

func AddToWhitespaceSeparatedStringList(s string, item string) string {
	list := strings.Fields(s)
	if Contains(list, item) {
		return s
	}
	list = append(list, item)
	return strings.Join(list, " ")
}

func ContainsInWhitespaceSeparatedStringList(s string, item string) bool {
	return Contains(strings.Fields(s), item)
}
