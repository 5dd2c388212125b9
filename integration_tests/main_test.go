// Copyright (C) 2025 the IntelliSIEM authors
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
package integration_tests

import (
	"os"
	"testing"

	"github.com/intellisiem/intellisiem-core/shared"
)

var db shared.DB

// a single container is shared by the whole package, tests use distinct
// record names to stay independent
func TestMain(m *testing.M) {
	var terminate func()
	db, terminate = initDatabaseContainer()

	code := m.Run()
	terminate()
	os.Exit(code)
}
