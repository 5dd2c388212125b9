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
package shared

import (
	"gorm.io/gorm/clause"
)

type Tabler interface {
	TableName() string
}

// Repository is the generic persistence contract every entity repository
// embeds. Tx is the transaction handle; passing the zero value runs the
// operation on the default connection.
type Repository[ID any, T Tabler, Tx any] interface {
	All() ([]T, error)
	Create(tx Tx, t *T) error
	CreateBatch(tx Tx, ts []T) error
	Read(id ID) (T, error)
	Save(tx Tx, t *T) error
	SaveBatch(tx Tx, ts []T) error
	SaveBatchBestEffort(tx Tx, ts []T) error
	Upsert(t *[]*T, conflictingColumns []clause.Column, updateOnly []string) error
	Delete(tx Tx, id ID) error
	DeleteBatch(tx Tx, ts []T) error
	List(ids []ID) ([]T, error)
	Transaction(fn func(tx Tx) error) error
	Begin() Tx
	GetDB(tx Tx) Tx
}
