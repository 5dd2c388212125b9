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
package testutils

import (
	"github.com/intellisiem/intellisiem-core/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MockRepository is an in-memory stand-in for the generic gorm repository.
// Read behaves like gorm and returns gorm.ErrRecordNotFound for unknown ids.
type MockRepository[ID comparable, T shared.Tabler] struct {
	Items []T
	idOf  func(T) ID
}

func NewMockRepository[ID comparable, T shared.Tabler](idOf func(T) ID) *MockRepository[ID, T] {
	return &MockRepository[ID, T]{
		Items: make([]T, 0),
		idOf:  idOf,
	}
}

func (m *MockRepository[ID, T]) All() ([]T, error) {
	return append([]T(nil), m.Items...), nil
}

func (m *MockRepository[ID, T]) Create(tx shared.DB, t *T) error {
	m.Items = append(m.Items, *t)
	return nil
}

func (m *MockRepository[ID, T]) CreateBatch(tx shared.DB, ts []T) error {
	m.Items = append(m.Items, ts...)
	return nil
}

func (m *MockRepository[ID, T]) Read(id ID) (T, error) {
	for _, item := range m.Items {
		if m.idOf(item) == id {
			return item, nil
		}
	}
	var t T
	return t, gorm.ErrRecordNotFound
}

func (m *MockRepository[ID, T]) Save(tx shared.DB, t *T) error {
	for i, item := range m.Items {
		if m.idOf(item) == m.idOf(*t) {
			m.Items[i] = *t
			return nil
		}
	}
	m.Items = append(m.Items, *t)
	return nil
}

func (m *MockRepository[ID, T]) SaveBatch(tx shared.DB, ts []T) error {
	for i := range ts {
		if err := m.Save(tx, &ts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockRepository[ID, T]) SaveBatchBestEffort(tx shared.DB, ts []T) error {
	return m.SaveBatch(tx, ts)
}

func (m *MockRepository[ID, T]) Upsert(ts *[]*T, conflictingColumns []clause.Column, updateOnly []string) error {
	for _, t := range *ts {
		if err := m.Save(nil, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockRepository[ID, T]) Delete(tx shared.DB, id ID) error {
	for i, item := range m.Items {
		if m.idOf(item) == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockRepository[ID, T]) DeleteBatch(tx shared.DB, ts []T) error {
	for _, t := range ts {
		if err := m.Delete(tx, m.idOf(t)); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockRepository[ID, T]) List(ids []ID) ([]T, error) {
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		for _, item := range m.Items {
			if m.idOf(item) == id {
				result = append(result, item)
			}
		}
	}
	return result, nil
}

func (m *MockRepository[ID, T]) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (m *MockRepository[ID, T]) Begin() shared.DB {
	return nil
}

func (m *MockRepository[ID, T]) GetDB(tx shared.DB) shared.DB {
	return tx
}
