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
package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// AssetSource describes where an asset record came from, e.g. an Nmap scan
// or a CMDB import. Deleting a source does not delete its assets; their
// source reference is set to null by the store.
type AssetSource struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:text;uniqueIndex;not null" validate:"required"`
	Description *string `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m AssetSource) TableName() string {
	return "asset_source"
}

func NewAssetSource(name string, description *string) (AssetSource, error) {
	source := AssetSource{
		Name:        name,
		Description: description,
	}
	if err := source.Validate(); err != nil {
		return AssetSource{}, err
	}
	return source, nil
}

func (m *AssetSource) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validationError("asset source name cannot be blank")
	}
	m.Name = name
	return nil
}

func (m *AssetSource) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return validationError("asset source name cannot be blank")
	}
	return structError(validate.Struct(m))
}

func (m *AssetSource) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
