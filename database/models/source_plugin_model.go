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

// SourcePlugin defines an external data source and whether it is currently
// enabled for collection.
type SourcePlugin struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	PluginName  string  `json:"pluginName" gorm:"column:plugin_name;type:varchar(100);not null" validate:"required"`
	Enabled     bool    `json:"enabled" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m SourcePlugin) TableName() string {
	return "source_plugin"
}

// NewSourcePlugin creates a plugin record. A nil enabled flag defaults to
// true.
func NewSourcePlugin(pluginName string, enabled *bool, description *string) (SourcePlugin, error) {
	plugin := SourcePlugin{
		PluginName:  pluginName,
		Enabled:     true,
		Description: description,
	}
	if enabled != nil {
		plugin.Enabled = *enabled
	}
	if err := plugin.Validate(); err != nil {
		return SourcePlugin{}, err
	}
	return plugin, nil
}

func (m *SourcePlugin) SetPluginName(pluginName string) error {
	if strings.TrimSpace(pluginName) == "" {
		return validationError("plugin name cannot be blank")
	}
	m.PluginName = pluginName
	return nil
}

func (m *SourcePlugin) Validate() error {
	if strings.TrimSpace(m.PluginName) == "" {
		return validationError("plugin name cannot be blank")
	}
	return structError(validate.Struct(m))
}

func (m *SourcePlugin) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
