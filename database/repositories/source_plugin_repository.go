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

package repositories

import (
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
)

type sourcePluginRepository struct {
	db shared.DB
	shared.Repository[int, models.SourcePlugin, shared.DB]
}

func NewSourcePluginRepository(db shared.DB) *sourcePluginRepository {
	return &sourcePluginRepository{
		db:         db,
		Repository: newGormRepository[int, models.SourcePlugin](db),
	}
}

func (repository *sourcePluginRepository) GetEnabled() ([]models.SourcePlugin, error) {
	var plugins []models.SourcePlugin
	err := repository.db.Find(&plugins, "enabled = ?", true).Error
	return plugins, err
}

func (repository *sourcePluginRepository) FindByPluginName(pluginName string) (models.SourcePlugin, error) {
	var plugin models.SourcePlugin
	err := repository.db.First(&plugin, "plugin_name = ?", pluginName).Error
	return plugin, err
}
