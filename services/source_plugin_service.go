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
package services

import (
	"log/slog"

	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type sourcePluginService struct {
	sourcePluginRepository shared.SourcePluginRepository
}

func NewSourcePluginService(sourcePluginRepository shared.SourcePluginRepository) *sourcePluginService {
	return &sourcePluginService{
		sourcePluginRepository: sourcePluginRepository,
	}
}

func (s *sourcePluginService) CreateSourcePlugin(plugin *models.SourcePlugin) error {
	if err := plugin.Validate(); err != nil {
		return err
	}
	if err := s.sourcePluginRepository.Create(nil, plugin); err != nil {
		slog.Error("could not create source plugin", "pluginName", plugin.PluginName, "err", err)
		return err
	}
	return nil
}

func (s *sourcePluginService) GetSourcePluginByID(id int) (models.SourcePlugin, error) {
	plugin, err := s.sourcePluginRepository.Read(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SourcePlugin{}, errors.Wrapf(shared.ErrNotFound, "source plugin %d", id)
	}
	return plugin, err
}

func (s *sourcePluginService) GetEnabledSourcePlugins() ([]models.SourcePlugin, error) {
	return s.sourcePluginRepository.GetEnabled()
}

func (s *sourcePluginService) UpdateSourcePlugin(id int, plugin models.SourcePlugin) (models.SourcePlugin, error) {
	existing, err := s.GetSourcePluginByID(id)
	if err != nil {
		return models.SourcePlugin{}, err
	}

	plugin.ID = existing.ID
	if err := s.sourcePluginRepository.Save(nil, &plugin); err != nil {
		slog.Error("could not update source plugin", "id", id, "err", err)
		return models.SourcePlugin{}, err
	}
	return plugin, nil
}

func (s *sourcePluginService) DeleteSourcePlugin(id int) error {
	return s.sourcePluginRepository.Delete(nil, id)
}
