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

type assetSourceService struct {
	assetSourceRepository shared.AssetSourceRepository
}

func NewAssetSourceService(assetSourceRepository shared.AssetSourceRepository) *assetSourceService {
	return &assetSourceService{
		assetSourceRepository: assetSourceRepository,
	}
}

func (s *assetSourceService) CreateAssetSource(source *models.AssetSource) error {
	if err := source.Validate(); err != nil {
		return err
	}
	if err := s.assetSourceRepository.Create(nil, source); err != nil {
		slog.Error("could not create asset source", "name", source.Name, "err", err)
		return err
	}
	return nil
}

func (s *assetSourceService) GetAssetSourceByID(id int) (models.AssetSource, error) {
	source, err := s.assetSourceRepository.Read(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AssetSource{}, errors.Wrapf(shared.ErrNotFound, "asset source %d", id)
	}
	return source, err
}

func (s *assetSourceService) GetAssetSourceByName(name string) (models.AssetSource, error) {
	source, err := s.assetSourceRepository.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AssetSource{}, errors.Wrapf(shared.ErrNotFound, "asset source %s", name)
	}
	return source, err
}

func (s *assetSourceService) SearchByDescription(fragment string) ([]models.AssetSource, error) {
	return s.assetSourceRepository.FindByDescriptionContaining(fragment)
}

func (s *assetSourceService) ListAssetSources() ([]models.AssetSource, error) {
	return s.assetSourceRepository.All()
}

func (s *assetSourceService) UpdateAssetSource(id int, source models.AssetSource) (models.AssetSource, error) {
	existing, err := s.GetAssetSourceByID(id)
	if err != nil {
		return models.AssetSource{}, err
	}

	source.ID = existing.ID
	if err := s.assetSourceRepository.Save(nil, &source); err != nil {
		slog.Error("could not update asset source", "id", id, "err", err)
		return models.AssetSource{}, err
	}
	return source, nil
}

func (s *assetSourceService) DeleteAssetSource(id int) error {
	return s.assetSourceRepository.Delete(nil, id)
}
