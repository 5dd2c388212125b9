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

	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type assetThreatMappingService struct {
	mappingRepository shared.AssetThreatMappingRepository
}

func NewAssetThreatMappingService(mappingRepository shared.AssetThreatMappingRepository) *assetThreatMappingService {
	return &assetThreatMappingService{
		mappingRepository: mappingRepository,
	}
}

func (s *assetThreatMappingService) CreateMapping(mapping *models.AssetThreatMapping) error {
	if err := mapping.Validate(); err != nil {
		return err
	}
	if err := s.mappingRepository.Create(nil, mapping); err != nil {
		slog.Error("could not create asset threat mapping", "assetId", mapping.AssetID, "threatId", mapping.ThreatID, "err", err)
		return err
	}
	return nil
}

func (s *assetThreatMappingService) GetMappingByID(id int) (models.AssetThreatMapping, error) {
	mapping, err := s.mappingRepository.Read(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AssetThreatMapping{}, errors.Wrapf(shared.ErrNotFound, "asset threat mapping %d", id)
	}
	return mapping, err
}

func (s *assetThreatMappingService) GetMappingsByAssetID(assetID uuid.UUID) ([]models.AssetThreatMapping, error) {
	return s.mappingRepository.GetByAssetID(assetID)
}

func (s *assetThreatMappingService) GetMappingsByThreatID(threatID int) ([]models.AssetThreatMapping, error) {
	return s.mappingRepository.GetByThreatID(threatID)
}

func (s *assetThreatMappingService) GetMappingsAboveScore(threshold float64) ([]models.AssetThreatMapping, error) {
	return s.mappingRepository.GetByRelevanceScoreGreaterThan(threshold)
}

func (s *assetThreatMappingService) DeleteMapping(id int) error {
	return s.mappingRepository.Delete(nil, id)
}
