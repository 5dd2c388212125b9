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
	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
)

type assetThreatMappingRepository struct {
	db shared.DB
	shared.Repository[int, models.AssetThreatMapping, shared.DB]
}

func NewAssetThreatMappingRepository(db shared.DB) *assetThreatMappingRepository {
	return &assetThreatMappingRepository{
		db:         db,
		Repository: newGormRepository[int, models.AssetThreatMapping](db),
	}
}

func (repository *assetThreatMappingRepository) GetByAssetID(assetID uuid.UUID) ([]models.AssetThreatMapping, error) {
	var mappings []models.AssetThreatMapping
	err := repository.db.Find(&mappings, "asset_id = ?", assetID).Error
	return mappings, err
}

func (repository *assetThreatMappingRepository) GetByThreatID(threatID int) ([]models.AssetThreatMapping, error) {
	var mappings []models.AssetThreatMapping
	err := repository.db.Find(&mappings, "threat_id = ?", threatID).Error
	return mappings, err
}

// GetByRelevanceScoreGreaterThan returns mappings whose score is strictly
// greater than the threshold; a score equal to the threshold is excluded.
func (repository *assetThreatMappingRepository) GetByRelevanceScoreGreaterThan(threshold float64) ([]models.AssetThreatMapping, error) {
	var mappings []models.AssetThreatMapping
	err := repository.db.Where("relevance_score > ?", threshold).Find(&mappings).Error
	return mappings, err
}
