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

type assetRepository struct {
	db shared.DB
	shared.Repository[uuid.UUID, models.Asset, shared.DB]
}

func NewAssetRepository(db shared.DB) *assetRepository {
	return &assetRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Asset](db),
	}
}

func (repository *assetRepository) FindByHostname(hostname string) (models.Asset, error) {
	var asset models.Asset
	err := repository.db.First(&asset, "hostname = ?", hostname).Error
	return asset, err
}

func (repository *assetRepository) GetBySourceID(sourceID int) ([]models.Asset, error) {
	var assets []models.Asset
	err := repository.db.Find(&assets, "source_id = ?", sourceID).Error
	return assets, err
}

func (repository *assetRepository) ExistsByHostname(hostname string) (bool, error) {
	var count int64
	err := repository.db.Model(&models.Asset{}).Where("hostname = ?", hostname).Count(&count).Error
	return count > 0, err
}
