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

type assetSourceRepository struct {
	db shared.DB
	shared.Repository[int, models.AssetSource, shared.DB]
}

func NewAssetSourceRepository(db shared.DB) *assetSourceRepository {
	return &assetSourceRepository{
		db:         db,
		Repository: newGormRepository[int, models.AssetSource](db),
	}
}

func (repository *assetSourceRepository) FindByName(name string) (models.AssetSource, error) {
	var source models.AssetSource
	err := repository.db.First(&source, "name = ?", name).Error
	return source, err
}

// FindByDescriptionContaining matches the description case-insensitively
// against the given fragment.
func (repository *assetSourceRepository) FindByDescriptionContaining(fragment string) ([]models.AssetSource, error) {
	var sources []models.AssetSource
	err := repository.db.Where("description ILIKE ?", "%"+fragment+"%").Find(&sources).Error
	return sources, err
}

func (repository *assetSourceRepository) CountAll() (int64, error) {
	var count int64
	err := repository.db.Model(&models.AssetSource{}).Count(&count).Error
	return count, err
}

func (repository *assetSourceRepository) UpdateDescriptionByID(id int, description string) (int64, error) {
	// UpdateColumn skips the model hooks on purpose: a partial column
	// update must not trip full-row validation.
	res := repository.db.Model(&models.AssetSource{}).Where("id = ?", id).UpdateColumn("description", description)
	return res.RowsAffected, res.Error
}

func (repository *assetSourceRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := repository.db.Model(&models.AssetSource{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (repository *assetSourceRepository) DeleteByName(tx shared.DB, name string) (int64, error) {
	res := repository.GetDB(tx).Where("name = ?", name).Delete(&models.AssetSource{})
	return res.RowsAffected, res.Error
}
