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

type affectedProductRepository struct {
	db shared.DB
	shared.Repository[int, models.AffectedProduct, shared.DB]
}

func NewAffectedProductRepository(db shared.DB) *affectedProductRepository {
	return &affectedProductRepository{
		db:         db,
		Repository: newGormRepository[int, models.AffectedProduct](db),
	}
}

func (repository *affectedProductRepository) GetByVulnerabilityID(vulnerabilityID int) ([]models.AffectedProduct, error) {
	var products []models.AffectedProduct
	err := repository.db.Find(&products, "vulnerability_id = ?", vulnerabilityID).Error
	return products, err
}

func (repository *affectedProductRepository) ExistsByVulnerabilityIDAndProductName(vulnerabilityID int, productName string) (bool, error) {
	var count int64
	err := repository.db.Model(&models.AffectedProduct{}).
		Where("vulnerability_id = ? AND product_name = ?", vulnerabilityID, productName).
		Count(&count).Error
	return count > 0, err
}

func (repository *affectedProductRepository) DeleteByVulnerabilityID(tx shared.DB, vulnerabilityID int) (int64, error) {
	res := repository.GetDB(tx).Where("vulnerability_id = ?", vulnerabilityID).Delete(&models.AffectedProduct{})
	return res.RowsAffected, res.Error
}
