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

type ipAddressRepository struct {
	db shared.DB
	shared.Repository[int, models.IPAddress, shared.DB]
}

func NewIPAddressRepository(db shared.DB) *ipAddressRepository {
	return &ipAddressRepository{
		db:         db,
		Repository: newGormRepository[int, models.IPAddress](db),
	}
}

func (repository *ipAddressRepository) GetByAssetID(assetID uuid.UUID) ([]models.IPAddress, error) {
	var ipAddresses []models.IPAddress
	err := repository.db.Find(&ipAddresses, "asset_id = ?", assetID).Error
	return ipAddresses, err
}

func (repository *ipAddressRepository) FindByIP(ip string) (models.IPAddress, error) {
	var ipAddress models.IPAddress
	err := repository.db.First(&ipAddress, "ip_address = ?", ip).Error
	return ipAddress, err
}
