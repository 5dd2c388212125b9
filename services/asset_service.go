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

type assetService struct {
	assetRepository     shared.AssetRepository
	ipAddressRepository shared.IPAddressRepository
}

func NewAssetService(assetRepository shared.AssetRepository, ipAddressRepository shared.IPAddressRepository) *assetService {
	return &assetService{
		assetRepository:     assetRepository,
		ipAddressRepository: ipAddressRepository,
	}
}

func (s *assetService) CreateAsset(asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	if err := s.assetRepository.Create(nil, asset); err != nil {
		slog.Error("could not create asset", "hostname", asset.Hostname, "err", err)
		return err
	}
	return nil
}

func (s *assetService) GetAssetByID(id uuid.UUID) (models.Asset, error) {
	asset, err := s.assetRepository.Read(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Asset{}, errors.Wrapf(shared.ErrNotFound, "asset %s", id)
	}
	return asset, err
}

func (s *assetService) GetAssetByHostname(hostname string) (models.Asset, error) {
	asset, err := s.assetRepository.FindByHostname(hostname)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Asset{}, errors.Wrapf(shared.ErrNotFound, "asset %s", hostname)
	}
	return asset, err
}

func (s *assetService) ListAssets() ([]models.Asset, error) {
	return s.assetRepository.All()
}

// UpdateAsset re-keys the incoming payload to the existing identity before
// saving, so a caller cannot move a record onto another primary key.
func (s *assetService) UpdateAsset(id uuid.UUID, asset models.Asset) (models.Asset, error) {
	existing, err := s.GetAssetByID(id)
	if err != nil {
		return models.Asset{}, err
	}

	asset.ID = existing.ID
	if err := s.assetRepository.Save(nil, &asset); err != nil {
		slog.Error("could not update asset", "id", id, "err", err)
		return models.Asset{}, err
	}
	return asset, nil
}

func (s *assetService) DeleteAsset(id uuid.UUID) error {
	return s.assetRepository.Delete(nil, id)
}

func (s *assetService) GetIPAddresses(assetID uuid.UUID) ([]models.IPAddress, error) {
	return s.ipAddressRepository.GetByAssetID(assetID)
}

func (s *assetService) AddIPAddress(ipAddress *models.IPAddress) error {
	if err := ipAddress.Validate(); err != nil {
		return err
	}
	return s.ipAddressRepository.Create(nil, ipAddress)
}
