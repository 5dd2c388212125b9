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

package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/services"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/intellisiem/intellisiem-core/testutils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func setupAssetService() (shared.AssetService, *testutils.AssetRepositoryMock, *testutils.IPAddressRepositoryMock) {
	assetRepository := testutils.NewAssetRepositoryMock()
	ipAddressRepository := testutils.NewIPAddressRepositoryMock()
	return services.NewAssetService(assetRepository, ipAddressRepository), assetRepository, ipAddressRepository
}

func TestCreateAsset(t *testing.T) {
	sut, assetRepository, _ := setupAssetService()

	asset := models.Asset{Hostname: "host1", AssetType: "server", Criticality: models.CriticalityHigh}

	err := sut.CreateAsset(&asset)

	assert.NoError(t, err)
	assert.Len(t, assetRepository.Items, 1)
}

// an invalid payload must never reach the store
func TestCreateAssetRejectsInvalidPayload(t *testing.T) {
	sut, assetRepository, _ := setupAssetService()

	asset := models.Asset{Hostname: " ", AssetType: "server", Criticality: models.CriticalityHigh}

	err := sut.CreateAsset(&asset)

	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Empty(t, assetRepository.Items)
}

func TestGetAssetByIDTranslatesNotFound(t *testing.T) {
	sut, _, _ := setupAssetService()

	_, err := sut.GetAssetByID(uuid.New())

	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGetAssetByHostname(t *testing.T) {
	sut, assetRepository, _ := setupAssetService()
	assetRepository.Items = append(assetRepository.Items, models.Asset{
		ID: uuid.New(), Hostname: "host1", AssetType: "server", Criticality: models.CriticalityHigh,
	})

	asset, err := sut.GetAssetByHostname("host1")

	assert.NoError(t, err)
	assert.Equal(t, "host1", asset.Hostname)

	_, err = sut.GetAssetByHostname("unknown")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

// the payload's own id must be discarded in favor of the addressed record
func TestUpdateAssetKeepsIdentity(t *testing.T) {
	sut, assetRepository, _ := setupAssetService()
	existingID := uuid.New()
	assetRepository.Items = append(assetRepository.Items, models.Asset{
		ID: existingID, Hostname: "host1", AssetType: "server", Criticality: models.CriticalityHigh,
	})

	payload := models.Asset{
		ID: uuid.New(), Hostname: "host1-renamed", AssetType: "server", Criticality: models.CriticalityLow,
	}

	updated, err := sut.UpdateAsset(existingID, payload)

	assert.NoError(t, err)
	assert.Equal(t, existingID, updated.ID)
	assert.Len(t, assetRepository.Items, 1)
	assert.Equal(t, "host1-renamed", assetRepository.Items[0].Hostname)
}

func TestUpdateAssetFailsForUnknownID(t *testing.T) {
	sut, _, _ := setupAssetService()

	_, err := sut.UpdateAsset(uuid.New(), models.Asset{Hostname: "host1", AssetType: "server", Criticality: models.CriticalityHigh})

	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGetIPAddressesReturnsOnlyOwnAddresses(t *testing.T) {
	sut, _, ipAddressRepository := setupAssetService()
	assetID := uuid.New()
	otherID := uuid.New()
	ipAddressRepository.Items = append(ipAddressRepository.Items,
		models.IPAddress{ID: 1, AssetID: assetID, IP: "192.168.1.10"},
		models.IPAddress{ID: 2, AssetID: otherID, IP: "10.0.0.1"},
	)

	addresses, err := sut.GetIPAddresses(assetID)

	assert.NoError(t, err)
	assert.Len(t, addresses, 1)
	assert.Equal(t, "192.168.1.10", addresses[0].IP)
}

func TestAddIPAddressRejectsInvalidPayload(t *testing.T) {
	sut, _, ipAddressRepository := setupAssetService()

	err := sut.AddIPAddress(&models.IPAddress{AssetID: uuid.Nil, IP: "192.168.1.10"})

	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Empty(t, ipAddressRepository.Items)
}
