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
package integration_tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/database/repositories"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/stretchr/testify/assert"
)

func mustCreateAsset(t *testing.T, repo shared.AssetRepository, hostname string) models.Asset {
	t.Helper()
	asset, err := models.NewAsset(hostname, nil, nil, "server", nil, nil, models.CriticalityMedium, nil)
	assert.NoError(t, err)
	assert.NoError(t, repo.Create(nil, &asset))
	return asset
}

func TestAssetPersistence(t *testing.T) {
	assetRepository := repositories.NewAssetRepository(db)

	asset := mustCreateAsset(t, assetRepository, "asset-crud.example.com")
	assert.NotEqual(t, uuid.Nil, asset.ID)

	read, err := assetRepository.Read(asset.ID)
	assert.NoError(t, err)
	assert.Equal(t, "asset-crud.example.com", read.Hostname)

	found, err := assetRepository.FindByHostname("asset-crud.example.com")
	assert.NoError(t, err)
	assert.Equal(t, asset.ID, found.ID)

	exists, err := assetRepository.ExistsByHostname("asset-crud.example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = assetRepository.ExistsByHostname("never-created.example.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestAssetHostnameIsUnique(t *testing.T) {
	assetRepository := repositories.NewAssetRepository(db)

	mustCreateAsset(t, assetRepository, "asset-unique.example.com")

	duplicate, err := models.NewAsset("asset-unique.example.com", nil, nil, "server", nil, nil, models.CriticalityLow, nil)
	assert.NoError(t, err)
	assert.Error(t, assetRepository.Create(nil, &duplicate))
}

func TestAssetSourceNameIsUnique(t *testing.T) {
	assetSourceRepository := repositories.NewAssetSourceRepository(db)

	source, err := models.NewAssetSource("integration-dup", nil)
	assert.NoError(t, err)
	assert.NoError(t, assetSourceRepository.Create(nil, &source))

	duplicate, err := models.NewAssetSource("integration-dup", nil)
	assert.NoError(t, err)
	assert.Error(t, assetSourceRepository.Create(nil, &duplicate))
}

// a batch with a conflicting row keeps the remaining rows
func TestSaveBatchBestEffortDropsConflictingRows(t *testing.T) {
	assetRepository := repositories.NewAssetRepository(db)

	mustCreateAsset(t, assetRepository, "besteffort-existing.example.com")

	conflicting, err := models.NewAsset("besteffort-existing.example.com", nil, nil, "server", nil, nil, models.CriticalityLow, nil)
	assert.NoError(t, err)
	fresh, err := models.NewAsset("besteffort-fresh.example.com", nil, nil, "server", nil, nil, models.CriticalityLow, nil)
	assert.NoError(t, err)

	err = assetRepository.SaveBatchBestEffort(nil, []models.Asset{conflicting, fresh})
	assert.NoError(t, err)

	exists, err := assetRepository.ExistsByHostname("besteffort-fresh.example.com")
	assert.NoError(t, err)
	assert.True(t, exists)
}

// deleting an asset must take its ip addresses with it
func TestDeleteAssetCascadesToIPAddresses(t *testing.T) {
	assetRepository := repositories.NewAssetRepository(db)
	ipAddressRepository := repositories.NewIPAddressRepository(db)

	asset := mustCreateAsset(t, assetRepository, "asset-cascade.example.com")

	ipAddress, err := models.NewIPAddress(&asset, "192.168.77.1")
	assert.NoError(t, err)
	assert.NoError(t, ipAddressRepository.Create(nil, &ipAddress))

	assert.NoError(t, assetRepository.Delete(nil, asset.ID))

	addresses, err := ipAddressRepository.GetByAssetID(asset.ID)
	assert.NoError(t, err)
	assert.Empty(t, addresses)
}

// deleting a source must keep its assets and null out their reference
func TestDeleteSourceDetachesAssets(t *testing.T) {
	assetRepository := repositories.NewAssetRepository(db)
	assetSourceRepository := repositories.NewAssetSourceRepository(db)

	source, err := models.NewAssetSource("integration-src", nil)
	assert.NoError(t, err)
	assert.NoError(t, assetSourceRepository.Create(nil, &source))

	asset, err := models.NewAsset("asset-setnull.example.com", nil, nil, "server", nil, nil, models.CriticalityMedium, &source)
	assert.NoError(t, err)
	assert.NoError(t, assetRepository.Create(nil, &asset))

	assert.NoError(t, assetSourceRepository.Delete(nil, source.ID))

	survivor, err := assetRepository.Read(asset.ID)
	assert.NoError(t, err)
	assert.Nil(t, survivor.SourceID)
}

func TestFindSourcesByDescriptionIsCaseInsensitive(t *testing.T) {
	assetSourceRepository := repositories.NewAssetSourceRepository(db)

	source, err := models.NewAssetSource("integration-ilike", shared.Ptr("Network Scanner Import"))
	assert.NoError(t, err)
	assert.NoError(t, assetSourceRepository.Create(nil, &source))

	sources, err := assetSourceRepository.FindByDescriptionContaining("network scanner")
	assert.NoError(t, err)
	assert.Len(t, sources, 1)
	assert.Equal(t, "integration-ilike", sources[0].Name)
}

// a partial description update must not touch the other columns
func TestUpdateSourceDescriptionByID(t *testing.T) {
	assetSourceRepository := repositories.NewAssetSourceRepository(db)

	source, err := models.NewAssetSource("integration-patch", shared.Ptr("before"))
	assert.NoError(t, err)
	assert.NoError(t, assetSourceRepository.Create(nil, &source))

	rows, err := assetSourceRepository.UpdateDescriptionByID(source.ID, "after")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	patched, err := assetSourceRepository.Read(source.ID)
	assert.NoError(t, err)
	assert.Equal(t, "integration-patch", patched.Name)
	if assert.NotNil(t, patched.Description) {
		assert.Equal(t, "after", *patched.Description)
	}
}
