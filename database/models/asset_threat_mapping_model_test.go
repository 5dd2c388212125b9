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

package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func persistedAsset() models.Asset {
	return models.Asset{
		ID:          uuid.New(),
		Hostname:    "host1",
		AssetType:   "server",
		Criticality: models.CriticalityHigh,
	}
}

func persistedThreat() models.ThreatIntelligence {
	return models.ThreatIntelligence{
		ID:         42,
		ThreatType: "cve",
		Value:      "CVE-2024-1",
		Severity:   models.SeverityHigh,
	}
}

func TestNewAssetThreatMapping(t *testing.T) {
	asset := persistedAsset()
	threat := persistedThreat()

	mapping, err := models.NewAssetThreatMapping(&asset, &threat, 7.25)

	assert.NoError(t, err)
	assert.Equal(t, asset.ID, mapping.AssetID)
	assert.Equal(t, threat.ID, mapping.ThreatID)
	assert.Equal(t, 7.25, mapping.RelevanceScore)
}

func TestNewAssetThreatMappingRejectsNilAsset(t *testing.T) {
	threat := persistedThreat()

	_, err := models.NewAssetThreatMapping(nil, &threat, 5)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewAssetThreatMappingRejectsNilThreat(t *testing.T) {
	asset := persistedAsset()

	_, err := models.NewAssetThreatMapping(&asset, nil, 5)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

// both sides must already carry a persisted identity
func TestNewAssetThreatMappingRejectsUnpersistedThreat(t *testing.T) {
	asset := persistedAsset()
	threat := persistedThreat()
	threat.ID = 0

	_, err := models.NewAssetThreatMapping(&asset, &threat, 5)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewIPAddress(t *testing.T) {
	asset := persistedAsset()

	ipAddress, err := models.NewIPAddress(&asset, "192.168.1.10")

	assert.NoError(t, err)
	assert.Equal(t, asset.ID, ipAddress.AssetID)
	assert.Equal(t, "192.168.1.10", ipAddress.IP)
}

func TestNewIPAddressRejectsNilAsset(t *testing.T) {
	_, err := models.NewIPAddress(nil, "192.168.1.10")

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewIPAddressRejectsBlankIP(t *testing.T) {
	asset := persistedAsset()

	_, err := models.NewIPAddress(&asset, " ")

	assert.True(t, errors.Is(err, models.ErrValidation))
}
