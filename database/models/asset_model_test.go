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

	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewAsset(t *testing.T) {
	asset, err := models.NewAsset("host1.example.com", shared.Ptr("host1.internal.example.com"), nil, "server", shared.Ptr("Ubuntu"), shared.Ptr("24.04"), models.CriticalityHigh, nil)

	assert.NoError(t, err)
	assert.Equal(t, "host1.example.com", asset.Hostname)
	assert.Equal(t, models.CriticalityHigh, asset.Criticality)
	assert.Nil(t, asset.SourceID)
}

func TestNewAssetRejectsBlankHostname(t *testing.T) {
	_, err := models.NewAsset("   ", nil, nil, "server", nil, nil, models.CriticalityLow, nil)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewAssetRejectsBlankAssetType(t *testing.T) {
	_, err := models.NewAsset("host1", nil, nil, "", nil, nil, models.CriticalityLow, nil)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewAssetRejectsUnknownCriticality(t *testing.T) {
	_, err := models.NewAsset("host1", nil, nil, "server", nil, nil, models.Criticality("severe"), nil)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewAssetLinksPersistedSource(t *testing.T) {
	source := models.AssetSource{ID: 7, Name: "Nmap Discovery"}

	asset, err := models.NewAsset("host1", nil, nil, "server", nil, nil, models.CriticalityMedium, &source)

	assert.NoError(t, err)
	if assert.NotNil(t, asset.SourceID) {
		assert.Equal(t, 7, *asset.SourceID)
	}
}

// detaching must clear the foreign key as well, otherwise the stale id
// would survive the next save
func TestSetSourceNilDetaches(t *testing.T) {
	source := models.AssetSource{ID: 7, Name: "Nmap Discovery"}
	asset, err := models.NewAsset("host1", nil, nil, "server", nil, nil, models.CriticalityMedium, &source)
	assert.NoError(t, err)

	asset.SetSource(nil)

	assert.Nil(t, asset.Source)
	assert.Nil(t, asset.SourceID)
}

func TestSetHostnameRejectsBlank(t *testing.T) {
	asset, err := models.NewAsset("host1", nil, nil, "server", nil, nil, models.CriticalityMedium, nil)
	assert.NoError(t, err)

	err = asset.SetHostname(" ")

	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Equal(t, "host1", asset.Hostname)
}

func TestParseCriticalityIsCaseInsensitive(t *testing.T) {
	criticality, err := models.ParseCriticality("HIGH")

	assert.NoError(t, err)
	assert.Equal(t, models.CriticalityHigh, criticality)
}

func TestParseCriticalityRejectsUnknownValue(t *testing.T) {
	_, err := models.ParseCriticality("urgent")

	assert.True(t, errors.Is(err, models.ErrValidation))
}
