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
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetThreatMapping correlates one asset with one threat intelligence
// record. The relevance score is computed outside this system and only
// stored and queried here; nothing in this codebase derives it.
type AssetThreatMapping struct {
	ID       int                 `json:"id" gorm:"primaryKey"`
	AssetID  uuid.UUID           `json:"assetId" gorm:"column:asset_id;type:uuid;not null" validate:"required"`
	Asset    *Asset              `json:"asset,omitempty" gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`
	ThreatID int                 `json:"threatId" gorm:"column:threat_id;not null" validate:"required"`
	Threat   *ThreatIntelligence `json:"threat,omitempty" gorm:"foreignKey:ThreatID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`

	RelevanceScore float64 `json:"relevanceScore" gorm:"column:relevance_score;type:decimal(5,2);not null"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m AssetThreatMapping) TableName() string {
	return "asset_threat_mapping"
}

func NewAssetThreatMapping(asset *Asset, threat *ThreatIntelligence, relevanceScore float64) (AssetThreatMapping, error) {
	if asset == nil {
		return AssetThreatMapping{}, validationError("asset cannot be nil when creating AssetThreatMapping")
	}
	if threat == nil {
		return AssetThreatMapping{}, validationError("threat cannot be nil when creating AssetThreatMapping")
	}
	mapping := AssetThreatMapping{
		AssetID:        asset.ID,
		Asset:          asset,
		ThreatID:       threat.ID,
		Threat:         threat,
		RelevanceScore: relevanceScore,
	}
	if err := mapping.Validate(); err != nil {
		return AssetThreatMapping{}, err
	}
	return mapping, nil
}

func (m *AssetThreatMapping) SetAsset(asset *Asset) error {
	if asset == nil {
		return validationError("asset cannot be nil on AssetThreatMapping")
	}
	m.Asset = asset
	m.AssetID = asset.ID
	return nil
}

func (m *AssetThreatMapping) SetThreat(threat *ThreatIntelligence) error {
	if threat == nil {
		return validationError("threat cannot be nil on AssetThreatMapping")
	}
	m.Threat = threat
	m.ThreatID = threat.ID
	return nil
}

func (m *AssetThreatMapping) SetRelevanceScore(relevanceScore float64) {
	m.RelevanceScore = relevanceScore
}

func (m *AssetThreatMapping) Validate() error {
	if m.AssetID == uuid.Nil {
		return validationError("asset is required on AssetThreatMapping")
	}
	if m.ThreatID == 0 {
		return validationError("threat is required on AssetThreatMapping")
	}
	return structError(validate.Struct(m))
}

func (m *AssetThreatMapping) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
