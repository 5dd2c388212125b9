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
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Criticality string

const (
	CriticalityHigh   Criticality = "high"
	CriticalityMedium Criticality = "medium"
	CriticalityLow    Criticality = "low"
)

// ParseCriticality maps a string onto a Criticality level. Matching is
// case-insensitive; unknown values are rejected.
func ParseCriticality(value string) (Criticality, error) {
	switch Criticality(strings.ToLower(value)) {
	case CriticalityHigh:
		return CriticalityHigh, nil
	case CriticalityMedium:
		return CriticalityMedium, nil
	case CriticalityLow:
		return CriticalityLow, nil
	}
	return "", validationError("invalid criticality value: %s", value)
}

func (c Criticality) Valid() bool {
	switch c {
	case CriticalityHigh, CriticalityMedium, CriticalityLow:
		return true
	}
	return false
}

// Asset is a monitored host or device record.
type Asset struct {
	ID          uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Hostname    string      `json:"hostname" gorm:"type:text;uniqueIndex;not null" validate:"required"`
	FQDN        *string     `json:"fqdn" gorm:"type:text"`
	MACAddress  *string     `json:"macAddress" gorm:"column:mac_address;type:text"`
	AssetType   string      `json:"assetType" gorm:"column:asset_type;type:text;not null" validate:"required"`
	OSName      *string     `json:"osName" gorm:"column:os_name;type:text"`
	OSVersion   *string     `json:"osVersion" gorm:"column:os_version;type:text"`
	Criticality Criticality `json:"criticality" gorm:"type:text;not null" validate:"required,oneof=high medium low"`

	SourceID *int         `json:"sourceId" gorm:"column:source_id"`
	Source   *AssetSource `json:"source,omitempty" gorm:"foreignKey:SourceID;references:ID;constraint:OnDelete:SET NULL;" validate:"-"`

	IPAddresses    []IPAddress          `json:"ipAddresses,omitempty" gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`
	ThreatMappings []AssetThreatMapping `json:"threatMappings,omitempty" gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Asset) TableName() string {
	return "asset"
}

func NewAsset(hostname string, fqdn *string, macAddress *string, assetType string, osName *string, osVersion *string, criticality Criticality, source *AssetSource) (Asset, error) {
	asset := Asset{
		Hostname:    hostname,
		FQDN:        fqdn,
		MACAddress:  macAddress,
		AssetType:   assetType,
		OSName:      osName,
		OSVersion:   osVersion,
		Criticality: criticality,
	}
	if source != nil {
		asset.Source = source
		if source.ID != 0 {
			asset.SourceID = &source.ID
		}
	}
	if err := asset.Validate(); err != nil {
		return Asset{}, err
	}
	return asset, nil
}

func (m *Asset) SetHostname(hostname string) error {
	if strings.TrimSpace(hostname) == "" {
		return validationError("hostname cannot be blank")
	}
	m.Hostname = hostname
	return nil
}

func (m *Asset) SetAssetType(assetType string) error {
	if strings.TrimSpace(assetType) == "" {
		return validationError("asset type cannot be blank")
	}
	m.AssetType = assetType
	return nil
}

func (m *Asset) SetCriticality(criticality Criticality) error {
	if !criticality.Valid() {
		return validationError("invalid criticality value: %s", criticality)
	}
	m.Criticality = criticality
	return nil
}

// SetSource may be called with nil to detach the asset from its source.
func (m *Asset) SetSource(source *AssetSource) {
	m.Source = source
	if source == nil {
		m.SourceID = nil
		return
	}
	if source.ID != 0 {
		m.SourceID = &source.ID
	}
}

func (m *Asset) Validate() error {
	if strings.TrimSpace(m.Hostname) == "" {
		return validationError("hostname cannot be blank")
	}
	if strings.TrimSpace(m.AssetType) == "" {
		return validationError("asset type cannot be blank")
	}
	if !m.Criticality.Valid() {
		return validationError("invalid criticality value: %s", m.Criticality)
	}
	return structError(validate.Struct(m))
}

func (m *Asset) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
