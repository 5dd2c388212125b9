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

// IPAddress is a single address bound to an asset. An asset may carry any
// number of addresses; deleting the asset removes them.
type IPAddress struct {
	ID      int       `json:"id" gorm:"primaryKey"`
	AssetID uuid.UUID `json:"assetId" gorm:"column:asset_id;type:uuid;not null" validate:"required"`
	Asset   *Asset    `json:"asset,omitempty" gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`
	IP      string    `json:"ip" gorm:"column:ip_address;type:varchar(39);not null" validate:"required"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m IPAddress) TableName() string {
	return "ip_address"
}

func NewIPAddress(asset *Asset, ip string) (IPAddress, error) {
	if asset == nil {
		return IPAddress{}, validationError("asset cannot be nil when creating IPAddress")
	}
	ipAddress := IPAddress{
		AssetID: asset.ID,
		Asset:   asset,
		IP:      ip,
	}
	if err := ipAddress.Validate(); err != nil {
		return IPAddress{}, err
	}
	return ipAddress, nil
}

func (m *IPAddress) SetAsset(asset *Asset) error {
	if asset == nil {
		return validationError("asset cannot be nil on IPAddress")
	}
	m.Asset = asset
	m.AssetID = asset.ID
	return nil
}

func (m *IPAddress) SetIP(ip string) error {
	if strings.TrimSpace(ip) == "" {
		return validationError("ip cannot be blank")
	}
	m.IP = ip
	return nil
}

func (m *IPAddress) Validate() error {
	if m.AssetID == uuid.Nil {
		return validationError("asset is required on IPAddress")
	}
	if strings.TrimSpace(m.IP) == "" {
		return validationError("ip cannot be blank")
	}
	return structError(validate.Struct(m))
}

func (m *IPAddress) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
