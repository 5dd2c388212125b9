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

	"gorm.io/gorm"
)

// AffectedProduct names a product affected by a vulnerability. Rows are
// exclusively owned by their vulnerability and removed with it.
type AffectedProduct struct {
	ID              int            `json:"id" gorm:"primaryKey"`
	VulnerabilityID int            `json:"vulnerabilityId" gorm:"column:vulnerability_id;not null" validate:"required"`
	Vulnerability   *Vulnerability `json:"vulnerability,omitempty" gorm:"foreignKey:VulnerabilityID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`
	ProductName     string         `json:"productName" gorm:"column:product_name;type:text;not null" validate:"required"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m AffectedProduct) TableName() string {
	return "affected_product"
}

func NewAffectedProduct(vulnerability *Vulnerability, productName string) (AffectedProduct, error) {
	if vulnerability == nil {
		return AffectedProduct{}, validationError("vulnerability cannot be nil when creating AffectedProduct")
	}
	product := AffectedProduct{
		VulnerabilityID: vulnerability.ID,
		Vulnerability:   vulnerability,
		ProductName:     productName,
	}
	if err := product.Validate(); err != nil {
		return AffectedProduct{}, err
	}
	return product, nil
}

func (m *AffectedProduct) SetVulnerability(vulnerability *Vulnerability) error {
	if vulnerability == nil {
		return validationError("vulnerability cannot be nil on AffectedProduct")
	}
	m.Vulnerability = vulnerability
	m.VulnerabilityID = vulnerability.ID
	return nil
}

func (m *AffectedProduct) SetProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return validationError("product name cannot be blank")
	}
	m.ProductName = productName
	return nil
}

func (m *AffectedProduct) Validate() error {
	if m.VulnerabilityID == 0 {
		return validationError("vulnerability is required on AffectedProduct")
	}
	if strings.TrimSpace(m.ProductName) == "" {
		return validationError("product name cannot be blank")
	}
	return structError(validate.Struct(m))
}

func (m *AffectedProduct) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
