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

// Vulnerability is a CVE record enriched with whether a public exploit is
// known to exist.
type Vulnerability struct {
	ID               int      `json:"id" gorm:"primaryKey"`
	CVEID            string   `json:"cveId" gorm:"column:cve_id;type:varchar(50);uniqueIndex;not null" validate:"required"`
	Description      *string  `json:"description" gorm:"type:text"`
	Severity         Severity `json:"severity" gorm:"type:varchar(10);not null" validate:"required,oneof=critical high medium low"`
	ExploitAvailable bool     `json:"exploitAvailable" gorm:"column:exploit_available;not null;default:false"`

	AffectedProducts []AffectedProduct `json:"affectedProducts,omitempty" gorm:"foreignKey:VulnerabilityID;references:ID;constraint:OnDelete:CASCADE;" validate:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m Vulnerability) TableName() string {
	return "vulnerability"
}

func NewVulnerability(cveID string, description *string, severity Severity, exploitAvailable bool) (Vulnerability, error) {
	vulnerability := Vulnerability{
		CVEID:            cveID,
		Description:      description,
		Severity:         severity,
		ExploitAvailable: exploitAvailable,
	}
	if err := vulnerability.Validate(); err != nil {
		return Vulnerability{}, err
	}
	return vulnerability, nil
}

func (m *Vulnerability) SetCVEID(cveID string) error {
	if strings.TrimSpace(cveID) == "" {
		return validationError("cve id cannot be blank")
	}
	m.CVEID = cveID
	return nil
}

func (m *Vulnerability) SetSeverity(severity Severity) error {
	if !severity.Valid() {
		return validationError("invalid severity value: %s", severity)
	}
	m.Severity = severity
	return nil
}

func (m *Vulnerability) Validate() error {
	if strings.TrimSpace(m.CVEID) == "" {
		return validationError("cve id cannot be blank")
	}
	if !m.Severity.Valid() {
		return validationError("invalid severity value: %s", m.Severity)
	}
	return structError(validate.Struct(m))
}

func (m *Vulnerability) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
