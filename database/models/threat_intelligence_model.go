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

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ParseSeverity maps a string onto a Severity level. Matching is
// case-insensitive; unknown values are rejected.
func ParseSeverity(value string) (Severity, error) {
	switch Severity(strings.ToLower(value)) {
	case SeverityCritical:
		return SeverityCritical, nil
	case SeverityHigh:
		return SeverityHigh, nil
	case SeverityMedium:
		return SeverityMedium, nil
	case SeverityLow:
		return SeverityLow, nil
	}
	return "", validationError("invalid severity value: %s", value)
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// ThreatIntelligence is a record describing an indicator of compromise or
// threat value, e.g. a CVE ID, a malicious IP, or a domain.
type ThreatIntelligence struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	ThreatType  string     `json:"threatType" gorm:"column:threat_type;type:varchar(50);not null" validate:"required"`
	Value       string     `json:"value" gorm:"type:text;not null" validate:"required"`
	Description *string    `json:"description" gorm:"type:text"`
	Severity    Severity   `json:"severity" gorm:"type:varchar(10);not null" validate:"required,oneof=critical high medium low"`
	FirstSeen   *time.Time `json:"firstSeen" gorm:"column:first_seen"`
	LastSeen    *time.Time `json:"lastSeen" gorm:"column:last_seen"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m ThreatIntelligence) TableName() string {
	return "threat_intelligence"
}

func NewThreatIntelligence(threatType string, value string, description *string, severity Severity, firstSeen *time.Time, lastSeen *time.Time) (ThreatIntelligence, error) {
	threat := ThreatIntelligence{
		ThreatType:  threatType,
		Value:       value,
		Description: description,
		Severity:    severity,
		FirstSeen:   firstSeen,
		LastSeen:    lastSeen,
	}
	if err := threat.Validate(); err != nil {
		return ThreatIntelligence{}, err
	}
	return threat, nil
}

func (m *ThreatIntelligence) SetThreatType(threatType string) error {
	if strings.TrimSpace(threatType) == "" {
		return validationError("threat type cannot be blank")
	}
	m.ThreatType = threatType
	return nil
}

func (m *ThreatIntelligence) SetValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError("threat value cannot be blank")
	}
	m.Value = value
	return nil
}

func (m *ThreatIntelligence) SetSeverity(severity Severity) error {
	if !severity.Valid() {
		return validationError("invalid severity value: %s", severity)
	}
	m.Severity = severity
	return nil
}

func (m *ThreatIntelligence) Validate() error {
	if strings.TrimSpace(m.ThreatType) == "" {
		return validationError("threat type cannot be blank")
	}
	if strings.TrimSpace(m.Value) == "" {
		return validationError("threat value cannot be blank")
	}
	if !m.Severity.Valid() {
		return validationError("invalid severity value: %s", m.Severity)
	}
	return structError(validate.Struct(m))
}

func (m *ThreatIntelligence) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
