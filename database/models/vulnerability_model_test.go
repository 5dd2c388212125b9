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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewVulnerability(t *testing.T) {
	vulnerability, err := models.NewVulnerability("CVE-2024-1", nil, models.SeverityHigh, true)

	assert.NoError(t, err)
	assert.Equal(t, "CVE-2024-1", vulnerability.CVEID)
	assert.True(t, vulnerability.ExploitAvailable)
}

func TestNewVulnerabilityRejectsBlankCVEID(t *testing.T) {
	_, err := models.NewVulnerability("  ", nil, models.SeverityHigh, false)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewVulnerabilityRejectsUnknownSeverity(t *testing.T) {
	_, err := models.NewVulnerability("CVE-2024-1", nil, models.Severity(""), false)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewAffectedProduct(t *testing.T) {
	vulnerability := models.Vulnerability{ID: 3, CVEID: "CVE-2024-1", Severity: models.SeverityHigh}

	product, err := models.NewAffectedProduct(&vulnerability, "nginx 1.24")

	assert.NoError(t, err)
	assert.Equal(t, 3, product.VulnerabilityID)
}

func TestNewAffectedProductRejectsNilVulnerability(t *testing.T) {
	_, err := models.NewAffectedProduct(nil, "nginx 1.24")

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestNewAffectedProductRejectsBlankProductName(t *testing.T) {
	vulnerability := models.Vulnerability{ID: 3, CVEID: "CVE-2024-1", Severity: models.SeverityHigh}

	_, err := models.NewAffectedProduct(&vulnerability, " ")

	assert.True(t, errors.Is(err, models.ErrValidation))
}
