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

package services_test

import (
	"testing"

	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/services"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/intellisiem/intellisiem-core/testutils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func setupVulnerabilityService() (shared.VulnerabilityService, *testutils.VulnerabilityRepositoryMock, *testutils.AffectedProductRepositoryMock) {
	vulnerabilityRepository := testutils.NewVulnerabilityRepositoryMock()
	affectedProductRepository := testutils.NewAffectedProductRepositoryMock()
	return services.NewVulnerabilityService(vulnerabilityRepository, affectedProductRepository), vulnerabilityRepository, affectedProductRepository
}

func TestGetVulnerabilityByCVEID(t *testing.T) {
	sut, vulnerabilityRepository, _ := setupVulnerabilityService()
	vulnerabilityRepository.Items = append(vulnerabilityRepository.Items, models.Vulnerability{
		ID: 1, CVEID: "CVE-2024-1", Severity: models.SeverityHigh,
	})

	vulnerability, err := sut.GetVulnerabilityByCVEID("CVE-2024-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, vulnerability.ID)

	_, err = sut.GetVulnerabilityByCVEID("CVE-2024-2")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestCreateVulnerabilityRejectsInvalidPayload(t *testing.T) {
	sut, vulnerabilityRepository, _ := setupVulnerabilityService()

	err := sut.CreateVulnerability(&models.Vulnerability{CVEID: "", Severity: models.SeverityHigh})

	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Empty(t, vulnerabilityRepository.Items)
}

func TestUpdateVulnerabilityKeepsIdentity(t *testing.T) {
	sut, vulnerabilityRepository, _ := setupVulnerabilityService()
	vulnerabilityRepository.Items = append(vulnerabilityRepository.Items, models.Vulnerability{
		ID: 1, CVEID: "CVE-2024-1", Severity: models.SeverityLow,
	})

	payload := models.Vulnerability{ID: 99, CVEID: "CVE-2024-1", Severity: models.SeverityCritical, ExploitAvailable: true}

	updated, err := sut.UpdateVulnerability(1, payload)

	assert.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Len(t, vulnerabilityRepository.Items, 1)
	assert.Equal(t, models.SeverityCritical, vulnerabilityRepository.Items[0].Severity)
}

func TestGetAffectedProducts(t *testing.T) {
	sut, _, affectedProductRepository := setupVulnerabilityService()
	affectedProductRepository.Items = append(affectedProductRepository.Items,
		models.AffectedProduct{ID: 1, VulnerabilityID: 1, ProductName: "nginx 1.24"},
		models.AffectedProduct{ID: 2, VulnerabilityID: 2, ProductName: "openssl 3.0"},
	)

	products, err := sut.GetAffectedProducts(1)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "nginx 1.24", products[0].ProductName)
}

func TestAddAffectedProductRejectsInvalidPayload(t *testing.T) {
	sut, _, affectedProductRepository := setupVulnerabilityService()

	err := sut.AddAffectedProduct(&models.AffectedProduct{VulnerabilityID: 0, ProductName: "nginx 1.24"})

	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Empty(t, affectedProductRepository.Items)
}
