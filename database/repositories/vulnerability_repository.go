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

package repositories

import (
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
)

type vulnerabilityRepository struct {
	db shared.DB
	shared.Repository[int, models.Vulnerability, shared.DB]
}

func NewVulnerabilityRepository(db shared.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		db:         db,
		Repository: newGormRepository[int, models.Vulnerability](db),
	}
}

func (repository *vulnerabilityRepository) FindByCVEID(cveID string) (models.Vulnerability, error) {
	var vulnerability models.Vulnerability
	err := repository.db.First(&vulnerability, "cve_id = ?", cveID).Error
	return vulnerability, err
}

func (repository *vulnerabilityRepository) GetBySeverity(severity models.Severity) ([]models.Vulnerability, error) {
	var vulnerabilities []models.Vulnerability
	err := repository.db.Find(&vulnerabilities, "severity = ?", severity).Error
	return vulnerabilities, err
}

func (repository *vulnerabilityRepository) GetWithExploitAvailable() ([]models.Vulnerability, error) {
	var vulnerabilities []models.Vulnerability
	err := repository.db.Find(&vulnerabilities, "exploit_available = ?", true).Error
	return vulnerabilities, err
}
