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
package services

import (
	"log/slog"

	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type vulnerabilityService struct {
	vulnerabilityRepository   shared.VulnerabilityRepository
	affectedProductRepository shared.AffectedProductRepository
}

func NewVulnerabilityService(vulnerabilityRepository shared.VulnerabilityRepository, affectedProductRepository shared.AffectedProductRepository) *vulnerabilityService {
	return &vulnerabilityService{
		vulnerabilityRepository:   vulnerabilityRepository,
		affectedProductRepository: affectedProductRepository,
	}
}

func (s *vulnerabilityService) CreateVulnerability(vulnerability *models.Vulnerability) error {
	if err := vulnerability.Validate(); err != nil {
		return err
	}
	if err := s.vulnerabilityRepository.Create(nil, vulnerability); err != nil {
		slog.Error("could not create vulnerability", "cveId", vulnerability.CVEID, "err", err)
		return err
	}
	return nil
}

func (s *vulnerabilityService) GetVulnerabilityByID(id int) (models.Vulnerability, error) {
	vulnerability, err := s.vulnerabilityRepository.Read(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vulnerability{}, errors.Wrapf(shared.ErrNotFound, "vulnerability %d", id)
	}
	return vulnerability, err
}

func (s *vulnerabilityService) GetVulnerabilityByCVEID(cveID string) (models.Vulnerability, error) {
	vulnerability, err := s.vulnerabilityRepository.FindByCVEID(cveID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vulnerability{}, errors.Wrapf(shared.ErrNotFound, "vulnerability %s", cveID)
	}
	return vulnerability, err
}

func (s *vulnerabilityService) ListVulnerabilities() ([]models.Vulnerability, error) {
	return s.vulnerabilityRepository.All()
}

func (s *vulnerabilityService) UpdateVulnerability(id int, vulnerability models.Vulnerability) (models.Vulnerability, error) {
	existing, err := s.GetVulnerabilityByID(id)
	if err != nil {
		return models.Vulnerability{}, err
	}

	vulnerability.ID = existing.ID
	if err := s.vulnerabilityRepository.Save(nil, &vulnerability); err != nil {
		slog.Error("could not update vulnerability", "id", id, "err", err)
		return models.Vulnerability{}, err
	}
	return vulnerability, nil
}

func (s *vulnerabilityService) DeleteVulnerability(id int) error {
	return s.vulnerabilityRepository.Delete(nil, id)
}

func (s *vulnerabilityService) GetAffectedProducts(vulnerabilityID int) ([]models.AffectedProduct, error) {
	return s.affectedProductRepository.GetByVulnerabilityID(vulnerabilityID)
}

func (s *vulnerabilityService) AddAffectedProduct(product *models.AffectedProduct) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return s.affectedProductRepository.Create(nil, product)
}
