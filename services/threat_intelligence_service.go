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

type threatIntelligenceService struct {
	threatRepository shared.ThreatIntelligenceRepository
}

func NewThreatIntelligenceService(threatRepository shared.ThreatIntelligenceRepository) *threatIntelligenceService {
	return &threatIntelligenceService{
		threatRepository: threatRepository,
	}
}

func (s *threatIntelligenceService) CreateThreat(threat *models.ThreatIntelligence) error {
	if err := threat.Validate(); err != nil {
		return err
	}
	if err := s.threatRepository.Create(nil, threat); err != nil {
		slog.Error("could not create threat", "threatType", threat.ThreatType, "err", err)
		return err
	}
	return nil
}

func (s *threatIntelligenceService) GetThreatByID(id int) (models.ThreatIntelligence, error) {
	threat, err := s.threatRepository.Read(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ThreatIntelligence{}, errors.Wrapf(shared.ErrNotFound, "threat %d", id)
	}
	return threat, err
}

func (s *threatIntelligenceService) GetThreatsBySeverity(severity models.Severity) ([]models.ThreatIntelligence, error) {
	return s.threatRepository.GetBySeverity(severity)
}

func (s *threatIntelligenceService) GetThreatsByType(threatType string) ([]models.ThreatIntelligence, error) {
	return s.threatRepository.GetByThreatType(threatType)
}

func (s *threatIntelligenceService) SearchThreatsByValue(fragment string) ([]models.ThreatIntelligence, error) {
	return s.threatRepository.SearchByValue(fragment)
}

func (s *threatIntelligenceService) ListThreats() ([]models.ThreatIntelligence, error) {
	return s.threatRepository.All()
}

func (s *threatIntelligenceService) UpdateThreat(id int, threat models.ThreatIntelligence) (models.ThreatIntelligence, error) {
	existing, err := s.GetThreatByID(id)
	if err != nil {
		return models.ThreatIntelligence{}, err
	}

	threat.ID = existing.ID
	if err := s.threatRepository.Save(nil, &threat); err != nil {
		slog.Error("could not update threat", "id", id, "err", err)
		return models.ThreatIntelligence{}, err
	}
	return threat, nil
}

func (s *threatIntelligenceService) DeleteThreat(id int) error {
	return s.threatRepository.Delete(nil, id)
}
