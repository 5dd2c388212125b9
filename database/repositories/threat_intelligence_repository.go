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

type threatIntelligenceRepository struct {
	db shared.DB
	shared.Repository[int, models.ThreatIntelligence, shared.DB]
}

func NewThreatIntelligenceRepository(db shared.DB) *threatIntelligenceRepository {
	return &threatIntelligenceRepository{
		db:         db,
		Repository: newGormRepository[int, models.ThreatIntelligence](db),
	}
}

func (repository *threatIntelligenceRepository) GetBySeverity(severity models.Severity) ([]models.ThreatIntelligence, error) {
	var threats []models.ThreatIntelligence
	err := repository.db.Find(&threats, "severity = ?", severity).Error
	return threats, err
}

func (repository *threatIntelligenceRepository) GetByThreatType(threatType string) ([]models.ThreatIntelligence, error) {
	var threats []models.ThreatIntelligence
	err := repository.db.Find(&threats, "threat_type = ?", threatType).Error
	return threats, err
}

// SearchByValue matches the threat value case-insensitively against the
// given fragment.
func (repository *threatIntelligenceRepository) SearchByValue(fragment string) ([]models.ThreatIntelligence, error) {
	var threats []models.ThreatIntelligence
	err := repository.db.Where("value ILIKE ?", "%"+fragment+"%").Find(&threats).Error
	return threats, err
}
