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
package shared

import (
	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
)

type AssetRepository interface {
	Repository[uuid.UUID, models.Asset, DB]
	FindByHostname(hostname string) (models.Asset, error)
	GetBySourceID(sourceID int) ([]models.Asset, error)
	ExistsByHostname(hostname string) (bool, error)
}

type AssetSourceRepository interface {
	Repository[int, models.AssetSource, DB]
	FindByName(name string) (models.AssetSource, error)
	FindByDescriptionContaining(fragment string) ([]models.AssetSource, error)
	CountAll() (int64, error)
	UpdateDescriptionByID(id int, description string) (int64, error)
	ExistsByName(name string) (bool, error)
	DeleteByName(tx DB, name string) (int64, error)
}

type IPAddressRepository interface {
	Repository[int, models.IPAddress, DB]
	GetByAssetID(assetID uuid.UUID) ([]models.IPAddress, error)
	FindByIP(ip string) (models.IPAddress, error)
}

type ThreatIntelligenceRepository interface {
	Repository[int, models.ThreatIntelligence, DB]
	GetBySeverity(severity models.Severity) ([]models.ThreatIntelligence, error)
	GetByThreatType(threatType string) ([]models.ThreatIntelligence, error)
	SearchByValue(fragment string) ([]models.ThreatIntelligence, error)
}

type VulnerabilityRepository interface {
	Repository[int, models.Vulnerability, DB]
	FindByCVEID(cveID string) (models.Vulnerability, error)
	GetBySeverity(severity models.Severity) ([]models.Vulnerability, error)
	GetWithExploitAvailable() ([]models.Vulnerability, error)
}

type AffectedProductRepository interface {
	Repository[int, models.AffectedProduct, DB]
	GetByVulnerabilityID(vulnerabilityID int) ([]models.AffectedProduct, error)
	ExistsByVulnerabilityIDAndProductName(vulnerabilityID int, productName string) (bool, error)
	DeleteByVulnerabilityID(tx DB, vulnerabilityID int) (int64, error)
}

type AssetThreatMappingRepository interface {
	Repository[int, models.AssetThreatMapping, DB]
	GetByAssetID(assetID uuid.UUID) ([]models.AssetThreatMapping, error)
	GetByThreatID(threatID int) ([]models.AssetThreatMapping, error)
	GetByRelevanceScoreGreaterThan(threshold float64) ([]models.AssetThreatMapping, error)
}

type SourcePluginRepository interface {
	Repository[int, models.SourcePlugin, DB]
	GetEnabled() ([]models.SourcePlugin, error)
	FindByPluginName(pluginName string) (models.SourcePlugin, error)
}

type AssetService interface {
	CreateAsset(asset *models.Asset) error
	GetAssetByID(id uuid.UUID) (models.Asset, error)
	GetAssetByHostname(hostname string) (models.Asset, error)
	ListAssets() ([]models.Asset, error)
	UpdateAsset(id uuid.UUID, asset models.Asset) (models.Asset, error)
	DeleteAsset(id uuid.UUID) error
	GetIPAddresses(assetID uuid.UUID) ([]models.IPAddress, error)
	AddIPAddress(ipAddress *models.IPAddress) error
}

type AssetSourceService interface {
	CreateAssetSource(source *models.AssetSource) error
	GetAssetSourceByID(id int) (models.AssetSource, error)
	GetAssetSourceByName(name string) (models.AssetSource, error)
	SearchByDescription(fragment string) ([]models.AssetSource, error)
	ListAssetSources() ([]models.AssetSource, error)
	UpdateAssetSource(id int, source models.AssetSource) (models.AssetSource, error)
	DeleteAssetSource(id int) error
}

type ThreatIntelligenceService interface {
	CreateThreat(threat *models.ThreatIntelligence) error
	GetThreatByID(id int) (models.ThreatIntelligence, error)
	GetThreatsBySeverity(severity models.Severity) ([]models.ThreatIntelligence, error)
	GetThreatsByType(threatType string) ([]models.ThreatIntelligence, error)
	SearchThreatsByValue(fragment string) ([]models.ThreatIntelligence, error)
	ListThreats() ([]models.ThreatIntelligence, error)
	UpdateThreat(id int, threat models.ThreatIntelligence) (models.ThreatIntelligence, error)
	DeleteThreat(id int) error
}

type VulnerabilityService interface {
	CreateVulnerability(vulnerability *models.Vulnerability) error
	GetVulnerabilityByID(id int) (models.Vulnerability, error)
	GetVulnerabilityByCVEID(cveID string) (models.Vulnerability, error)
	ListVulnerabilities() ([]models.Vulnerability, error)
	UpdateVulnerability(id int, vulnerability models.Vulnerability) (models.Vulnerability, error)
	DeleteVulnerability(id int) error
	GetAffectedProducts(vulnerabilityID int) ([]models.AffectedProduct, error)
	AddAffectedProduct(product *models.AffectedProduct) error
}

type AssetThreatMappingService interface {
	CreateMapping(mapping *models.AssetThreatMapping) error
	GetMappingByID(id int) (models.AssetThreatMapping, error)
	GetMappingsByAssetID(assetID uuid.UUID) ([]models.AssetThreatMapping, error)
	GetMappingsByThreatID(threatID int) ([]models.AssetThreatMapping, error)
	GetMappingsAboveScore(threshold float64) ([]models.AssetThreatMapping, error)
	DeleteMapping(id int) error
}

type SourcePluginService interface {
	CreateSourcePlugin(plugin *models.SourcePlugin) error
	GetSourcePluginByID(id int) (models.SourcePlugin, error)
	GetEnabledSourcePlugins() ([]models.SourcePlugin, error)
	UpdateSourcePlugin(id int, plugin models.SourcePlugin) (models.SourcePlugin, error)
	DeleteSourcePlugin(id int) error
}
