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
package testutils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/intellisiem/intellisiem-core/database/models"
	"github.com/intellisiem/intellisiem-core/shared"
	"gorm.io/gorm"
)

type AssetRepositoryMock struct {
	*MockRepository[uuid.UUID, models.Asset]
}

func NewAssetRepositoryMock() *AssetRepositoryMock {
	return &AssetRepositoryMock{
		MockRepository: NewMockRepository(func(a models.Asset) uuid.UUID { return a.ID }),
	}
}

func (m *AssetRepositoryMock) FindByHostname(hostname string) (models.Asset, error) {
	for _, item := range m.Items {
		if item.Hostname == hostname {
			return item, nil
		}
	}
	return models.Asset{}, gorm.ErrRecordNotFound
}

func (m *AssetRepositoryMock) GetBySourceID(sourceID int) ([]models.Asset, error) {
	var assets []models.Asset
	for _, item := range m.Items {
		if item.SourceID != nil && *item.SourceID == sourceID {
			assets = append(assets, item)
		}
	}
	return assets, nil
}

func (m *AssetRepositoryMock) ExistsByHostname(hostname string) (bool, error) {
	for _, item := range m.Items {
		if item.Hostname == hostname {
			return true, nil
		}
	}
	return false, nil
}

type AssetSourceRepositoryMock struct {
	*MockRepository[int, models.AssetSource]
}

func NewAssetSourceRepositoryMock() *AssetSourceRepositoryMock {
	return &AssetSourceRepositoryMock{
		MockRepository: NewMockRepository(func(s models.AssetSource) int { return s.ID }),
	}
}

func (m *AssetSourceRepositoryMock) FindByName(name string) (models.AssetSource, error) {
	for _, item := range m.Items {
		if item.Name == name {
			return item, nil
		}
	}
	return models.AssetSource{}, gorm.ErrRecordNotFound
}

func (m *AssetSourceRepositoryMock) FindByDescriptionContaining(fragment string) ([]models.AssetSource, error) {
	var sources []models.AssetSource
	for _, item := range m.Items {
		if item.Description != nil && strings.Contains(strings.ToLower(*item.Description), strings.ToLower(fragment)) {
			sources = append(sources, item)
		}
	}
	return sources, nil
}

func (m *AssetSourceRepositoryMock) CountAll() (int64, error) {
	return int64(len(m.Items)), nil
}

func (m *AssetSourceRepositoryMock) UpdateDescriptionByID(id int, description string) (int64, error) {
	for i, item := range m.Items {
		if item.ID == id {
			m.Items[i].Description = &description
			return 1, nil
		}
	}
	return 0, nil
}

func (m *AssetSourceRepositoryMock) ExistsByName(name string) (bool, error) {
	for _, item := range m.Items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *AssetSourceRepositoryMock) DeleteByName(tx shared.DB, name string) (int64, error) {
	var kept []models.AssetSource
	var deleted int64
	for _, item := range m.Items {
		if item.Name == name {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	m.Items = kept
	return deleted, nil
}

type IPAddressRepositoryMock struct {
	*MockRepository[int, models.IPAddress]
}

func NewIPAddressRepositoryMock() *IPAddressRepositoryMock {
	return &IPAddressRepositoryMock{
		MockRepository: NewMockRepository(func(ip models.IPAddress) int { return ip.ID }),
	}
}

func (m *IPAddressRepositoryMock) GetByAssetID(assetID uuid.UUID) ([]models.IPAddress, error) {
	var addresses []models.IPAddress
	for _, item := range m.Items {
		if item.AssetID == assetID {
			addresses = append(addresses, item)
		}
	}
	return addresses, nil
}

func (m *IPAddressRepositoryMock) FindByIP(ip string) (models.IPAddress, error) {
	for _, item := range m.Items {
		if item.IP == ip {
			return item, nil
		}
	}
	return models.IPAddress{}, gorm.ErrRecordNotFound
}

type ThreatIntelligenceRepositoryMock struct {
	*MockRepository[int, models.ThreatIntelligence]
}

func NewThreatIntelligenceRepositoryMock() *ThreatIntelligenceRepositoryMock {
	return &ThreatIntelligenceRepositoryMock{
		MockRepository: NewMockRepository(func(t models.ThreatIntelligence) int { return t.ID }),
	}
}

func (m *ThreatIntelligenceRepositoryMock) GetBySeverity(severity models.Severity) ([]models.ThreatIntelligence, error) {
	var threats []models.ThreatIntelligence
	for _, item := range m.Items {
		if item.Severity == severity {
			threats = append(threats, item)
		}
	}
	return threats, nil
}

func (m *ThreatIntelligenceRepositoryMock) GetByThreatType(threatType string) ([]models.ThreatIntelligence, error) {
	var threats []models.ThreatIntelligence
	for _, item := range m.Items {
		if item.ThreatType == threatType {
			threats = append(threats, item)
		}
	}
	return threats, nil
}

func (m *ThreatIntelligenceRepositoryMock) SearchByValue(fragment string) ([]models.ThreatIntelligence, error) {
	var threats []models.ThreatIntelligence
	for _, item := range m.Items {
		if strings.Contains(strings.ToLower(item.Value), strings.ToLower(fragment)) {
			threats = append(threats, item)
		}
	}
	return threats, nil
}

type VulnerabilityRepositoryMock struct {
	*MockRepository[int, models.Vulnerability]
}

func NewVulnerabilityRepositoryMock() *VulnerabilityRepositoryMock {
	return &VulnerabilityRepositoryMock{
		MockRepository: NewMockRepository(func(v models.Vulnerability) int { return v.ID }),
	}
}

func (m *VulnerabilityRepositoryMock) FindByCVEID(cveID string) (models.Vulnerability, error) {
	for _, item := range m.Items {
		if item.CVEID == cveID {
			return item, nil
		}
	}
	return models.Vulnerability{}, gorm.ErrRecordNotFound
}

func (m *VulnerabilityRepositoryMock) GetBySeverity(severity models.Severity) ([]models.Vulnerability, error) {
	var vulnerabilities []models.Vulnerability
	for _, item := range m.Items {
		if item.Severity == severity {
			vulnerabilities = append(vulnerabilities, item)
		}
	}
	return vulnerabilities, nil
}

func (m *VulnerabilityRepositoryMock) GetWithExploitAvailable() ([]models.Vulnerability, error) {
	var vulnerabilities []models.Vulnerability
	for _, item := range m.Items {
		if item.ExploitAvailable {
			vulnerabilities = append(vulnerabilities, item)
		}
	}
	return vulnerabilities, nil
}

type AffectedProductRepositoryMock struct {
	*MockRepository[int, models.AffectedProduct]
}

func NewAffectedProductRepositoryMock() *AffectedProductRepositoryMock {
	return &AffectedProductRepositoryMock{
		MockRepository: NewMockRepository(func(p models.AffectedProduct) int { return p.ID }),
	}
}

func (m *AffectedProductRepositoryMock) GetByVulnerabilityID(vulnerabilityID int) ([]models.AffectedProduct, error) {
	var products []models.AffectedProduct
	for _, item := range m.Items {
		if item.VulnerabilityID == vulnerabilityID {
			products = append(products, item)
		}
	}
	return products, nil
}

func (m *AffectedProductRepositoryMock) ExistsByVulnerabilityIDAndProductName(vulnerabilityID int, productName string) (bool, error) {
	for _, item := range m.Items {
		if item.VulnerabilityID == vulnerabilityID && item.ProductName == productName {
			return true, nil
		}
	}
	return false, nil
}

func (m *AffectedProductRepositoryMock) DeleteByVulnerabilityID(tx shared.DB, vulnerabilityID int) (int64, error) {
	var kept []models.AffectedProduct
	var deleted int64
	for _, item := range m.Items {
		if item.VulnerabilityID == vulnerabilityID {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	m.Items = kept
	return deleted, nil
}

type AssetThreatMappingRepositoryMock struct {
	*MockRepository[int, models.AssetThreatMapping]
}

func NewAssetThreatMappingRepositoryMock() *AssetThreatMappingRepositoryMock {
	return &AssetThreatMappingRepositoryMock{
		MockRepository: NewMockRepository(func(m models.AssetThreatMapping) int { return m.ID }),
	}
}

func (m *AssetThreatMappingRepositoryMock) GetByAssetID(assetID uuid.UUID) ([]models.AssetThreatMapping, error) {
	var mappings []models.AssetThreatMapping
	for _, item := range m.Items {
		if item.AssetID == assetID {
			mappings = append(mappings, item)
		}
	}
	return mappings, nil
}

func (m *AssetThreatMappingRepositoryMock) GetByThreatID(threatID int) ([]models.AssetThreatMapping, error) {
	var mappings []models.AssetThreatMapping
	for _, item := range m.Items {
		if item.ThreatID == threatID {
			mappings = append(mappings, item)
		}
	}
	return mappings, nil
}

func (m *AssetThreatMappingRepositoryMock) GetByRelevanceScoreGreaterThan(threshold float64) ([]models.AssetThreatMapping, error) {
	var mappings []models.AssetThreatMapping
	for _, item := range m.Items {
		if item.RelevanceScore > threshold {
			mappings = append(mappings, item)
		}
	}
	return mappings, nil
}

type SourcePluginRepositoryMock struct {
	*MockRepository[int, models.SourcePlugin]
}

func NewSourcePluginRepositoryMock() *SourcePluginRepositoryMock {
	return &SourcePluginRepositoryMock{
		MockRepository: NewMockRepository(func(p models.SourcePlugin) int { return p.ID }),
	}
}

func (m *SourcePluginRepositoryMock) GetEnabled() ([]models.SourcePlugin, error) {
	var plugins []models.SourcePlugin
	for _, item := range m.Items {
		if item.Enabled {
			plugins = append(plugins, item)
		}
	}
	return plugins, nil
}

func (m *SourcePluginRepositoryMock) FindByPluginName(pluginName string) (models.SourcePlugin, error) {
	for _, item := range m.Items {
		if item.PluginName == pluginName {
			return item, nil
		}
	}
	return models.SourcePlugin{}, gorm.ErrRecordNotFound
}
