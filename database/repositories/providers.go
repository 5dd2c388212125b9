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
	"github.com/intellisiem/intellisiem-core/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAssetRepository, fx.As(new(shared.AssetRepository)))),
	fx.Provide(fx.Annotate(NewAssetSourceRepository, fx.As(new(shared.AssetSourceRepository)))),
	fx.Provide(fx.Annotate(NewIPAddressRepository, fx.As(new(shared.IPAddressRepository)))),
	fx.Provide(fx.Annotate(NewThreatIntelligenceRepository, fx.As(new(shared.ThreatIntelligenceRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityRepository, fx.As(new(shared.VulnerabilityRepository)))),
	fx.Provide(fx.Annotate(NewAffectedProductRepository, fx.As(new(shared.AffectedProductRepository)))),
	fx.Provide(fx.Annotate(NewAssetThreatMappingRepository, fx.As(new(shared.AssetThreatMappingRepository)))),
	fx.Provide(fx.Annotate(NewSourcePluginRepository, fx.As(new(shared.SourcePluginRepository)))),
)
