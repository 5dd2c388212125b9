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
	"github.com/intellisiem/intellisiem-core/shared"
	"go.uber.org/fx"
)

// Module provides all service constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAssetService, fx.As(new(shared.AssetService)))),
	fx.Provide(fx.Annotate(NewAssetSourceService, fx.As(new(shared.AssetSourceService)))),
	fx.Provide(fx.Annotate(NewThreatIntelligenceService, fx.As(new(shared.ThreatIntelligenceService)))),
	fx.Provide(fx.Annotate(NewVulnerabilityService, fx.As(new(shared.VulnerabilityService)))),
	fx.Provide(fx.Annotate(NewAssetThreatMappingService, fx.As(new(shared.AssetThreatMappingService)))),
	fx.Provide(fx.Annotate(NewSourcePluginService, fx.As(new(shared.SourcePluginService)))),
)
