/*
Package spacesim is a library for inspecting and reconstructing the
graphics assets of a legacy DOS space simulator: indexed .R8 rasters
and raw .PLT palette dumps.
*/
package spacesim

import "log"

type SpaceSim struct {
	db     *AssetDB
	logger *log.Logger
}

// New returns a tool instance writing its output to the current
// directory. db may be nil for operations that do not touch the asset
// catalog.
func New(db *AssetDB, logger *log.Logger) *SpaceSim {
	return &SpaceSim{
		db:     db,
		logger: logger,
	}
}
