package wargame

import (
	"fmt"
	"strings"
)

// ParseMapText builds a MapData from a testing-aid text grid (§6):
// newline-delimited rows of equal length, one character per tile.
// space → Water; '0'-'9' → Land with a city owned by that player number;
// a unit-type map key (lowercase → player 0, uppercase → player 1) →
// Land with that unit; anything else non-space → plain Land.
func ParseMapText(text string, wrap Wrap2d, cityNamer, unitNamer Namer) (*MapData, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("wargame: parse map text: empty input")
	}
	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("wargame: parse map text: ragged row (want width %d, got %d)", width, len(line))
		}
	}
	if unitNamer == nil {
		unitNamer = NewSequentialNamer("Unit")
	}
	if cityNamer == nil {
		cityNamer = NewSequentialNamer("City")
	}

	dims := Dims{Width: width, Height: len(lines)}
	m := NewMapData(dims, wrap)

	for y, line := range lines {
		for x, ch := range []byte(line) {
			loc := Location{X: x, Y: y}
			if ch == ' ' {
				m.SetTerrain(loc, Water)
				continue
			}
			m.SetTerrain(loc, Land)

			switch {
			case ch >= '0' && ch <= '9':
				player := PlayerNum(ch - '0')
				if _, err := m.NewCity(loc, Belligerent(player), cityNamer.Next()); err != nil {
					return nil, fmt.Errorf("wargame: parse map text: %w", err)
				}
			default:
				if t, ok := UnitTypeFromMapKey(lowerByte(ch)); ok {
					player := PlayerNum(0)
					if isUpperByte(ch) {
						player = 1
					}
					if _, err := m.NewUnit(loc, t, Belligerent(player), unitNamer.Next()); err != nil {
						return nil, fmt.Errorf("wargame: parse map text: %w", err)
					}
				}
				// any other non-space character is plain Land, already set above
			}
		}
	}
	return m, nil
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func isUpperByte(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// FormatMapText renders a MapData back into the §6 text grid, the
// inverse of ParseMapText for the subset it can express: cities as
// their owning player's digit, units as their map key (uppercase for
// player 1, lowercase otherwise), bare Land as '-', Water as ' '.
// Players beyond 0/1 and more than one occupant per tile cannot be
// expressed in this lossy ascii format; FormatMapText renders whichever
// single best-known fact a tile has (city wins over unit, since a city
// tile can still carry a garrisoning unit that the text format cannot
// show at all).
func FormatMapText(m *MapData) string {
	var b strings.Builder
	for y := 0; y < m.Dims.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Dims.Width; x++ {
			loc := Location{X: x, Y: y}
			tile, _ := m.TileAt(loc)
			b.WriteByte(formatTile(m, tile))
		}
	}
	return b.String()
}

func formatTile(m *MapData, tile *Tile) byte {
	if tile.Terrain == Water && tile.CityID == nil && tile.UnitID == nil {
		return ' '
	}
	if tile.CityID != nil {
		city, _ := m.CityByID(*tile.CityID)
		if !city.Alignment.Neutral && city.Alignment.Player >= 0 && city.Alignment.Player <= 9 {
			return byte('0' + city.Alignment.Player)
		}
		return '+'
	}
	if tile.UnitID != nil {
		unit, _ := m.UnitByID(*tile.UnitID)
		key := unit.Type.Data().MapKey
		if !unit.Alignment.Neutral && unit.Alignment.Player == 1 {
			return lowerByte(key) - 'a' + 'A'
		}
		return key
	}
	return '-'
}

// ParseObsText builds an ObsTracker from the §6 observation-grid text
// format: '?' marks a tile Unobserved, ' ' an observed Water tile, and
// any other character an observed Land tile. City digits and unit keys
// are read as plain Land: no city or unit snapshot is recorded. Every
// non-'?' tile is recorded as Observed at turn 0 with Current true.
func ParseObsText(text string, wrap Wrap2d) (*ObsTracker, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("wargame: parse obs text: empty input")
	}
	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("wargame: parse obs text: ragged row (want width %d, got %d)", width, len(line))
		}
	}

	dims := Dims{Width: width, Height: len(lines)}
	tracker := NewObsTracker(dims, wrap)

	for y, line := range lines {
		for x, ch := range []byte(line) {
			if ch == '?' {
				continue
			}
			loc := Location{X: x, Y: y}
			terrain := Land
			if ch == ' ' {
				terrain = Water
			}
			tracker.TrackObservation(loc, Tile{Loc: loc, Terrain: terrain}, nil, nil, 0)
		}
	}
	return tracker, nil
}
