// Package maploader reads conquest-style .map files into a game.Map.
package maploader

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"warzone/game"
)

//go:embed data/*.map
var mapFiles embed.FS

var (
	ErrMalformedMap = errors.New("malformed map file")
	ErrInvalidMap   = errors.New("invalid map")
)

type section int

const (
	sectionNone section = iota
	sectionContinents
	sectionCountries
	sectionBorders
	sectionOther
)

type rawCountry struct {
	index     int
	name      string
	continent int
}

// LoadFile parses the map file at path. The map is named after the file.
func LoadFile(filename string) (*game.Map, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return m, nil
}

// LoadEmbedded parses one of the maps shipped with the binary, by name without extension.
func LoadEmbedded(name string) (*game.Map, error) {
	f, err := mapFiles.Open(path.Join("data", name+".map"))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded map %s: %w", name, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m.Name = name
	return m, nil
}

// Embedded lists the names of the maps shipped with the binary.
func Embedded() []string {
	entries, err := mapFiles.ReadDir("data")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, strings.TrimSuffix(entry.Name(), ".map"))
		}
	}
	sort.Strings(names)
	return names
}

// Load resolves name as an embedded map first and as a file path otherwise.
func Load(name string) (*game.Map, error) {
	for _, embedded := range Embedded() {
		if embedded == name {
			return LoadEmbedded(name)
		}
	}
	return LoadFile(name)
}

// Parse reads the [continents], [countries] and [borders] sections of a map file. Indices in the
// file are 1-based; territory and continent IDs of the result are 0-based in file order.
// The resulting map must pass game.Map.Validate.
func Parse(r io.Reader) (*game.Map, error) {
	m := game.NewMap("")
	var countries []rawCountry
	borders := map[int][]int{}
	var borderOrder []int

	current := sectionNone
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = parseSection(line)
			continue
		}

		fields := strings.Fields(line)
		switch current {
		case sectionContinents:
			if len(fields) < 2 {
				return nil, malformed(lineNo, "continent needs a name and a control value")
			}
			bonus, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, malformed(lineNo, "control value %q is not a number", fields[1])
			}
			m.AddContinent(fields[0], bonus)
		case sectionCountries:
			if len(fields) < 3 {
				return nil, malformed(lineNo, "country needs an index, a name and a continent")
			}
			index, err1 := strconv.Atoi(fields[0])
			continent, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, malformed(lineNo, "country index and continent must be numbers")
			}
			countries = append(countries, rawCountry{index: index, name: fields[1], continent: continent})
		case sectionBorders:
			ids := make([]int, 0, len(fields))
			for _, field := range fields {
				id, err := strconv.Atoi(field)
				if err != nil {
					return nil, malformed(lineNo, "border entry %q is not a number", field)
				}
				ids = append(ids, id)
			}
			if _, ok := borders[ids[0]]; !ok {
				borderOrder = append(borderOrder, ids[0])
			}
			borders[ids[0]] = append(borders[ids[0]], ids[1:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	idByIndex := make(map[int]int, len(countries))
	for _, c := range countries {
		if c.continent < 1 || c.continent > len(m.Continents) {
			return nil, fmt.Errorf("%w: country %s references unknown continent %d", ErrMalformedMap, c.name, c.continent)
		}
		if _, dup := idByIndex[c.index]; dup {
			return nil, fmt.Errorf("%w: duplicate country index %d", ErrMalformedMap, c.index)
		}
		idByIndex[c.index] = m.AddTerritory(c.name, c.continent-1).ID
	}

	for _, from := range borderOrder {
		fromID, ok := idByIndex[from]
		if !ok {
			return nil, fmt.Errorf("%w: border references unknown country %d", ErrMalformedMap, from)
		}
		for _, to := range borders[from] {
			toID, ok := idByIndex[to]
			if !ok {
				return nil, fmt.Errorf("%w: border references unknown country %d", ErrMalformedMap, to)
			}
			m.AddBorder(fromID, toID)
		}
	}

	if err := m.ValidateErr(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}
	return m, nil
}

func parseSection(header string) section {
	switch strings.ToLower(strings.Trim(header, "[]")) {
	case "continents":
		return sectionContinents
	case "countries", "territories":
		return sectionCountries
	case "borders":
		return sectionBorders
	default:
		return sectionOther
	}
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedMap, line, fmt.Sprintf(format, args...))
}
