// Package importer loads team rosters from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"web420-api/internal/domain"
	teamsvc "web420-api/internal/service/team"
)

type TeamWriter interface {
	Create(ctx context.Context, in teamsvc.CreateInput) (*domain.Team, error)
}

// CSVImporter reads roster CSVs and creates one team per team row.
//
// Expected headers: name, mascot, player.firstName, player.lastName,
// player.salary. A row with a name starts a new team; rows with an empty
// name add their player to the team above.
type CSVImporter struct {
	reader *csv.Reader
	teams  TeamWriter
}

func NewCSVImporter(r io.Reader, teams TeamWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, teams: teams}
}

type teamRow struct {
	line    int
	name    string
	mascot  string
	players []domain.Player
}

// Run parses every row and returns the number of teams created.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New(`missing "name" column`)
	}

	var (
		current  *teamRow
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		name := pick(record, index, "name")
		player, err := parsePlayer(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}

		if name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = &teamRow{line: line, name: name, mascot: pick(record, index, "mascot"), players: []domain.Player{}}
		} else if current == nil && player != nil {
			return imported, fmt.Errorf("row %d: player without a team", line)
		}

		if player != nil {
			current.players = append(current.players, *player)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *teamRow) error {
	if row.mascot == "" {
		return fmt.Errorf("row %d: team %q has no mascot", row.line, row.name)
	}
	_, err := i.teams.Create(ctx, teamsvc.CreateInput{
		Name:    row.name,
		Mascot:  row.mascot,
		Players: row.players,
	})
	if err != nil {
		return fmt.Errorf("create team %q: %w", row.name, err)
	}
	return nil
}

// parsePlayer returns nil when the row carries no player columns.
func parsePlayer(record []string, index map[string]int) (*domain.Player, error) {
	first := pick(record, index, "player.firstName")
	last := pick(record, index, "player.lastName")
	salaryStr := pick(record, index, "player.salary")
	if first == "" && last == "" && salaryStr == "" {
		return nil, nil
	}
	if first == "" || last == "" {
		return nil, errors.New("player needs both firstName and lastName")
	}

	p := &domain.Player{FirstName: first, LastName: last}
	if salaryStr != "" {
		salary, err := strconv.ParseFloat(salaryStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid salary %q", salaryStr)
		}
		p.Salary = &salary
	}
	return p, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
