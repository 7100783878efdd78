package replay

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/urchin/internal/game"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNoSum = errors.New("chart has no sum")

type Store struct {
	db     *sql.DB
	logger *log.Logger
}

func Open(file string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", file)
	if nil != err {
		return nil, fmt.Errorf("unable to open replay database: %w", err)
	}

	initStatement := `
	create table if not exists replays
	  (
		  id text not null primary key,
		  sum text not null,
		  played_at integer not null,
		  settings blob,
		  inputs blob
	  );
	create index if not exists replays_sum on replays(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create replay table: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a run of the chart, assigning it an id if it has none.
func (s *Store) Save(c *game.Chart, h *History) error {
	if c.Sum == "" {
		return ErrNoSum
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.PlayedAt.IsZero() {
		h.PlayedAt = time.Now()
	}
	h.Sum = c.Sum

	settings, err := json.Marshal(h.Settings)
	if nil != err {
		return fmt.Errorf("unable to marshal settings: %w", err)
	}
	inputs, err := json.Marshal(compactInputs(h.Inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}

	_, err = s.db.Exec(
		"insert into replays(id, sum, played_at, settings, inputs) values(?, ?, ?, ?, ?)",
		h.ID.String(), h.Sum, h.PlayedAt.UnixMilli(), settings, inputs,
	)
	if nil != err {
		return fmt.Errorf("unable to save replay: %w", err)
	}
	s.logger.Debug("saved replay", "id", h.ID, "inputs", len(h.Inputs))
	return nil
}

// Load returns the runs of the chart, oldest first. Rows that cannot be
// decoded are logged and skipped.
func (s *Store) Load(c *game.Chart) ([]History, error) {
	rows, err := s.db.Query("select id, sum, played_at, settings, inputs from replays where sum = ? order by played_at", c.Sum)
	if nil != err {
		return nil, fmt.Errorf("unable to load replays: %w", err)
	}
	defer rows.Close()

	histories := []History{}
	for rows.Next() {
		var id, sum string
		var playedAt int64
		var settings, inputs []byte
		if err := rows.Scan(&id, &sum, &playedAt, &settings, &inputs); nil != err {
			return nil, fmt.Errorf("unable to read replay: %w", err)
		}

		h := History{Sum: sum, PlayedAt: time.UnixMilli(playedAt)}
		if h.ID, err = uuid.Parse(id); nil != err {
			s.logger.Warn("skipping replay", "id", id, "err", err)
			continue
		}
		if err := json.Unmarshal(settings, &h.Settings); nil != err {
			s.logger.Warn("skipping replay", "id", id, "err", err)
			continue
		}
		var ins []InputsCompact
		if err := json.Unmarshal(inputs, &ins); nil != err {
			s.logger.Warn("skipping replay", "id", id, "err", err)
			continue
		}
		h.Inputs = uncompactInputs(ins)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}
