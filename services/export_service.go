package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tcgsim/championship-sim/models"
	"github.com/tcgsim/championship-sim/storage"
)

// ExportService renders tournament results to CSV/JSON and optionally
// publishes them to the report bucket. A missing uploader is not an
// error; the run's results stay available to the caller either way.
type ExportService struct {
	uploader storage.FileUploader
	logger   *slog.Logger
}

func NewExportService(uploader storage.FileUploader, logger *slog.Logger) *ExportService {
	return &ExportService{uploader: uploader, logger: logger}
}

// StandingsCSV renders the final standings, placement order.
func (s *ExportService) StandingsCSV(res *models.TournamentResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"placement", "player_id", "name", "cp", "rating_zone", "match_points", "wins", "losses", "ties", "resistance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, st := range res.FinalStandings {
		row := []string{
			strconv.Itoa(st.Rank),
			strconv.Itoa(st.PlayerID),
			st.Player.Name,
			strconv.Itoa(st.Player.CP),
			string(st.Player.Zone),
			strconv.Itoa(st.Points),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.Ties),
			strconv.FormatFloat(st.Resistance, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ResultJSON renders the whole run report, pairing log included.
func (s *ExportService) ResultJSON(res *models.TournamentResult) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}

// Publish uploads the CSV standings and JSON report. With no uploader
// configured it logs and returns nothing; export is a collaborator,
// not part of the tournament contract.
func (s *ExportService) Publish(ctx context.Context, res *models.TournamentResult) ([]string, error) {
	if s.uploader == nil {
		s.logger.Info("no report uploader configured, skipping publish",
			slog.String("tournament_id", res.TournamentID))
		return nil, nil
	}

	csvData, err := s.StandingsCSV(res)
	if err != nil {
		return nil, fmt.Errorf("failed to render standings CSV: %w", err)
	}
	jsonData, err := s.ResultJSON(res)
	if err != nil {
		return nil, fmt.Errorf("failed to render result JSON: %w", err)
	}

	var locations, stored []string
	uploads := []struct {
		key         string
		contentType string
		data        []byte
	}{
		{fmt.Sprintf("results/%s_standings.csv", res.TournamentID), "text/csv", csvData},
		{fmt.Sprintf("results/%s_report.json", res.TournamentID), "application/json", jsonData},
	}
	for _, up := range uploads {
		out, err := s.uploader.Upload(ctx, up.key, up.contentType, bytes.NewReader(up.data))
		if err != nil {
			// A report is published whole or not at all; remove
			// whatever made it up before the failure.
			for _, key := range stored {
				if delErr := s.uploader.Delete(ctx, key); delErr != nil {
					s.logger.Warn("failed to remove partial report",
						slog.String("key", key),
						slog.Any("error", delErr))
				}
			}
			return nil, fmt.Errorf("failed to publish %s: %w", up.key, err)
		}
		stored = append(stored, up.key)
		locations = append(locations, out.Location)
	}

	s.logger.Info("tournament report published",
		slog.String("tournament_id", res.TournamentID),
		slog.Int("files", len(locations)))
	return locations, nil
}
