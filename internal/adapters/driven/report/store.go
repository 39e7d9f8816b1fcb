// Package report persists run artifacts as flat files: the raw fetched
// collection, one prompt/response pair per batch, the merged taxonomy, the
// uncategorized remainder, and a rendered HTML view.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
	"github.com/custodia-labs/starcat-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.ReportStore = (*FileStore)(nil)

// Artifact file names within a run directory.
const (
	starsFile         = "stars.json"
	taxonomyFile      = "taxonomy.json"
	uncategorizedFile = "uncategorized.json"
	htmlFile          = "report.html"
	batchesDir        = "batches"
)

// FileStore writes run artifacts under <baseDir>/run-<id>/.
type FileStore struct {
	baseDir string
	runDir  string
	user    string
}

// NewFileStore creates a file-based report store rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Begin creates the run directory. Called once per run before any write.
func (s *FileStore) Begin(runID, user string) error {
	if runID == "" {
		return fmt.Errorf("report: run ID must not be empty")
	}
	s.runDir = filepath.Join(s.baseDir, "run-"+runID)
	s.user = user

	if err := os.MkdirAll(filepath.Join(s.runDir, batchesDir), 0755); err != nil {
		return fmt.Errorf("report: create run directory: %w", err)
	}
	return nil
}

// Path returns the run directory, for display after the run.
func (s *FileStore) Path() string {
	return s.runDir
}

// starRecord is the serialized form of one fetched repository.
type starRecord struct {
	FullName    string   `json:"full_name"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Stars       int      `json:"stargazers_count"`
	URL         string   `json:"html_url"`
}

func toStarRecords(repos []domain.Repository) []starRecord {
	records := make([]starRecord, len(repos))
	for i, r := range repos {
		records[i] = starRecord{
			FullName:    r.FullName,
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Topics:      r.Topics,
			Stars:       r.Stars,
			URL:         r.URL,
		}
	}
	return records
}

// WriteStars persists the raw fetched collection.
func (s *FileStore) WriteStars(repos []domain.Repository) error {
	return s.writeJSON(starsFile, toStarRecords(repos))
}

// WriteExchange persists one batch's prompt/response pair as plain text.
func (s *FileStore) WriteExchange(batch int, prompt, response string) error {
	promptPath := filepath.Join(s.runDir, batchesDir, fmt.Sprintf("batch_%02d.prompt.txt", batch))
	if err := os.WriteFile(promptPath, []byte(prompt), 0644); err != nil {
		return fmt.Errorf("report: write prompt %d: %w", batch, err)
	}

	responsePath := filepath.Join(s.runDir, batchesDir, fmt.Sprintf("batch_%02d.response.txt", batch))
	if err := os.WriteFile(responsePath, []byte(response), 0644); err != nil {
		return fmt.Errorf("report: write response %d: %w", batch, err)
	}
	return nil
}

// taxonomyDoc is the serialized form of the merged taxonomy.
type taxonomyDoc struct {
	User          string        `json:"user"`
	RunID         string        `json:"run_id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	FetchComplete bool          `json:"fetch_complete"`
	Repositories  int           `json:"repositories"`
	Categories    []categoryDoc `json:"categories"`
}

type categoryDoc struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Repositories []memberDoc `json:"repositories"`
}

type memberDoc struct {
	FullName string `json:"full_name"`
	Reason   string `json:"reason,omitempty"`
}

// WriteTaxonomy persists the merged taxonomy, the uncategorized remainder,
// and the rendered HTML view.
func (s *FileStore) WriteTaxonomy(summary *domain.RunSummary) error {
	doc := taxonomyDoc{
		User:          summary.User,
		RunID:         summary.RunID,
		GeneratedAt:   summary.FinishedAt,
		FetchComplete: summary.FetchComplete,
		Repositories:  len(summary.Repos),
	}
	for _, c := range summary.Taxonomy.Categories() {
		cd := categoryDoc{
			Name:         c.Name,
			Description:  c.Description,
			Repositories: make([]memberDoc, len(c.Repos)),
		}
		for i, a := range c.Repos {
			cd.Repositories[i] = memberDoc{FullName: a.FullName, Reason: a.Reason}
		}
		doc.Categories = append(doc.Categories, cd)
	}

	if err := s.writeJSON(taxonomyFile, doc); err != nil {
		return err
	}
	if err := s.writeJSON(uncategorizedFile, toStarRecords(summary.Uncategorized)); err != nil {
		return err
	}
	return s.writeHTML(summary)
}

// writeJSON serializes v with indentation into the run directory.
func (s *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal %s: %w", name, err)
	}
	path := filepath.Join(s.runDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("report: write %s: %w", name, err)
	}
	return nil
}
