package application

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/export"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

// download names are restricted to a safe charset before any path math
var exportNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type ExportService struct {
	Repos *repository.Repos
	dir   string
}

func NewExportService(repos *repository.Repos, dir string) *ExportService {
	return &ExportService{Repos: repos, dir: dir}
}

// ExportInfo describes one generated file. Records is only known at
// generation time; listings of existing files leave it zero.
type ExportInfo struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	Records   int       `json:"record_count,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Generate writes the filtered submissions to a timestamped CSV or PDF
// file in the export directory.
func (s *ExportService) Generate(format string, filter submission.ListFilter) (ExportInfo, error) {
	var fields []form.Field
	title := "All submissions"
	if filter.FormID != 0 {
		f, err := s.Repos.Form.GetFormByID(filter.FormID)
		if err != nil {
			return ExportInfo{}, ErrFormNotFound
		}
		fields, err = f.ParsedFields()
		if err != nil {
			return ExportInfo{}, err
		}
		title = f.Title
	}

	filter.Page = 1
	filter.PerPage = 10000
	subs, _, err := s.Repos.Submission.ListSubmissions(filter)
	if err != nil {
		return ExportInfo{}, err
	}
	dtos := make([]submission.DTO, 0, len(subs))
	for i := range subs {
		dto, err := submission.ToDTO(&subs[i])
		if err != nil {
			return ExportInfo{}, err
		}
		dtos = append(dtos, dto)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return ExportInfo{}, err
	}

	var ext string
	switch format {
	case "csv":
		ext = "csv"
	case "pdf":
		ext = "pdf"
	default:
		return ExportInfo{}, fmt.Errorf("unsupported export format %q", format)
	}

	filename := fmt.Sprintf("submissions_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(s.dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return ExportInfo{}, err
	}
	defer file.Close()

	switch ext {
	case "csv":
		err = export.WriteCSV(file, fields, dtos)
	case "pdf":
		err = export.WritePDF(file, title, fields, dtos)
	}
	if err != nil {
		os.Remove(path)
		return ExportInfo{}, err
	}

	info, err := file.Stat()
	if err != nil {
		return ExportInfo{}, err
	}
	return ExportInfo{Filename: filename, Size: info.Size(), Records: len(dtos), CreatedAt: info.ModTime()}, nil
}

// List returns the generated files, newest first.
func (s *ExportService) List() ([]ExportInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ExportInfo{}, nil
		}
		return nil, err
	}

	out := make([]ExportInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "submissions_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, ExportInfo{Filename: entry.Name(), Size: info.Size(), CreatedAt: info.ModTime()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Resolve validates a download name and returns its absolute path. The
// name must match the safe charset and resolve inside the export
// directory.
func (s *ExportService) Resolve(filename string) (string, error) {
	if !exportNamePattern.MatchString(filename) {
		return "", ErrExportNotFound
	}

	dirAbs, err := filepath.Abs(s.dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dirAbs, filename)
	if filepath.Dir(path) != dirAbs {
		return "", ErrExportNotFound
	}

	if _, err := os.Stat(path); err != nil {
		return "", ErrExportNotFound
	}
	return path, nil
}

// Delete removes a generated file.
func (s *ExportService) Delete(filename string) error {
	path, err := s.Resolve(filename)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
